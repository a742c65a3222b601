package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
ledger:
  fee_percent: 2
  deployer_private_key: ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80
  genesis_accounts:
    "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266": "10000"
`

func run(t *testing.T, args ...string) (string, error) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(testConfig), 0o600))

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", configFile, "--env", dir}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestKeygen(t *testing.T) {
	out, err := run(t, "keygen")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	address := strings.TrimSpace(strings.TrimPrefix(lines[0], "Address:"))
	assert.True(t, common.IsHexAddress(address))
	key := strings.TrimSpace(strings.TrimPrefix(lines[1], "Private key:"))
	assert.Len(t, key, 64)
}

func TestDeploy(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "contractsData")

	out, err := run(t, "deploy", "--out", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "BlocksNFT:")
	assert.Contains(t, out, "Fee account: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266 (2%)")

	for _, name := range []string{"BlocksNFT.json", "BlocksNFT-address.json", "Marketplace.json", "Marketplace-address.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data)
	}

	addressFile, err := os.ReadFile(filepath.Join(outDir, "Marketplace-address.json"))
	require.NoError(t, err)
	assert.Contains(t, out, strings.Split(strings.Split(string(addressFile), `"address": "`)[1], `"`)[0])
}

func TestDeploy_SkipFunding(t *testing.T) {
	_, err := run(t, "deploy", "--out", t.TempDir(), "--skip-funding")
	assert.ErrorContains(t, err, "insufficient funds")
}

func TestFund(t *testing.T) {
	out, err := run(t, "fund", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "Funded 0x70997970C51812dc3A010C7d01b50e0d17dc79C8 with 1.5 ETH\n", out)

	_, err = run(t, "fund", "0x123", "1")
	assert.ErrorContains(t, err, "invalid address")

	_, err = run(t, "fund", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	assert.Error(t, err)
}

func TestBalance(t *testing.T) {
	out, err := run(t, "balance", "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance: 0 ETH")
	assert.Contains(t, out, "Nonce:   0")
	// Nothing is deployed in a fresh memory ledger
	assert.NotContains(t, out, "Tokens:")
}

func TestMigrate_RequiresDatabase(t *testing.T) {
	_, err := run(t, "migrate")
	assert.ErrorContains(t, err, "database host is required")
}

func TestEventsForward_Validation(t *testing.T) {
	_, err := run(t, "events", "forward")
	assert.ErrorContains(t, err, "webhook URL is required")

	_, err = run(t, "events", "forward", "--url", "https://hooks.example.com", "--secret", "s", "--events", "marketplace.cancelled")
	assert.ErrorContains(t, err, "unknown webhook event type: marketplace.cancelled")
}
