package adapter

import (
	"io"
	"net/http"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
)

// IPFSShell defines the subset of the IPFS HTTP API used for uploads to enable mocking
//
//go:generate mockgen -source=ipfs.go -destination=../mocks/ipfs.go -package=mocks -mock_names=IPFSShell=MockIPFSShell
type IPFSShell interface {
	Add(r io.Reader, options ...shell.AddOpts) (string, error)
	Pin(path string) error
}

// NewIPFSShell returns a shell talking to the IPFS API at apiURL
func NewIPFSShell(apiURL string, timeout time.Duration) IPFSShell {
	sh := shell.NewShellWithClient(apiURL, &http.Client{Timeout: timeout})
	sh.SetTimeout(timeout)
	return sh
}
