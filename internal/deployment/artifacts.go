package deployment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/common"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/contracts/abis"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
)

// Artifact is the static description of a deployed contract consumed by clients
type Artifact struct {
	Name    string          `json:"name"`
	Address common.Address  `json:"address"`
	ABI     json.RawMessage `json:"abi"`
}

type abiFile struct {
	ABI json.RawMessage `json:"abi"`
}

type addressFile struct {
	Address string `json:"address"`
}

var contractABIs = map[domain.ContractKind]string{
	domain.ContractKindNFT:         abis.BlocksNFTABI,
	domain.ContractKindMarketplace: abis.MarketplaceABI,
}

// Artifacts returns the artifacts of both contracts of a deployment
func Artifacts(d *Deployment) []Artifact {
	return []Artifact{
		{Name: string(domain.ContractKindNFT), Address: d.NFT, ABI: json.RawMessage(contractABIs[domain.ContractKindNFT])},
		{Name: string(domain.ContractKindMarketplace), Address: d.Marketplace, ABI: json.RawMessage(contractABIs[domain.ContractKindMarketplace])},
	}
}

// ArtifactStore writes and reads <Name>.json and <Name>-address.json files
type ArtifactStore struct {
	fs   adapter.FileSystem
	json adapter.JSON
	dir  string
}

// NewArtifactStore creates an artifact store rooted at dir
func NewArtifactStore(fs adapter.FileSystem, json adapter.JSON, dir string) *ArtifactStore {
	return &ArtifactStore{fs: fs, json: json, dir: dir}
}

// Write writes the artifacts of a deployment
func (s *ArtifactStore) Write(d *Deployment) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create contracts data directory: %w", err)
	}

	for _, artifact := range Artifacts(d) {
		if err := s.writeJSON(artifact.Name+".json", abiFile{ABI: artifact.ABI}); err != nil {
			return err
		}
		if err := s.writeJSON(artifact.Name+"-address.json", addressFile{Address: artifact.Address.Hex()}); err != nil {
			return err
		}
	}
	return nil
}

// Read reads the artifact of a contract kind
func (s *ArtifactStore) Read(kind domain.ContractKind) (*Artifact, error) {
	var abiDoc abiFile
	if err := s.readJSON(string(kind)+".json", &abiDoc); err != nil {
		return nil, err
	}
	var addressDoc addressFile
	if err := s.readJSON(string(kind)+"-address.json", &addressDoc); err != nil {
		return nil, err
	}

	address, err := domain.ParseAddress(addressDoc.Address)
	if err != nil {
		return nil, err
	}
	return &Artifact{Name: string(kind), Address: address, ABI: abiDoc.ABI}, nil
}

// ReadDeployment reads both artifacts back into a deployment
func (s *ArtifactStore) ReadDeployment() (*Deployment, error) {
	nftArtifact, err := s.Read(domain.ContractKindNFT)
	if err != nil {
		return nil, err
	}
	marketArtifact, err := s.Read(domain.ContractKindMarketplace)
	if err != nil {
		return nil, err
	}
	return &Deployment{NFT: nftArtifact.Address, Marketplace: marketArtifact.Address}, nil
}

func (s *ArtifactStore) writeJSON(name string, v interface{}) error {
	data, err := s.json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	file, err := s.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *ArtifactStore) readJSON(name string, v interface{}) error {
	path := filepath.Join(s.dir, name)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: missing %s", domain.ErrNotDeployed, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := s.json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
