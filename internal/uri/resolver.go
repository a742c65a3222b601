package uri

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
)

// ErrUnsupportedScheme is returned for URIs the resolver cannot turn into a URL
var ErrUnsupportedScheme = errors.New("unsupported URI scheme")

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try
	ArweaveGateways []string
}

// Resolver defines the interface for resolving token URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a fetchable URL
	// ipfs:// and ar:// are probed against the configured gateways with HEAD requests,
	// data: URIs and plain HTTP(S) URLs are returned unchanged
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	uri = strings.TrimSpace(uri)

	if IsDataURI(uri) {
		return uri, nil
	}

	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return r.resolveIPFS(ctx, strings.TrimPrefix(cid, "ipfs/"))
	}

	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return r.resolveArweave(ctx, txID)
	}

	if !strings.HasPrefix(uri, "http://") && !strings.HasPrefix(uri, "https://") {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedScheme, uri)
	}

	// Gateway URLs from another host are re-resolved against the configured gateways
	if gateway, cid, ok := splitIPFSGatewayURL(uri); ok && !containsGateway(r.config.IPFSGateways, gateway) {
		return r.resolveIPFS(ctx, cid)
	}

	return uri, nil
}

// resolveIPFS finds a working IPFS gateway for the given CID
func (r *resolver) resolveIPFS(ctx context.Context, cid string) (string, error) {
	if len(r.config.IPFSGateways) == 0 {
		return "", fmt.Errorf("no IPFS gateways configured")
	}

	candidates := make([]string, 0, len(r.config.IPFSGateways))
	for _, gw := range r.config.IPFSGateways {
		candidates = append(candidates, fmt.Sprintf("%s/ipfs/%s", strings.TrimSuffix(gw, "/"), cid))
	}

	url, err := findWorkingURL(ctx, r.httpClient, candidates)
	if err != nil {
		return "", fmt.Errorf("no working IPFS gateway found for CID: %s", cid)
	}
	return url, nil
}

// resolveArweave finds a working Arweave gateway for the given transaction ID
func (r *resolver) resolveArweave(ctx context.Context, txID string) (string, error) {
	if len(r.config.ArweaveGateways) == 0 {
		return "", fmt.Errorf("no Arweave gateways configured")
	}

	candidates := make([]string, 0, len(r.config.ArweaveGateways))
	for _, gw := range r.config.ArweaveGateways {
		candidates = append(candidates, fmt.Sprintf("%s/%s", strings.TrimSuffix(gw, "/"), txID))
	}

	url, err := findWorkingURL(ctx, r.httpClient, candidates)
	if err != nil {
		return "", fmt.Errorf("no working Arweave gateway found for TX: %s", txID)
	}
	return url, nil
}
