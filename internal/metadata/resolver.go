package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

// ErrEmptyURI is returned when a token carries no metadata URI
var ErrEmptyURI = errors.New("empty metadata URI")

// Config holds the metadata resolver configuration
type Config struct {
	// DetectMimeTypes enables sniffing the image mime type
	DetectMimeTypes bool
}

// Resolver defines the interface for loading token metadata from a token URI
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve fetches and normalizes the JSON document the token URI points to
	Resolve(ctx context.Context, tokenURI string) (*domain.TokenMetadata, error)
}

type resolver struct {
	httpClient  adapter.HTTPClient
	uriResolver uri.Resolver
	json        adapter.JSON
	config      Config
}

func NewResolver(httpClient adapter.HTTPClient, uriResolver uri.Resolver, json adapter.JSON, config Config) Resolver {
	return &resolver{
		httpClient:  httpClient,
		uriResolver: uriResolver,
		json:        json,
		config:      config,
	}
}

func (r *resolver) Resolve(ctx context.Context, tokenURI string) (*domain.TokenMetadata, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return nil, ErrEmptyURI
	}

	raw, err := r.fetch(ctx, tokenURI)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}
	if err := r.json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse metadata JSON: %w", err)
	}

	meta := normalize(doc)
	if r.config.DetectMimeTypes && meta.Image != "" {
		meta.MimeType = detectMimeType(ctx, r.httpClient, r.uriResolver, meta.Image)
	}

	return meta, nil
}

// fetch returns the raw metadata document
func (r *resolver) fetch(ctx context.Context, tokenURI string) ([]byte, error) {
	if uri.IsDataURI(tokenURI) {
		parsed, err := uri.ParseDataURI(tokenURI)
		if err != nil {
			return nil, fmt.Errorf("failed to parse metadata data URI: %w", err)
		}
		return parsed.Data, nil
	}

	resolvedURL, err := r.uriResolver.Resolve(ctx, tokenURI)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata URI %s: %w", tokenURI, err)
	}

	logger.DebugCtx(ctx, "Fetching token metadata", zap.String("uri", tokenURI), zap.String("url", resolvedURL))

	raw, err := r.httpClient.GetBytes(ctx, resolvedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from URI %s: %w", resolvedURL, err)
	}

	return raw, nil
}

// normalize reads the OpenSea style fields the marketplace renders
// https://docs.opensea.io/docs/metadata-standards
func normalize(doc map[string]interface{}) *domain.TokenMetadata {
	meta := &domain.TokenMetadata{
		Name:        stringField(doc, "name"),
		Description: stringField(doc, "description"),
		Image:       stringField(doc, "image"),
	}

	if meta.Image == "" {
		meta.Image = stringField(doc, "image_url")
	}

	return meta
}

func stringField(doc map[string]interface{}, key string) string {
	if v, ok := doc[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
