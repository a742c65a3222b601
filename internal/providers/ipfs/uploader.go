package ipfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	shell "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
)

// URIScheme prefixes the URIs of uploaded content
const URIScheme = "ipfs://"

var (
	// ErrEmptyUpload is returned when there is nothing to upload
	ErrEmptyUpload = errors.New("empty upload")
	// ErrUploadTooLarge is returned when the content exceeds the configured limit
	ErrUploadTooLarge = errors.New("upload too large")
)

// Config holds the upload configuration
type Config struct {
	// Pin keeps uploaded content on the node after garbage collection
	Pin bool
	// MaxSize caps the upload size in bytes, 0 means no limit
	MaxSize int64
}

// UploadResult describes uploaded content
type UploadResult struct {
	CID      string `json:"cid"`
	URI      string `json:"uri"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
}

// Uploader stores files and metadata documents on IPFS
//
//go:generate mockgen -source=uploader.go -destination=../../mocks/ipfs_uploader.go -package=mocks -mock_names=Uploader=MockIPFSUploader
type Uploader interface {
	// Upload adds a file and returns its ipfs:// URI
	Upload(ctx context.Context, data []byte) (*UploadResult, error)
	// UploadMetadata adds the canonical JSON of a metadata document and returns its ipfs:// URI
	UploadMetadata(ctx context.Context, metadata domain.TokenMetadata) (*UploadResult, error)
}

type uploader struct {
	shell  adapter.IPFSShell
	jcs    adapter.JCS
	config Config
}

// NewUploader creates an uploader backed by an IPFS node
func NewUploader(sh adapter.IPFSShell, jcsAdapter adapter.JCS, cfg Config) Uploader {
	return &uploader{
		shell:  sh,
		jcs:    jcsAdapter,
		config: cfg,
	}
}

func (u *uploader) Upload(ctx context.Context, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, ErrEmptyUpload
	}
	if u.config.MaxSize > 0 && int64(len(data)) > u.config.MaxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrUploadTooLarge, len(data), u.config.MaxSize)
	}

	return u.add(ctx, data, mimetype.Detect(data).String())
}

func (u *uploader) UploadMetadata(ctx context.Context, metadata domain.TokenMetadata) (*UploadResult, error) {
	// Identical documents always map to the same CID
	canonical, err := u.jcs.Canonicalize(metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize metadata: %w", err)
	}

	return u.add(ctx, canonical, "application/json")
}

func (u *uploader) add(ctx context.Context, data []byte, mimeType string) (*UploadResult, error) {
	cid, err := u.shell.Add(bytes.NewReader(data), shell.CidVersion(1))
	if err != nil {
		return nil, fmt.Errorf("failed to add content to IPFS: %w", err)
	}

	if u.config.Pin {
		if err := u.shell.Pin(cid); err != nil {
			return nil, fmt.Errorf("failed to pin %s: %w", cid, err)
		}
	}

	logger.InfoCtx(ctx, "Uploaded content to IPFS",
		zap.String("cid", cid),
		zap.String("mimeType", mimeType),
		zap.Int("size", len(data)))

	return &UploadResult{
		CID:      cid,
		URI:      URIScheme + cid,
		MimeType: mimeType,
		Size:     len(data),
	}, nil
}
