package metadata

import (
	"context"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

// sniffBytes is enough for every signature mimetype knows about
const sniffBytes = 512

// detectMimeType detects the MIME type of the token image
// Returns nil if detection fails
func detectMimeType(
	ctx context.Context,
	httpClient adapter.HTTPClient,
	uriResolver uri.Resolver,
	imageURL string,
) *string {
	if uri.IsDataURI(imageURL) {
		parsed, err := uri.ParseDataURI(imageURL)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to parse image data URI", zap.Error(err))
			return nil
		}
		mimeType := parsed.DetectedMimeType()
		return &mimeType
	}

	resolvedURL, err := uriResolver.Resolve(ctx, imageURL)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve URI for mime type detection",
			zap.String("url", imageURL),
			zap.Error(err))
		return nil
	}

	content, err := httpClient.GetPartialContent(ctx, resolvedURL, sniffBytes)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to download content for mime type detection",
			zap.String("url", resolvedURL),
			zap.Error(err))
		return nil
	}

	mimeType := mimetype.Detect(content).String()
	logger.DebugCtx(ctx, "Detected mime type",
		zap.String("url", resolvedURL),
		zap.String("mimeType", mimeType))

	return &mimeType
}
