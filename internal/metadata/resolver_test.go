package metadata_test

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/metadata"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testResolverMocks contains all the mocks needed for testing the resolver
type testResolverMocks struct {
	ctrl        *gomock.Controller
	httpClient  *mocks.MockHTTPClient
	uriResolver *mocks.MockURIResolver
	resolver    metadata.Resolver
}

// setupTestResolver creates all the mocks and resolver for testing
func setupTestResolver(t *testing.T, detectMimeTypes bool) *testResolverMocks {
	ctrl := gomock.NewController(t)

	tm := &testResolverMocks{
		ctrl:        ctrl,
		httpClient:  mocks.NewMockHTTPClient(ctrl),
		uriResolver: mocks.NewMockURIResolver(ctrl),
	}

	tm.resolver = metadata.NewResolver(
		tm.httpClient,
		tm.uriResolver,
		adapter.NewJSON(),
		metadata.Config{DetectMimeTypes: detectMimeTypes},
	)

	return tm
}

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestResolver_Resolve_IPFS(t *testing.T) {
	tm := setupTestResolver(t, true)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	doc := `{"name":"Blocks #1","description":"First block","image":"ipfs://QmImage","attributes":[]}`

	gomock.InOrder(
		tm.uriResolver.EXPECT().Resolve(ctx, "ipfs://QmMeta").Return("https://ipfs.io/ipfs/QmMeta", nil),
		tm.httpClient.EXPECT().GetBytes(ctx, "https://ipfs.io/ipfs/QmMeta").Return([]byte(doc), nil),
		tm.uriResolver.EXPECT().Resolve(ctx, "ipfs://QmImage").Return("https://ipfs.io/ipfs/QmImage", nil),
		tm.httpClient.EXPECT().GetPartialContent(ctx, "https://ipfs.io/ipfs/QmImage", 512).Return(pngHeader, nil),
	)

	meta, err := tm.resolver.Resolve(ctx, "ipfs://QmMeta")
	require.NoError(t, err)
	assert.Equal(t, "Blocks #1", meta.Name)
	assert.Equal(t, "First block", meta.Description)
	assert.Equal(t, "ipfs://QmImage", meta.Image)
	require.NotNil(t, meta.MimeType)
	assert.Equal(t, "image/png", *meta.MimeType)
}

func TestResolver_Resolve_DataURI(t *testing.T) {
	tm := setupTestResolver(t, true)
	defer tm.ctrl.Finish()

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngHeader)
	doc := `{"name":"Inline","description":"on chain","image":"` + image + `"}`
	tokenURI := "data:application/json;base64," + base64.StdEncoding.EncodeToString([]byte(doc))

	// Neither the document nor the image touch the network
	meta, err := tm.resolver.Resolve(context.Background(), tokenURI)
	require.NoError(t, err)
	assert.Equal(t, "Inline", meta.Name)
	assert.Equal(t, "on chain", meta.Description)
	assert.Equal(t, image, meta.Image)
	require.NotNil(t, meta.MimeType)
	assert.Equal(t, "image/png", *meta.MimeType)
}

func TestResolver_Resolve_ImageURLFallback(t *testing.T) {
	tm := setupTestResolver(t, false)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.uriResolver.EXPECT().Resolve(ctx, "https://example.com/1.json").Return("https://example.com/1.json", nil)
	tm.httpClient.EXPECT().GetBytes(ctx, "https://example.com/1.json").
		Return([]byte(`{"name":" Padded ","image_url":"https://example.com/1.png"}`), nil)

	meta, err := tm.resolver.Resolve(ctx, "https://example.com/1.json")
	require.NoError(t, err)
	assert.Equal(t, "Padded", meta.Name)
	assert.Empty(t, meta.Description)
	assert.Equal(t, "https://example.com/1.png", meta.Image)
	assert.Nil(t, meta.MimeType)
}

func TestResolver_Resolve_MimeTypeFailureIsNotFatal(t *testing.T) {
	tm := setupTestResolver(t, true)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.uriResolver.EXPECT().Resolve(ctx, "https://example.com/1.json").Return("https://example.com/1.json", nil)
	tm.httpClient.EXPECT().GetBytes(ctx, "https://example.com/1.json").
		Return([]byte(`{"name":"Blocks","image":"ar://missing"}`), nil)
	tm.uriResolver.EXPECT().Resolve(ctx, "ar://missing").Return("", errors.New("no working Arweave gateway found for TX: missing"))

	meta, err := tm.resolver.Resolve(ctx, "https://example.com/1.json")
	require.NoError(t, err)
	assert.Equal(t, "Blocks", meta.Name)
	assert.Nil(t, meta.MimeType)
}

func TestResolver_Resolve_Errors(t *testing.T) {
	tests := []struct {
		name        string
		uri         string
		setupMocks  func(*testResolverMocks)
		expectedErr string
	}{
		{
			name:        "empty uri",
			uri:         "  ",
			expectedErr: "empty metadata URI",
		},
		{
			name:        "invalid data uri",
			uri:         "data:application/json;base64",
			expectedErr: "failed to parse metadata data URI: invalid data URI: missing comma",
		},
		{
			name: "unresolvable uri",
			uri:  "ipfs://QmMeta",
			setupMocks: func(tm *testResolverMocks) {
				tm.uriResolver.EXPECT().Resolve(gomock.Any(), "ipfs://QmMeta").Return("", errors.New("no IPFS gateways configured"))
			},
			expectedErr: "failed to resolve metadata URI ipfs://QmMeta: no IPFS gateways configured",
		},
		{
			name: "fetch failure",
			uri:  "https://example.com/1.json",
			setupMocks: func(tm *testResolverMocks) {
				tm.uriResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("https://example.com/1.json", nil)
				tm.httpClient.EXPECT().GetBytes(gomock.Any(), "https://example.com/1.json").Return(nil, errors.New("unexpected status code 404: "))
			},
			expectedErr: "failed to fetch metadata from URI https://example.com/1.json: unexpected status code 404: ",
		},
		{
			name: "not json",
			uri:  "https://example.com/1.json",
			setupMocks: func(tm *testResolverMocks) {
				tm.uriResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return("https://example.com/1.json", nil)
				tm.httpClient.EXPECT().GetBytes(gomock.Any(), gomock.Any()).Return([]byte("<html>"), nil)
			},
			expectedErr: "failed to parse metadata JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestResolver(t, true)
			defer tm.ctrl.Finish()

			if tt.setupMocks != nil {
				tt.setupMocks(tm)
			}

			meta, err := tm.resolver.Resolve(context.Background(), tt.uri)
			assert.Nil(t, meta)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
