package uri_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
	"github.com/conquerblocks/nft-marketplace/internal/uri"
)

const testCID = "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG"

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

func response(status int) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader(nil)),
	}
}

func TestResolver_Resolve(t *testing.T) {
	defaultConfig := &uri.Config{
		IPFSGateways:    []string{"https://ipfs.io"},
		ArweaveGateways: []string{"https://arweave.net"},
	}

	tests := []struct {
		name        string
		uri         string
		setupMocks  func(*mocks.MockHTTPClient)
		config      *uri.Config
		expected    string
		expectedErr string // Error message to assert, empty means no error expected
	}{
		{
			name:     "regular HTTP URL",
			uri:      "http://example.com/metadata.json",
			config:   defaultConfig,
			expected: "http://example.com/metadata.json",
		},
		{
			name:     "regular HTTPS URL with surrounding spaces",
			uri:      "  https://example.com/path/to/resource ",
			config:   defaultConfig,
			expected: "https://example.com/path/to/resource",
		},
		{
			name:     "data URI is returned unchanged",
			uri:      `data:application/json,{"name":"Blocks"}`,
			config:   defaultConfig,
			expected: `data:application/json,{"name":"Blocks"}`,
		},
		{
			name: "IPFS URI",
			uri:  "ipfs://" + testCID,
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud/"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(response(http.StatusNotFound), nil).
					AnyTimes()
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+testCID).
					Return(response(http.StatusOK), nil)
			},
			expected: "https://gateway.pinata.cloud/ipfs/" + testCID,
		},
		{
			name:   "IPFS URI with redundant ipfs path",
			uri:    "ipfs://ipfs/" + testCID,
			config: defaultConfig,
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(response(http.StatusOK), nil)
			},
			expected: "https://ipfs.io/ipfs/" + testCID,
		},
		{
			name:     "IPFS gateway URL on a configured gateway",
			uri:      "https://ipfs.io/ipfs/" + testCID,
			config:   defaultConfig,
			expected: "https://ipfs.io/ipfs/" + testCID,
		},
		{
			name:   "IPFS gateway URL on a foreign gateway",
			uri:    "https://private.gateway.example/ipfs/" + testCID + "/metadata.json",
			config: defaultConfig,
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID+"/metadata.json").
					Return(response(http.StatusOK), nil)
			},
			expected: "https://ipfs.io/ipfs/" + testCID + "/metadata.json",
		},
		{
			name: "Arweave URI",
			uri:  "ar://abc123",
			config: &uri.Config{
				ArweaveGateways: []string{"https://arweave.net", "https://ar-io.net"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://arweave.net/abc123").
					Return(response(http.StatusOK), nil)
				// The resolver may return before the second probe runs
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ar-io.net/abc123").
					Return(response(http.StatusNotFound), nil).
					AnyTimes()
			},
			expected: "https://arweave.net/abc123",
		},
		{
			name: "IPFS URI - no gateways configured",
			uri:  "ipfs://" + testCID,
			config: &uri.Config{
				IPFSGateways: []string{},
			},
			expectedErr: "no IPFS gateways configured",
		},
		{
			name: "IPFS URI - no working gateway",
			uri:  "ipfs://" + testCID,
			config: &uri.Config{
				IPFSGateways: []string{"https://ipfs.io", "https://gateway.pinata.cloud"},
			},
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://ipfs.io/ipfs/"+testCID).
					Return(response(http.StatusNotFound), nil)
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://gateway.pinata.cloud/ipfs/"+testCID).
					Return(response(http.StatusBadGateway), nil)
			},
			expectedErr: "no working IPFS gateway found for CID: " + testCID,
		},
		{
			name:   "IPFS URI - network error",
			uri:    "ipfs://" + testCID,
			config: defaultConfig,
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			expectedErr: "no working IPFS gateway found for CID: " + testCID,
		},
		{
			name: "Arweave URI - no gateways configured",
			uri:  "ar://abc123",
			config: &uri.Config{
				ArweaveGateways: []string{},
			},
			expectedErr: "no Arweave gateways configured",
		},
		{
			name:   "Arweave URI - no working gateway",
			uri:    "ar://abc123",
			config: defaultConfig,
			setupMocks: func(mockHTTP *mocks.MockHTTPClient) {
				mockHTTP.
					EXPECT().
					Head(gomock.Any(), "https://arweave.net/abc123").
					Return(response(http.StatusNotFound), nil)
			},
			expectedErr: "no working Arweave gateway found for TX: abc123",
		},
		{
			name:        "unsupported scheme",
			uri:         "ftp://example.com/token.json",
			config:      defaultConfig,
			expectedErr: "unsupported URI scheme: ftp://example.com/token.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockHTTP := mocks.NewMockHTTPClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockHTTP)
			}

			resolver := uri.NewResolver(mockHTTP, tt.config)
			result, err := resolver.Resolve(context.Background(), tt.uri)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Empty(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestToGatewayURL(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"ipfs://" + testCID, "https://ipfs.io/ipfs/" + testCID},
		{"ipfs://ipfs/" + testCID, "https://ipfs.io/ipfs/" + testCID},
		{"ar://abc123", "https://arweave.net/abc123"},
		{"https://example.com/a.png", "https://example.com/a.png"},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.expected, uri.ToGatewayURL(tt.uri))
		})
	}
}
