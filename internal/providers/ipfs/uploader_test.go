package ipfs_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	shell "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
	"github.com/conquerblocks/nft-marketplace/internal/providers/ipfs"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func setupTestUploader(t *testing.T, cfg ipfs.Config) (*mocks.MockIPFSShell, ipfs.Uploader) {
	ctrl := gomock.NewController(t)
	sh := mocks.NewMockIPFSShell(ctrl)
	return sh, ipfs.NewUploader(sh, adapter.NewJCS(), cfg)
}

func TestUploader_Upload(t *testing.T) {
	sh, uploader := setupTestUploader(t, ipfs.Config{Pin: true})

	gomock.InOrder(
		sh.EXPECT().
			Add(gomock.Any(), gomock.Any()).
			DoAndReturn(func(r io.Reader, _ ...shell.AddOpts) (string, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				assert.Equal(t, pngHeader, data)
				return "bafyimage", nil
			}),
		sh.EXPECT().Pin("bafyimage").Return(nil),
	)

	result, err := uploader.Upload(context.Background(), pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "bafyimage", result.CID)
	assert.Equal(t, "ipfs://bafyimage", result.URI)
	assert.Equal(t, "image/png", result.MimeType)
	assert.Equal(t, len(pngHeader), result.Size)
}

func TestUploader_Upload_Errors(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ipfs.Config
		data        []byte
		setupMocks  func(*mocks.MockIPFSShell)
		expectedErr string
	}{
		{
			name:        "empty",
			data:        nil,
			expectedErr: "empty upload",
		},
		{
			name:        "too large",
			cfg:         ipfs.Config{MaxSize: 4},
			data:        pngHeader,
			expectedErr: "upload too large: 16 bytes exceeds 4",
		},
		{
			name: "add error",
			data: pngHeader,
			setupMocks: func(sh *mocks.MockIPFSShell) {
				sh.EXPECT().Add(gomock.Any(), gomock.Any()).Return("", assert.AnError)
			},
			expectedErr: "failed to add content to IPFS",
		},
		{
			name: "pin error",
			cfg:  ipfs.Config{Pin: true},
			data: pngHeader,
			setupMocks: func(sh *mocks.MockIPFSShell) {
				sh.EXPECT().Add(gomock.Any(), gomock.Any()).Return("bafyimage", nil)
				sh.EXPECT().Pin("bafyimage").Return(assert.AnError)
			},
			expectedErr: "failed to pin bafyimage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh, uploader := setupTestUploader(t, tt.cfg)
			if tt.setupMocks != nil {
				tt.setupMocks(sh)
			}

			result, err := uploader.Upload(context.Background(), tt.data)
			assert.Nil(t, result)
			assert.ErrorContains(t, err, tt.expectedErr)
		})
	}
}

func TestUploader_UploadMetadata(t *testing.T) {
	sh, uploader := setupTestUploader(t, ipfs.Config{})

	// Keys are sorted and the mime type is left out when unknown
	sh.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(r io.Reader, _ ...shell.AddOpts) (string, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, `{"description":"First block","image":"ipfs://bafyimage","name":"Blocks #1"}`, string(data))
			return "bafymeta", nil
		})

	result, err := uploader.UploadMetadata(context.Background(), domain.TokenMetadata{
		Name:        "Blocks #1",
		Description: "First block",
		Image:       "ipfs://bafyimage",
	})
	require.NoError(t, err)
	assert.Equal(t, "ipfs://bafymeta", result.URI)
	assert.Equal(t, "application/json", result.MimeType)
}
