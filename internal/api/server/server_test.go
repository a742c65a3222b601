package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/conquerblocks/nft-marketplace/internal/api/server"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/constants"
	"github.com/conquerblocks/nft-marketplace/internal/api/shared/dto"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func TestServer_Router(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec := mocks.NewMockAPIExecutor(ctrl)
	exec.EXPECT().ListItems(gomock.Any()).Return(&dto.ItemListResponse{Items: []dto.ItemResponse{}}, nil)

	srv := server.New(server.Config{}, exec, mocks.NewMockAuthService(ctrl), nil)
	router := srv.Router()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/items", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(constants.HEADER_REQUEST_ID))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := server.New(server.Config{}, nil, nil, nil)
	assert.NoError(t, srv.Shutdown(context.Background()))
}
