package rest_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/conquerblocks/nft-marketplace/internal/api/rest"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
)

func TestSetupRoutes(t *testing.T) {
	respond := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	tests := []struct {
		method string
		path   string
		expect func(*mocks.MockAPIHandler) *gomock.Call
	}{
		{http.MethodGet, "/health", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().HealthCheck(gomock.Any()) }},
		{http.MethodPost, "/api/v1/auth/nonce", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().CreateNonce(gomock.Any()) }},
		{http.MethodPost, "/api/v1/auth/login", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().Login(gomock.Any()) }},
		{http.MethodGet, "/api/v1/contracts", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetContracts(gomock.Any()) }},
		{http.MethodGet, "/api/v1/items", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().ListItems(gomock.Any()) }},
		{http.MethodGet, "/api/v1/items/1", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetItem(gomock.Any()) }},
		{http.MethodGet, "/api/v1/items/1/total-price", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetTotalPrice(gomock.Any()) }},
		{http.MethodGet, "/api/v1/tokens/1", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetToken(gomock.Any()) }},
		{http.MethodGet, "/api/v1/accounts/0xabc", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().GetAccount(gomock.Any()) }},
		{http.MethodGet, "/api/v1/accounts/0xabc/listed-items", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().ListListedItems(gomock.Any()) }},
		{http.MethodGet, "/api/v1/accounts/0xabc/purchases", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().ListPurchases(gomock.Any()) }},
		{http.MethodGet, "/api/v1/events", func(h *mocks.MockAPIHandler) *gomock.Call { return h.EXPECT().ListEvents(gomock.Any()) }},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			handler := mocks.NewMockAPIHandler(ctrl)
			tt.expect(handler).Do(respond)

			router := gin.New()
			rest.SetupRoutes(router, handler, mocks.NewMockAuthService(ctrl), nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNoContent, w.Code)
		})
	}
}

func TestSetupRoutes_WriteRoutesStopAtAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No handler expectations: the auth middleware aborts first
	handler := mocks.NewMockAPIHandler(ctrl)
	router := gin.New()
	rest.SetupRoutes(router, handler, mocks.NewMockAuthService(ctrl), nil)

	for _, path := range []string{"/api/v1/items", "/api/v1/items/1/purchase", "/api/v1/uploads", "/api/v1/tokens", "/api/v1/mint", "/api/v1/tokens/approval-for-all"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
