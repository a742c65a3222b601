package webhook_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
	"github.com/conquerblocks/nft-marketplace/internal/domain"
	"github.com/conquerblocks/nft-marketplace/internal/logger"
	"github.com/conquerblocks/nft-marketplace/internal/mocks"
	"github.com/conquerblocks/nft-marketplace/internal/webhook"
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

type testSinkMocks struct {
	ctrl       *gomock.Controller
	httpClient *mocks.MockHTTPClient
	clock      *mocks.MockClock
}

func setupTestSink(t *testing.T, eventTypes ...string) (*webhook.Sink, *testSinkMocks) {
	ctrl := gomock.NewController(t)
	tm := &testSinkMocks{
		ctrl:       ctrl,
		httpClient: mocks.NewMockHTTPClient(ctrl),
		clock:      mocks.NewMockClock(ctrl),
	}
	tm.clock.EXPECT().Now().Return(signedAt).AnyTimes()

	sink, err := webhook.NewSink(webhook.Config{
		URL:        "https://hooks.example.com/marketplace",
		Secret:     testSecret,
		EventTypes: eventTypes,
		Timeout:    5 * time.Second,
	}, tm.httpClient, adapter.NewIO(), adapter.NewJSON(), tm.clock)
	require.NoError(t, err)

	return sink, tm
}

func ledgerEvent(kind domain.ContractKind, name domain.EventName) *domain.LedgerEvent {
	return &domain.LedgerEvent{
		EventID:         "01HZX3J9Q8T5VJ3W6Y2K8N4M7P",
		ChainID:         31337,
		ContractKind:    kind,
		ContractAddress: "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		Event:           name,
		Args:            map[string]string{"itemId": "1"},
		TxHash:          "0xabc",
		BlockNumber:     7,
		Timestamp:       signedAt,
	}
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewSink_Validation(t *testing.T) {
	tests := []struct {
		name        string
		cfg         webhook.Config
		expectedErr string
	}{
		{name: "missing url", cfg: webhook.Config{Secret: "s"}, expectedErr: "webhook URL is required"},
		{name: "missing secret", cfg: webhook.Config{URL: "https://x"}, expectedErr: "webhook secret is required"},
		{
			name:        "unknown event type",
			cfg:         webhook.Config{URL: "https://x", Secret: "s", EventTypes: []string{"marketplace.cancelled"}},
			expectedErr: "unknown webhook event type: marketplace.cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := webhook.NewSink(tt.cfg, nil, adapter.NewIO(), adapter.NewJSON(), adapter.NewClock())
			assert.Nil(t, sink)
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestSink_Matches(t *testing.T) {
	all, _ := setupTestSink(t)
	assert.True(t, all.Matches(webhook.EventTypeTokenTransfer))

	wildcard, _ := setupTestSink(t, webhook.EventTypeWildcard)
	assert.True(t, wildcard.Matches(webhook.EventTypeItemOffered))

	sales, _ := setupTestSink(t, webhook.EventTypeItemBought)
	assert.True(t, sales.Matches(webhook.EventTypeItemBought))
	assert.False(t, sales.Matches(webhook.EventTypeItemOffered))
}

func TestSink_HandleEvent(t *testing.T) {
	sink, tm := setupTestSink(t, webhook.EventTypeItemBought)
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().
		PostWithHeadersNoRetry(gomock.Any(), "https://hooks.example.com/marketplace", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, headers map[string]string, body io.Reader) (*http.Response, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			payload, err := io.ReadAll(body)
			require.NoError(t, err)

			assert.Equal(t, "application/json", headers["Content-Type"])
			assert.Equal(t, "01HZX3J9Q8T5VJ3W6Y2K8N4M7P", headers["X-Webhook-Event-ID"])
			assert.Equal(t, webhook.EventTypeItemBought, headers["X-Webhook-Event-Type"])
			assert.Equal(t, strconv.FormatInt(signedAt.Unix(), 10), headers["X-Webhook-Timestamp"])
			assert.True(t, webhook.VerifySignature(testSecret, headers["X-Webhook-Signature"], signedAt.Unix(), headers["X-Webhook-Event-ID"], payload))

			var event webhook.WebhookEvent
			require.NoError(t, adapter.NewJSON().Unmarshal(payload, &event))
			assert.Equal(t, domain.EventBought, event.Data.Event)
			assert.Equal(t, uint64(7), event.Data.BlockNumber)
			return response(http.StatusOK, "ok"), nil
		})

	assert.NoError(t, sink.HandleEvent(context.Background(), ledgerEvent(domain.ContractKindMarketplace, domain.EventBought)))
}

func TestSink_HandleEvent_Filtered(t *testing.T) {
	sink, tm := setupTestSink(t, webhook.EventTypeItemBought)
	defer tm.ctrl.Finish()

	// No request is made for a filtered event
	assert.NoError(t, sink.HandleEvent(context.Background(), ledgerEvent(domain.ContractKindNFT, domain.EventTransfer)))
}

func TestSink_HandleEvent_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*testSinkMocks)
		expectedErr string
	}{
		{
			name: "server error",
			setupMocks: func(tm *testSinkMocks) {
				tm.httpClient.EXPECT().PostWithHeadersNoRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(response(http.StatusBadGateway, "upstream down"), nil)
			},
			expectedErr: "webhook delivery failed: unexpected status code 502",
		},
		{
			name: "transport error",
			setupMocks: func(tm *testSinkMocks) {
				tm.httpClient.EXPECT().PostWithHeadersNoRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expectedErr: "webhook delivery failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, tm := setupTestSink(t)
			defer tm.ctrl.Finish()

			tt.setupMocks(tm)

			err := sink.HandleEvent(context.Background(), ledgerEvent(domain.ContractKindMarketplace, domain.EventOffered))
			require.ErrorIs(t, err, webhook.ErrDeliveryFailed)
			assert.EqualError(t, err, tt.expectedErr)
		})
	}
}

func TestSink_Deliver_LimitsBody(t *testing.T) {
	sink, tm := setupTestSink(t)
	defer tm.ctrl.Finish()

	tm.httpClient.EXPECT().PostWithHeadersNoRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(response(http.StatusInternalServerError, strings.Repeat("x", 10000)), nil)

	result, err := sink.Deliver(context.Background(), webhook.NewWebhookEvent(ledgerEvent(domain.ContractKindNFT, domain.EventApprovalForAll)))
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
	assert.Len(t, result.Body, 4096)
}

func TestSink_Deliver_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	httpClient := mocks.NewMockHTTPClient(ctrl)
	ioMock := mocks.NewMockIO(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(signedAt)

	sink, err := webhook.NewSink(webhook.Config{URL: "https://x", Secret: testSecret}, httpClient, ioMock, adapter.NewJSON(), clock)
	require.NoError(t, err)

	httpClient.EXPECT().PostWithHeadersNoRetry(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(response(http.StatusNoContent, ""), nil)
	ioMock.EXPECT().ReadAll(gomock.Any()).Return(nil, errors.New("read failed"))

	// The status code decides the outcome, the body is informational
	result, err := sink.Deliver(context.Background(), webhook.NewWebhookEvent(ledgerEvent(domain.ContractKindNFT, domain.EventApproval)))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Body)
}
