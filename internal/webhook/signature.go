package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/conquerblocks/nft-marketplace/internal/adapter"
)

// SignaturePrefix names the algorithm in the signature header
const SignaturePrefix = "sha256="

// GenerateSignedPayload serializes the event and signs it with HMAC-SHA256
// Returns the JSON payload, signature header value and the signing timestamp
func GenerateSignedPayload(jsonAdapter adapter.JSON, secret string, event WebhookEvent, now time.Time) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = jsonAdapter.Marshal(event)
	if err != nil {
		return nil, "", 0, fmt.Errorf("failed to marshal event: %w", err)
	}

	timestamp = now.Unix()
	return payload, Sign(secret, timestamp, event.EventID, payload), timestamp, nil
}

// Sign computes the signature over {timestamp}.{event_id}.{json_body}
func Sign(secret string, timestamp int64, eventID string, payload []byte) string {
	h := hmac.New(sha256.New, []byte(secret))
	_, _ = fmt.Fprintf(h, "%d.%s.%s", timestamp, eventID, payload)
	return SignaturePrefix + hex.EncodeToString(h.Sum(nil))
}

// VerifySignature checks a signature header value in constant time
func VerifySignature(secret string, signature string, timestamp int64, eventID string, payload []byte) bool {
	if !strings.HasPrefix(signature, SignaturePrefix) {
		return false
	}
	expected := Sign(secret, timestamp, eventID, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}
