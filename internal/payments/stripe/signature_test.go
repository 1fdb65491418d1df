package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func signHeader(payload []byte, secret string, ts time.Time) string {
	timestamp := fmt.Sprintf("%d", ts.Unix())
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifySignature(t *testing.T) {
	secret := "whsec_test"
	payload := []byte(`{"type":"checkout.session.completed"}`)
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("valid signature accepted", func(t *testing.T) {
		header := signHeader(payload, secret, now)
		assert.NoError(t, verifySignature(payload, header, secret, now))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		header := signHeader(payload, "whsec_other", now)
		assert.ErrorIs(t, verifySignature(payload, header, secret, now), ErrInvalidSignature)
	})

	t.Run("tampered payload rejected", func(t *testing.T) {
		header := signHeader(payload, secret, now)
		tampered := []byte(`{"type":"checkout.session.completed","data":{}}`)
		assert.ErrorIs(t, verifySignature(tampered, header, secret, now), ErrInvalidSignature)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		assert.ErrorIs(t, verifySignature(payload, "", secret, now), ErrInvalidSignature)
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		assert.ErrorIs(t, verifySignature(payload, "v1=abc", secret, now), ErrInvalidSignature)
		assert.ErrorIs(t, verifySignature(payload, "t=123", secret, now), ErrInvalidSignature)
		assert.ErrorIs(t, verifySignature(payload, "t=notanumber,v1=abc", secret, now), ErrInvalidSignature)
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		header := signHeader(payload, secret, now.Add(-6*time.Minute))
		assert.ErrorIs(t, verifySignature(payload, header, secret, now), ErrInvalidSignature)
	})

	t.Run("just inside tolerance accepted", func(t *testing.T) {
		header := signHeader(payload, secret, now.Add(-4*time.Minute))
		assert.NoError(t, verifySignature(payload, header, secret, now))
	})

	t.Run("unconfigured secret errors", func(t *testing.T) {
		header := signHeader(payload, secret, now)
		assert.Error(t, verifySignature(payload, header, "", now))
	})
}

func TestConstructEvent(t *testing.T) {
	client := NewClient("sk_test", "whsec_test")
	payload := []byte(`{"type":"checkout.session.completed","data":{"object":{"id":"cs_123","payment_status":"paid","status":"complete"}}}`)

	t.Run("verified payload parsed", func(t *testing.T) {
		header := signHeader(payload, "whsec_test", time.Now())
		event, err := client.ConstructEvent(payload, header)
		assert.NoError(t, err)
		assert.Equal(t, "checkout.session.completed", event.Type)
		assert.Equal(t, "cs_123", event.SessionID)
		assert.Equal(t, "paid", event.PaymentStatus)
		assert.Equal(t, "complete", event.Status)
	})

	t.Run("bad signature never parses", func(t *testing.T) {
		_, err := client.ConstructEvent(payload, "t=1,v1=bad")
		assert.Error(t, err)
	})
}
