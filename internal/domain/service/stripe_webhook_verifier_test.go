package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return hex.EncodeToString(mac.Sum(nil))
}

func fixedVerifier(secret string, now time.Time) *StripeWebhookVerifier {
	v := NewStripeWebhookVerifier(secret)
	v.now = func() time.Time { return now }
	return v
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := fixedVerifier("whsec_test", now)
	payload := []byte(`{"type":"payment_intent.succeeded"}`)

	ts := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload("whsec_test", ts, payload))
	require.NoError(t, v.Verify(payload, header))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := fixedVerifier("whsec_test", now)
	payload := []byte(`{}`)

	ts := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload("whsec_other", ts, payload))
	assert.Error(t, v.Verify(payload, header))
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := fixedVerifier("whsec_test", now)

	ts := now.Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload("whsec_test", ts, []byte(`{"amount":100}`)))
	assert.Error(t, v.Verify([]byte(`{"amount":99999}`), header))
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := fixedVerifier("whsec_test", now)
	payload := []byte(`{}`)

	ts := now.Add(-10 * time.Minute).Unix()
	header := fmt.Sprintf("t=%d,v1=%s", ts, signPayload("whsec_test", ts, payload))
	assert.Error(t, v.Verify(payload, header))
}

func TestVerifyRejectsMalformedHeaders(t *testing.T) {
	v := fixedVerifier("whsec_test", time.Unix(1700000000, 0))
	payload := []byte(`{}`)

	for _, header := range []string{"", "v1=abc", "t=notanumber,v1=abc", "t=1700000000"} {
		assert.Error(t, v.Verify(payload, header), "header %q", header)
	}
}

func TestVerifyAcceptsAnyMatchingV1(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := fixedVerifier("whsec_test", now)
	payload := []byte(`{}`)

	ts := now.Unix()
	good := signPayload("whsec_test", ts, payload)
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", ts, "deadbeef", good)
	require.NoError(t, v.Verify(payload, header))
}
