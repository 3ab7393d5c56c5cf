package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StripeWebhookVerifier checks the Stripe-Signature header:
// HMAC-SHA256 of "<timestamp>.<payload>" with the endpoint secret, carried
// as "t=<timestamp>,v1=<signature>[,v1=...]".
type StripeWebhookVerifier struct {
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{
		secret:    secret,
		tolerance: 5 * time.Minute,
		now:       time.Now,
	}
}

func (v *StripeWebhookVerifier) Verify(payload []byte, signatureHeader string) error {
	if signatureHeader == "" {
		return fmt.Errorf("missing signature header")
	}

	var timestamp int64
	var signatures []string

	for _, part := range strings.Split(signatureHeader, ",") {
		pair := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(pair) != 2 {
			continue
		}
		switch pair[0] {
		case "t":
			ts, err := strconv.ParseInt(pair[1], 10, 64)
			if err != nil {
				return fmt.Errorf("malformed signature timestamp")
			}
			timestamp = ts
		case "v1":
			signatures = append(signatures, pair[1])
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return fmt.Errorf("malformed signature header")
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > v.tolerance || age < -v.tolerance {
		return fmt.Errorf("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	for _, sig := range signatures {
		if hmac.Equal([]byte(sig), []byte(expected)) {
			return nil
		}
	}

	return fmt.Errorf("signature verification failed")
}
