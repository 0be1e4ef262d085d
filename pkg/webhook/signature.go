package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
)

// Header names carrying the payload signature and its timestamp.
const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
)

var (
	ErrInvalidSignature = errors.New("webhook: invalid signature")
	ErrStaleTimestamp   = errors.New("webhook: timestamp outside tolerance")
)

// Sign computes the hex HMAC-SHA256 signature over "<unix-timestamp>.<body>".
// Binding the timestamp into the signed material prevents replaying an old
// body with a fresh timestamp.
func Sign(secret string, payload []byte, ts time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(ts.Unix(), 10)))
	mac.Write([]byte("."))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a received signature and timestamp against the
// payload. A non-positive tolerance disables the staleness check.
func VerifySignature(secret string, payload []byte, signature, timestamp string, tolerance time.Duration) error {
	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidSignature
	}
	ts := time.Unix(unix, 0)

	if tolerance > 0 {
		age := time.Since(ts)
		if age < 0 {
			age = -age
		}
		if age > tolerance {
			return ErrStaleTimestamp
		}
	}

	expected := Sign(secret, payload, ts)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}
