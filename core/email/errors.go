package email

import (
	"errors"
	"strings"
)

var (
	ErrSendFailed     = errors.New("email: failed to send")
	ErrInvalidConfig  = errors.New("email: invalid configuration")
	ErrInvalidMessage = errors.New("email: invalid message")
)

// knownCauses maps provider error fragments to readable explanations shown
// to operators in logs.
var knownCauses = []struct {
	fragment string
	cause    string
}{
	{"invalid api key", "invalid API key - check the provider token"},
	{"unauthorized", "authentication rejected - check credentials"},
	{"rate limit", "rate limit exceeded - retry later or upgrade the plan"},
	{"too many requests", "rate limit exceeded - retry later or upgrade the plan"},
	{"connection refused", "provider unreachable - check network and host settings"},
	{"no such host", "provider host not found - check the configured hostname"},
	{"certificate", "TLS verification failed - check certificates and TLS mode"},
	{"recipient", "recipient rejected by the provider"},
}

// HumanizeError translates a raw provider error into a short, readable
// cause. Unknown errors come back unchanged.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	for _, k := range knownCauses {
		if strings.Contains(msg, k.fragment) {
			return k.cause
		}
	}
	return err.Error()
}
