package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidToken     = errors.New("token: invalid token format")
	ErrSignatureInvalid = errors.New("token: signature verification failed")
)

// signatureLength is the number of HMAC-SHA256 bytes kept in the token.
const signatureLength = 8

// GenerateToken signs the JSON-encoded claims with the secret and returns
// the compact two-segment token.
func GenerateToken[T any](claims T, secret string) (string, error) {
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := base64.RawURLEncoding.EncodeToString(payload)
	sig := sign(encoded, secret)

	return encoded + "." + base64.RawURLEncoding.EncodeToString(sig), nil
}

// ParseToken verifies the signature and decodes the claims. The signature
// is checked before the payload is decoded, so unauthenticated input never
// reaches the JSON decoder.
func ParseToken[T any](token, secret string) (T, error) {
	var claims T

	encoded, sigPart, ok := strings.Cut(token, ".")
	if !ok || encoded == "" || sigPart == "" {
		return claims, ErrInvalidToken
	}

	gotSig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil || len(gotSig) != signatureLength {
		return claims, ErrInvalidToken
	}

	if !hmac.Equal(gotSig, sign(encoded, secret)) {
		return claims, ErrSignatureInvalid
	}

	payload, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return claims, ErrInvalidToken
	}

	if err := json.Unmarshal(payload, &claims); err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}

func sign(encodedPayload, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(encodedPayload))
	return mac.Sum(nil)[:signatureLength]
}
