// Package token provides compact, URL-safe signed tokens with truncated
// HMAC-SHA256 signatures.
//
// # Token Format
//
// Tokens follow the format `<base64url-payload>.<base64url-signature>`:
//
//   - Payload: JSON-encoded claims, base64url-encoded without padding
//   - Signature: first 8 bytes of HMAC-SHA256 over the payload segment
//
// The truncated signature keeps tokens short enough for URLs and email
// links while still detecting tampering. It offers roughly 34 bits of
// forgery resistance, which suits short-lived tokens (minutes to hours);
// use full-size signatures for anything longer-lived.
//
// # Usage
//
//	type Claims struct {
//		UserID  int   `json:"uid"`
//		Expires int64 `json:"exp"`
//	}
//
//	str, err := token.GenerateToken(Claims{UserID: 42, Expires: exp}, secret)
//	...
//	claims, err := token.ParseToken[Claims](str, secret)
//
// ParseToken returns ErrInvalidToken for malformed input (including a
// correctly signed payload that does not decode into the claims type) and
// ErrSignatureInvalid when verification fails, so every failure mode
// classifies with errors.Is. Expiry is the caller's concern - put a
// timestamp in the claims and check it after parsing.
package token
