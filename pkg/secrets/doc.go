// Package secrets provides AES-256-GCM encryption with compound key
// derivation for data at rest.
//
// Two independent 32-byte keys - an application-wide key and a
// scope-specific key (per tenant, per workspace) - are combined through
// HKDF into the actual encryption key. Leaking either key alone is not
// enough to decrypt, and rotating a scope key invalidates only that
// scope's data.
//
// # Usage
//
//	appKey, _ := secrets.GenerateKey()
//	scopeKey, _ := secrets.GenerateKey()
//
//	ciphertext, err := secrets.EncryptString(appKey, scopeKey, "sensitive")
//	...
//	plaintext, err := secrets.DecryptString(appKey, scopeKey, ciphertext)
//
// EncryptBytes/DecryptBytes work on raw bytes; the String variants add
// base64 so the result can go straight into a text column.
//
// Each encryption uses a fresh random nonce, so ciphertexts for identical
// plaintexts differ. GCM authenticates the ciphertext: any tampering
// surfaces as ErrDecryptionFailed.
package secrets
