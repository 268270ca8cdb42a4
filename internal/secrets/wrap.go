package secrets

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
)

// Padding selects the RSA encryption scheme used to wrap symmetric keys.
type Padding string

const (
	// PaddingPKCS1v15 is RSAES-PKCS1-v1_5, the scheme wrapped key files use by default.
	PaddingPKCS1v15 Padding = "pkcs1v15"

	// PaddingOAEP is RSAES-OAEP with SHA-256 and an empty label.
	PaddingOAEP Padding = "oaep"
)

// pkcs1v15Overhead is the minimum number of padding bytes added by PKCS#1 v1.5.
const pkcs1v15Overhead = 11

// ParsePadding maps a configuration value onto a Padding.
func ParsePadding(s string) (Padding, error) {
	switch p := Padding(strings.ToLower(strings.TrimSpace(s))); p {
	case "", PaddingPKCS1v15:
		return PaddingPKCS1v15, nil
	case PaddingOAEP:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported RSA padding %q (expected %q or %q)", s, PaddingPKCS1v15, PaddingOAEP)
	}
}

// MaxWrapPayload returns the largest key, in bytes, that pub can wrap with padding.
func MaxWrapPayload(pub *rsa.PublicKey, padding Padding) int {
	if pub == nil || pub.N == nil {
		return 0
	}

	var limit int
	switch padding {
	case PaddingOAEP:
		limit = pub.Size() - 2*sha256.Size - 2
	default:
		limit = pub.Size() - pkcs1v15Overhead
	}

	if limit < 0 {
		return 0
	}
	return limit
}

// WrapKey encrypts the raw bytes of a symmetric key with an RSA public key.
// Payloads larger than MaxWrapPayload are rejected rather than truncated.
func WrapKey(key []byte, pub *rsa.PublicKey, padding Padding) ([]byte, error) {
	if pub == nil || pub.N == nil {
		return nil, fmt.Errorf("%w: public key is nil", kerrors.ErrWrap)
	}
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: symmetric key is empty", kerrors.ErrWrap)
	}
	if limit := MaxWrapPayload(pub, padding); len(key) > limit {
		return nil, fmt.Errorf("%w: %d byte payload exceeds the %d byte limit of a %d-bit key with %s padding",
			kerrors.ErrWrap, len(key), limit, pub.N.BitLen(), padding)
	}

	var (
		wrapped []byte
		err     error
	)
	switch padding {
	case PaddingOAEP:
		wrapped, err = rsa.EncryptOAEP(sha256.New(), randReader, pub, key, nil)
	default:
		wrapped, err = rsa.EncryptPKCS1v15(randReader, pub, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrWrap, err)
	}

	return wrapped, nil
}

// UnwrapKey decrypts a wrapped symmetric key with an RSA private key.
func UnwrapKey(wrapped []byte, priv *rsa.PrivateKey, padding Padding) ([]byte, error) {
	if priv == nil || priv.N == nil {
		return nil, fmt.Errorf("%w: private key is nil", kerrors.ErrUnwrap)
	}
	if len(wrapped) != priv.Size() {
		return nil, fmt.Errorf("%w: wrapped key is %d bytes, expected %d for a %d-bit key",
			kerrors.ErrUnwrap, len(wrapped), priv.Size(), priv.N.BitLen())
	}

	var (
		key []byte
		err error
	)
	switch padding {
	case PaddingOAEP:
		key, err = rsa.DecryptOAEP(sha256.New(), randReader, priv, wrapped, nil)
	default:
		key, err = rsa.DecryptPKCS1v15(randReader, priv, wrapped)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrUnwrap, err)
	}

	return key, nil
}
