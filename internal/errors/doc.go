// Package errors provides typed error values for Cryptr.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. Every
// failure of the envelope operations maps to exactly one of these values,
// so a caller can tell malformed input from a cryptographic failure from an
// I/O failure.
//
// # Error Categories
//
//   - Key generation: ErrKeyGeneration
//   - Symmetric cipher: ErrEncryption, ErrDecryption, ErrMalformedEnvelope
//   - Key wrapping: ErrWrap, ErrUnwrap
//   - Key material: ErrInvalidPublicKey, ErrInvalidPrivateKey, ErrPassphraseRequired
//   - Files: ErrFileNotFound, ErrNoFilesFound, ErrInvalidFileType
//   - Configuration: ErrInvalidConfig
//
// # Usage
//
// Wrap errors with additional context:
//
//	return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryption, err)
//
// Handle errors in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrMalformedEnvelope) {
//	    // Show user-friendly message
//	}
package errors
