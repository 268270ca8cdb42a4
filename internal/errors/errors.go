package errors

import "errors"

// Key generation errors.
var (
	// ErrKeyGeneration indicates a symmetric key could not be produced, either
	// because the requested size is unsupported or the random source failed.
	ErrKeyGeneration = errors.New("failed to generate symmetric key")
)

// Symmetric cipher errors indicate failures while sealing or opening an envelope.
var (
	// ErrEncryption indicates the payload could not be encrypted, typically
	// because the symmetric key has an invalid length.
	ErrEncryption = errors.New("failed to encrypt data")

	// ErrDecryption indicates the ciphertext could not be decrypted. Wrong keys,
	// corrupted or truncated ciphertext and invalid padding all surface here.
	ErrDecryption = errors.New("failed to decrypt data")

	// ErrMalformedEnvelope indicates the input is too short to hold an IV.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)

// Key wrapping errors indicate failures of the asymmetric layer.
var (
	// ErrWrap indicates a symmetric key could not be encrypted with a public key.
	ErrWrap = errors.New("failed to wrap symmetric key")

	// ErrUnwrap indicates a wrapped key could not be decrypted with a private key.
	ErrUnwrap = errors.New("failed to unwrap symmetric key")
)

// Key material errors are returned while decoding externally supplied keys.
var (
	// ErrInvalidPublicKey indicates the public key is malformed or not RSA.
	ErrInvalidPublicKey = errors.New("invalid or unsupported public key format")

	// ErrInvalidPrivateKey indicates the private key is malformed or not RSA.
	ErrInvalidPrivateKey = errors.New("invalid or unsupported private key format")

	// ErrPassphraseRequired indicates the private key is protected by a passphrase.
	ErrPassphraseRequired = errors.New("private key is passphrase protected")
)

// File errors indicate issues with reading inputs or discovering files.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoFilesFound indicates no files matched the provided patterns.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrInvalidFileType indicates a file does not have the expected suffix.
	ErrInvalidFileType = errors.New("invalid file type")
)

// Configuration errors.
var (
	// ErrInvalidConfig indicates the configuration file is malformed or holds
	// unsupported values.
	ErrInvalidConfig = errors.New("configuration is invalid")
)
