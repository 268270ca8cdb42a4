// Package secrets provides the cryptographic core of Cryptr.
//
// It implements the key-and-data envelope scheme: symmetric key generation,
// AES-CBC encryption of whole payloads into self-describing envelopes, and
// RSA wrapping of the symmetric key so it can be shared next to the
// encrypted files.
//
// # Encryption Architecture
//
// Cryptr uses a hybrid encryption scheme:
//
//  1. A random 128-bit AES key (192 and 256 are also supported) encrypts files
//  2. A recipient's RSA public key wraps a copy of that key
//  3. The recipient unwraps the key with their private key, then decrypts files
//
// # Envelope Format
//
// Every encrypted payload is laid out as:
//
//	offset 0..15   : IV, 16 random bytes, fresh for every call
//	offset 16..end : AES-CBC ciphertext with PKCS#7 padding
//
// There is no header or version tag; the reader must know the algorithm.
// Re-encrypting the same input produces different output because of the IV.
//
// # Security Considerations
//
// The envelope is not authenticated. A modified envelope either fails
// padding validation with ErrDecryption or decrypts to altered plaintext.
//
// Key wrapping uses RSAES-PKCS1-v1_5 by default, matching existing wrapped
// key files, and RSA-OAEP with SHA-256 when configured.
//
// # Key Material
//
// RSA key pairs are never created here. Public and private keys are parsed
// from DER, PEM or OpenSSH encodings supplied by the caller.
//
// All functions are stateless and safe for concurrent use.
package secrets
