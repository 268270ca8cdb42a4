package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
)

const (
	// DefaultKeyBits is the size of keys produced by CreateSymmetricKey (AES-128).
	DefaultKeyBits = 128

	// IVSize is the length of the IV prefix of every envelope.
	IVSize = aes.BlockSize
)

// randReader is the secure random source shared by every operation.
// crypto/rand.Reader is safe for concurrent use.
var randReader io.Reader = rand.Reader

// ValidKeyBits reports whether bits is a supported symmetric key size.
func ValidKeyBits(bits int) bool {
	switch bits {
	case 128, 192, 256:
		return true
	}
	return false
}

// ValidKeyLength reports whether key has a supported AES key length.
func ValidKeyLength(key []byte) bool {
	return ValidKeyBits(len(key) * 8)
}

// CreateSymmetricKey generates a new random symmetric key of DefaultKeyBits.
func CreateSymmetricKey() ([]byte, error) {
	return GenerateKey(DefaultKeyBits)
}

// GenerateKey generates a new random AES key of the given bit length.
func GenerateKey(bits int) ([]byte, error) {
	if !ValidKeyBits(bits) {
		return nil, fmt.Errorf("%w: unsupported key size of %d bits", kerrors.ErrKeyGeneration, bits)
	}

	key := make([]byte, bits/8)
	if _, err := io.ReadFull(randReader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrKeyGeneration, err)
	}

	return key, nil
}

// EncryptEnvelope encrypts plaintext with AES-CBC under a fresh random IV and
// returns the envelope IV || ciphertext. PKCS#7 padding is always applied, so
// block-aligned input gains one full padding block.
func EncryptEnvelope(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrEncryption, err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(randReader, iv); err != nil {
		return nil, fmt.Errorf("%w: failed to generate IV: %v", kerrors.ErrEncryption, err)
	}

	ciphertext := pkcs7Pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, ciphertext)

	return Envelope{IV: iv, Ciphertext: ciphertext}.Bytes(), nil
}

// DecryptEnvelope splits data into IV and ciphertext, decrypts the ciphertext
// with AES-CBC and strips the padding.
//
// No integrity check is performed: a tampered envelope either fails padding
// validation with ErrDecryption or decrypts to altered plaintext.
func DecryptEnvelope(data []byte, key []byte) ([]byte, error) {
	env, err := ParseEnvelope(data)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryption, err)
	}

	if len(env.Ciphertext) == 0 || len(env.Ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d",
			kerrors.ErrDecryption, len(env.Ciphertext), aes.BlockSize)
	}

	plaintext := make([]byte, len(env.Ciphertext))
	cipher.NewCBCDecrypter(block, env.IV).CryptBlocks(plaintext, env.Ciphertext)

	plaintext, err = pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrDecryption, err)
	}

	return plaintext, nil
}
