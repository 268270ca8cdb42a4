package secrets

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/utils"

	"golang.org/x/crypto/ssh"
)

// LoadPublicKey reads and parses an RSA public key from disk.
func LoadPublicKey(path string) (*rsa.PublicKey, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePublicKey(data)
}

// LoadPrivateKey reads and parses an RSA private key from disk.
func LoadPrivateKey(path string, passphrase []byte) (*rsa.PrivateKey, error) {
	data, err := utils.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParsePrivateKey(data, passphrase)
}

// ParsePublicKey decodes an RSA public key. Accepted encodings are DER or PEM
// SubjectPublicKeyInfo ("PUBLIC KEY"), DER or PEM PKCS#1 ("RSA PUBLIC KEY")
// and OpenSSH authorized_keys lines.
func ParsePublicKey(data []byte) (*rsa.PublicKey, error) {
	if block, _ := pem.Decode(data); block != nil {
		switch block.Type {
		case "PUBLIC KEY":
			return parsePKIXPublicKey(block.Bytes)
		case "RSA PUBLIC KEY":
			key, err := x509.ParsePKCS1PublicKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPublicKey, err)
			}
			return key, nil
		default:
			return nil, fmt.Errorf("%w: unsupported PEM block type %q", kerrors.ErrInvalidPublicKey, block.Type)
		}
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("ssh-")) {
		return parseAuthorizedKey(data)
	}

	if key, err := parsePKIXPublicKey(data); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS1PublicKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: not a DER, PEM or OpenSSH RSA public key", kerrors.ErrInvalidPublicKey)
	}
	return key, nil
}

func parsePKIXPublicKey(der []byte) (*rsa.PublicKey, error) {
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPublicKey, err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key, got %T", kerrors.ErrInvalidPublicKey, pub)
	}
	return rsaPub, nil
}

func parseAuthorizedKey(data []byte) (*rsa.PublicKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPublicKey, err)
	}
	cryptoPub, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported OpenSSH key type %s", kerrors.ErrInvalidPublicKey, pub.Type())
	}
	rsaPub, ok := cryptoPub.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key, got %s", kerrors.ErrInvalidPublicKey, pub.Type())
	}
	return rsaPub, nil
}

// ParsePrivateKey decodes an RSA private key. Accepted encodings are DER or
// PEM PKCS#8 ("PRIVATE KEY"), DER or PEM PKCS#1 ("RSA PRIVATE KEY") and
// OpenSSH private keys. passphrase is only consulted for OpenSSH keys; a
// protected key given no passphrase yields ErrPassphraseRequired.
func ParsePrivateKey(data []byte, passphrase []byte) (*rsa.PrivateKey, error) {
	if block, _ := pem.Decode(data); block != nil {
		switch block.Type {
		case "OPENSSH PRIVATE KEY":
			return parseOpenSSHPrivateKey(data, passphrase)
		case "PRIVATE KEY":
			return parsePKCS8PrivateKey(block.Bytes)
		case "RSA PRIVATE KEY":
			key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPrivateKey, err)
			}
			return key, nil
		default:
			return nil, fmt.Errorf("%w: unsupported PEM block type %q", kerrors.ErrInvalidPrivateKey, block.Type)
		}
	}

	if key, err := parsePKCS8PrivateKey(data); err == nil {
		return key, nil
	}
	key, err := x509.ParsePKCS1PrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: not a DER, PEM or OpenSSH RSA private key", kerrors.ErrInvalidPrivateKey)
	}
	return key, nil
}

func parsePKCS8PrivateKey(der []byte) (*rsa.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPrivateKey, err)
	}
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key, got %T", kerrors.ErrInvalidPrivateKey, key)
	}
	return rsaKey, nil
}

func parseOpenSSHPrivateKey(data []byte, passphrase []byte) (*rsa.PrivateKey, error) {
	var (
		raw interface{}
		err error
	)
	if len(passphrase) > 0 {
		raw, err = ssh.ParseRawPrivateKeyWithPassphrase(data, passphrase)
	} else {
		raw, err = ssh.ParseRawPrivateKey(data)
	}
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, kerrors.ErrPassphraseRequired
		}
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidPrivateKey, err)
	}

	rsaKey, ok := raw.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key, got %T", kerrors.ErrInvalidPrivateKey, raw)
	}
	return rsaKey, nil
}
