package workflows

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/configs"
	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"
)

// DecryptKeyOptions configures the decryptkey workflow.
type DecryptKeyOptions struct {
	// WrappedKeyPath is the file produced by encryptkey.
	WrappedKeyPath string

	// PrivateKeyPath is the RSA private key (DER, PEM or OpenSSH).
	// Ignored when PrivateKeyData is set.
	PrivateKeyPath string

	// PrivateKeyData contains the private key bytes when reading from stdin.
	PrivateKeyData []byte

	// Passphrase unlocks a protected OpenSSH private key.
	Passphrase []byte

	// PassphrasePrompt is called once if the key turns out to be protected
	// and no Passphrase was given.
	PassphrasePrompt func() ([]byte, error)

	OutputPath string

	// Padding overrides wrap.padding from the active config when set.
	Padding secrets.Padding
}

// DecryptKeyResult contains the outcome of a decryptkey operation.
type DecryptKeyResult struct {
	OutputPath string
	Padding    secrets.Padding
	KeySize    int
}

// DecryptKey unwraps a symmetric key with an RSA private key and writes the
// raw key bytes with 0600 permissions.
//
// Returns ErrFileNotFound if the wrapped key or private key file is missing.
// Returns ErrUnwrap if the private key cannot be decoded, is the wrong key,
// or the wrapped key is malformed.
func DecryptKey(ctx context.Context, opts DecryptKeyOptions) (*DecryptKeyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	padding := opts.Padding
	if padding == "" {
		padding = configs.Active.Padding()
	}

	wrapped, err := utils.ReadFile(opts.WrappedKeyPath)
	if err != nil {
		return nil, err
	}

	privateKey, err := loadPrivateKey(opts)
	if err != nil {
		return nil, err
	}

	key, err := secrets.UnwrapKey(wrapped, privateKey, padding)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(opts.OutputPath, key, 0600); err != nil {
		return nil, err
	}

	keyFile := opts.PrivateKeyPath
	if len(opts.PrivateKeyData) > 0 {
		keyFile = "<stdin>"
	}
	audit.Log(audit.Entry{
		Operation: "decryptkey",
		Input:     opts.WrappedKeyPath,
		KeyFile:   keyFile,
		Output:    opts.OutputPath,
		Padding:   string(padding),
	})

	return &DecryptKeyResult{OutputPath: opts.OutputPath, Padding: padding, KeySize: len(key)}, nil
}

// loadPrivateKey loads the private key from bytes or from disk, prompting
// for a passphrase if the key needs one.
func loadPrivateKey(opts DecryptKeyOptions) (*rsa.PrivateKey, error) {
	data := opts.PrivateKeyData
	if len(data) == 0 {
		var err error
		data, err = utils.ReadFile(opts.PrivateKeyPath)
		if err != nil {
			return nil, err
		}
	}

	key, err := secrets.ParsePrivateKey(data, opts.Passphrase)
	if errors.Is(err, kerrors.ErrPassphraseRequired) && opts.PassphrasePrompt != nil {
		passphrase, promptErr := opts.PassphrasePrompt()
		if promptErr != nil {
			return nil, fmt.Errorf("%w: %w: %v", kerrors.ErrUnwrap, kerrors.ErrPassphraseRequired, promptErr)
		}
		key, err = secrets.ParsePrivateKey(data, passphrase)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrUnwrap, err)
	}

	return key, nil
}
