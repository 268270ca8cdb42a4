package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/configs"
	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"
)

// EncryptKeyOptions configures the encryptkey workflow.
type EncryptKeyOptions struct {
	// KeyPath is the raw symmetric key to wrap.
	KeyPath string

	// PublicKeyPath is the recipient's RSA public key (DER, PEM or OpenSSH).
	PublicKeyPath string

	OutputPath string

	// Padding overrides wrap.padding from the active config when set.
	Padding secrets.Padding
}

// EncryptKeyResult contains the outcome of an encryptkey operation.
type EncryptKeyResult struct {
	OutputPath    string
	Padding       secrets.Padding
	PublicKeyBits int
	WrappedSize   int
}

// EncryptKey wraps a symmetric key file with an RSA public key.
//
// Returns ErrFileNotFound if the key or public key file is missing.
// Returns ErrWrap if the public key cannot be decoded or the key is too
// large for the modulus and padding.
func EncryptKey(ctx context.Context, opts EncryptKeyOptions) (*EncryptKeyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	padding := opts.Padding
	if padding == "" {
		padding = configs.Active.Padding()
	}

	key, err := utils.ReadFile(opts.KeyPath)
	if err != nil {
		return nil, err
	}

	publicKey, err := secrets.LoadPublicKey(opts.PublicKeyPath)
	if err != nil {
		if errors.Is(err, kerrors.ErrFileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", kerrors.ErrWrap, err)
	}

	wrapped, err := secrets.WrapKey(key, publicKey, padding)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(opts.OutputPath, wrapped, 0600); err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "encryptkey",
		Input:     opts.KeyPath,
		KeyFile:   opts.PublicKeyPath,
		Output:    opts.OutputPath,
		Padding:   string(padding),
	})

	return &EncryptKeyResult{
		OutputPath:    opts.OutputPath,
		Padding:       padding,
		PublicKeyBits: publicKey.N.BitLen(),
		WrappedSize:   len(wrapped),
	}, nil
}
