package workflows

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"
)

// EncryptFileOptions configures the encryptfile workflow.
type EncryptFileOptions struct {
	InputPath  string
	KeyPath    string
	OutputPath string
}

// EncryptFileResult contains the outcome of an encryptfile operation.
type EncryptFileResult struct {
	InputPath     string
	OutputPath    string
	PlaintextSize int
	EnvelopeSize  int
}

// EncryptFile encrypts a whole file with a symmetric key and writes the
// envelope (IV followed by ciphertext). The input is treated as opaque bytes.
//
// Returns ErrFileNotFound if the input or key file is missing.
// Returns ErrEncryption if the key has an invalid length.
func EncryptFile(ctx context.Context, opts EncryptFileOptions) (*EncryptFileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := utils.ReadFile(opts.KeyPath)
	if err != nil {
		return nil, err
	}

	plaintext, err := utils.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	envelope, err := secrets.EncryptEnvelope(plaintext, key)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(opts.OutputPath, envelope, 0600); err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "encryptfile",
		Input:     opts.InputPath,
		KeyFile:   opts.KeyPath,
		Output:    opts.OutputPath,
	})

	return &EncryptFileResult{
		InputPath:     opts.InputPath,
		OutputPath:    opts.OutputPath,
		PlaintextSize: len(plaintext),
		EnvelopeSize:  len(envelope),
	}, nil
}
