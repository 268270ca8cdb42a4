package workflows

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"
)

// DecryptFileOptions configures the decryptfile workflow.
type DecryptFileOptions struct {
	InputPath  string
	KeyPath    string
	OutputPath string
}

// DecryptFileResult contains the outcome of a decryptfile operation.
type DecryptFileResult struct {
	InputPath     string
	OutputPath    string
	EnvelopeSize  int
	PlaintextSize int
}

// DecryptFile reads an envelope, decrypts it with a symmetric key and writes
// the plaintext byte-for-byte. Nothing is written on failure.
//
// Returns ErrFileNotFound if the input or key file is missing.
// Returns ErrMalformedEnvelope if the input is shorter than the IV.
// Returns ErrDecryption on a wrong key, corrupted data or invalid padding.
func DecryptFile(ctx context.Context, opts DecryptFileOptions) (*DecryptFileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := utils.ReadFile(opts.KeyPath)
	if err != nil {
		return nil, err
	}

	envelope, err := utils.ReadFile(opts.InputPath)
	if err != nil {
		return nil, err
	}

	plaintext, err := secrets.DecryptEnvelope(envelope, key)
	if err != nil {
		return nil, err
	}

	// #nosec G306 -- the decrypted file is the user's own document and should stay editable.
	if err := utils.WriteFile(opts.OutputPath, plaintext, 0644); err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "decryptfile",
		Input:     opts.InputPath,
		KeyFile:   opts.KeyPath,
		Output:    opts.OutputPath,
	})

	return &DecryptFileResult{
		InputPath:     opts.InputPath,
		OutputPath:    opts.OutputPath,
		EnvelopeSize:  len(envelope),
		PlaintextSize: len(plaintext),
	}, nil
}
