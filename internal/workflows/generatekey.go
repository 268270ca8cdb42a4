package workflows

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/configs"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"
)

// GenerateKeyOptions configures the generatekey workflow.
type GenerateKeyOptions struct {
	// OutputPath is where the raw key bytes are written.
	OutputPath string

	// Bits is the key size. If zero, keys.symmetric_bits from the active config is used.
	Bits int
}

// GenerateKeyResult contains the outcome of a generatekey operation.
type GenerateKeyResult struct {
	OutputPath string
	KeyBits    int
}

// GenerateKey creates a fresh symmetric key and writes its raw bytes to disk
// with 0600 permissions.
//
// Returns ErrKeyGeneration if the key size is unsupported or the random
// source fails.
func GenerateKey(ctx context.Context, opts GenerateKeyOptions) (*GenerateKeyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bits := opts.Bits
	if bits == 0 {
		bits = configs.Active.Keys.SymmetricBits
	}

	key, err := secrets.GenerateKey(bits)
	if err != nil {
		return nil, err
	}

	if err := utils.WriteFile(opts.OutputPath, key, 0600); err != nil {
		return nil, err
	}

	audit.Log(audit.Entry{
		Operation: "generatekey",
		Output:    opts.OutputPath,
		KeyBits:   bits,
	})

	return &GenerateKeyResult{OutputPath: opts.OutputPath, KeyBits: bits}, nil
}
