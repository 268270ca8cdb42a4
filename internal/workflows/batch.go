package workflows

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/configs"
	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/secrets"
	"github.com/PolarWolf314/cryptr/internal/utils"

	"github.com/hashicorp/go-multierror"
)

// BatchOptions configures the encryptfiles and decryptfiles workflows.
type BatchOptions struct {
	// KeyPath is the raw symmetric key shared by every file.
	KeyPath string

	// Patterns are files, directories or doublestar globs.
	Patterns []string

	// BaseDir resolves relative patterns. If empty, the working directory is used.
	BaseDir string

	// Workers caps concurrent file operations. If zero, files.workers from the active config is used.
	Workers int

	// Suffix marks encrypted files. If empty, files.encrypted_suffix from the active config is used.
	Suffix string
}

// FileResult describes one processed file.
type FileResult struct {
	InputPath  string
	OutputPath string
	InputSize  int
	OutputSize int
}

// FileFailure describes one file that could not be processed.
type FileFailure struct {
	InputPath string
	Err       error
}

// BatchResult contains the outcome of a batch operation.
type BatchResult struct {
	// Processed lists files written, sorted by input path.
	Processed []FileResult

	// Failed lists files that failed, sorted by input path.
	Failed []FileFailure
}

// EncryptFiles encrypts every matching plaintext file to <path><suffix>.
//
// Files already ending in the suffix are skipped when matched by a glob or
// directory. A failure on one file does not stop the others; the returned
// *multierror.Error holds every per-file error.
//
// Returns ErrNoFilesFound if nothing matches.
// Returns ErrEncryption if the key has an invalid length.
func EncryptFiles(ctx context.Context, opts BatchOptions) (*BatchResult, error) {
	return runBatch(ctx, opts, true)
}

// DecryptFiles decrypts every matching <path><suffix> file back to <path>.
//
// Returns ErrNoFilesFound if nothing matches.
// Returns ErrDecryption if the key has an invalid length.
func DecryptFiles(ctx context.Context, opts BatchOptions) (*BatchResult, error) {
	return runBatch(ctx, opts, false)
}

func runBatch(ctx context.Context, opts BatchOptions, encrypt bool) (*BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	suffix := opts.Suffix
	if suffix == "" {
		suffix = configs.Active.Files.EncryptedSuffix
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = configs.Active.Files.Workers
	}
	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		baseDir = wd
	}

	key, err := utils.ReadFile(opts.KeyPath)
	if err != nil {
		return nil, err
	}
	if !secrets.ValidKeyLength(key) {
		sentinel := kerrors.ErrDecryption
		if encrypt {
			sentinel = kerrors.ErrEncryption
		}
		return nil, fmt.Errorf("%w: key is %d bytes, expected 16, 24 or 32", sentinel, len(key))
	}

	files, err := secrets.ResolveFiles(opts.Patterns, baseDir, suffix, encrypt)
	if err != nil {
		return nil, err
	}

	if workers > len(files) {
		workers = len(files)
	}

	process := func(path string) (FileResult, error) {
		if encrypt {
			return encryptOne(path, key, suffix)
		}
		return decryptOne(path, key, suffix)
	}

	jobs := make(chan string)
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		result = &BatchResult{}
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res, err := process(path)
				mu.Lock()
				if err != nil {
					result.Failed = append(result.Failed, FileFailure{InputPath: path, Err: err})
				} else {
					result.Processed = append(result.Processed, res)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range files {
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(result.Processed, func(i, j int) bool {
		return result.Processed[i].InputPath < result.Processed[j].InputPath
	})
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].InputPath < result.Failed[j].InputPath
	})

	operation := "decryptfiles"
	if encrypt {
		operation = "encryptfiles"
	}
	processed := make([]string, len(result.Processed))
	for i, r := range result.Processed {
		processed[i] = r.InputPath
	}
	audit.Log(audit.Entry{
		Operation:   operation,
		KeyFile:     opts.KeyPath,
		Files:       processed,
		FailedCount: len(result.Failed),
	})

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if len(result.Failed) > 0 {
		var merr *multierror.Error
		for _, f := range result.Failed {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", f.InputPath, f.Err))
		}
		return result, merr
	}

	return result, nil
}

func encryptOne(path string, key []byte, suffix string) (FileResult, error) {
	plaintext, err := utils.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}

	envelope, err := secrets.EncryptEnvelope(plaintext, key)
	if err != nil {
		return FileResult{}, err
	}

	out := secrets.EncryptedPath(path, suffix)
	if err := utils.WriteFile(out, envelope, 0600); err != nil {
		return FileResult{}, err
	}

	return FileResult{InputPath: path, OutputPath: out, InputSize: len(plaintext), OutputSize: len(envelope)}, nil
}

func decryptOne(path string, key []byte, suffix string) (FileResult, error) {
	envelope, err := utils.ReadFile(path)
	if err != nil {
		return FileResult{}, err
	}

	plaintext, err := secrets.DecryptEnvelope(envelope, key)
	if err != nil {
		return FileResult{}, err
	}

	out := secrets.DecryptedPath(path, suffix)
	// #nosec G306 -- decrypted files keep the permissions of an ordinary user document.
	if err := utils.WriteFile(out, plaintext, 0644); err != nil {
		return FileResult{}, err
	}

	return FileResult{InputPath: path, OutputPath: out, InputSize: len(envelope), OutputSize: len(plaintext)}, nil
}
