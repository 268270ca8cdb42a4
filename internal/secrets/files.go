package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"

	"github.com/bmatcuk/doublestar/v4"
)

// ResolveFiles takes user-provided paths/globs and returns matching files.
// Relative patterns are resolved against baseDir. forEncryption=true selects
// files without suffix, forEncryption=false selects files ending in suffix.
func ResolveFiles(patterns []string, baseDir string, suffix string, forEncryption bool) ([]string, error) {
	if len(patterns) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	var files []string
	seen := make(map[string]bool) // Deduplicate.

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir, suffix, forEncryption)
		if err != nil {
			return nil, err
		}

		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}

	return files, nil
}

func resolvePattern(pattern string, baseDir string, suffix string, forEncryption bool) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return findFilesInDir(absPattern, suffix, forEncryption)
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern, pattern, suffix, forEncryption)
	}

	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrFileNotFound, pattern)
	}

	if !wantFile(absPattern, suffix, forEncryption) {
		if forEncryption {
			return nil, fmt.Errorf("%w: %s is already encrypted", kerrors.ErrInvalidFileType, pattern)
		}
		return nil, fmt.Errorf("%w: %s does not end in %s", kerrors.ErrInvalidFileType, pattern, suffix)
	}

	return []string{absPattern}, nil
}

func expandGlob(absPattern string, pattern string, suffix string, forEncryption bool) ([]string, error) {
	// doublestar adds ** support on top of filepath.Glob.
	matches, err := doublestar.FilepathGlob(absPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}

	var filtered []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if wantFile(m, suffix, forEncryption) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func findFilesInDir(dir string, suffix string, forEncryption bool) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if wantFile(path, suffix, forEncryption) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}

func wantFile(path string, suffix string, forEncryption bool) bool {
	encrypted := strings.HasSuffix(filepath.Base(path), suffix)
	return encrypted != forEncryption
}

// EncryptedPath returns the batch output path for a plaintext file.
func EncryptedPath(path string, suffix string) string {
	return path + suffix
}

// DecryptedPath returns the batch output path for an encrypted file.
func DecryptedPath(path string, suffix string) string {
	return strings.TrimSuffix(path, suffix)
}
