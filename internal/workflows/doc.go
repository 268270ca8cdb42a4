// Package workflows provides high-level orchestration for Cryptr commands.
//
// Each workflow loads its inputs from disk, runs one operation from the
// secrets package, writes the result and records an audit entry. The cmd/
// package stays a thin layer that parses arguments, calls a workflow and
// formats the result.
//
// # Available Workflows
//
//   - GenerateKey: writes a fresh symmetric key
//   - EncryptFile / DecryptFile: convert one file to or from an envelope
//   - EncryptKey / DecryptKey: wrap or unwrap a symmetric key with RSA
//   - EncryptFiles / DecryptFiles: batch versions over globs and directories
//   - Log: reads the audit trail
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors. Use
// errors.Is() to check for specific conditions:
//
//	_, err := workflows.DecryptFile(ctx, opts)
//	if errors.Is(err, kerrors.ErrDecryption) {
//	    // wrong key or corrupted file
//	}
//
// An output file is only written after its operation succeeded, so a failed
// command never leaves a partial result behind.
package workflows
