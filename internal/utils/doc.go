// Package utils provides shared utility functions for Cryptr.
//
// # I/O Utilities
//
// These are the file collaborators of the envelope operations; the
// cryptographic core itself never touches the filesystem:
//   - ReadFile: loads a whole file, mapping a missing file to ErrFileNotFound
//   - WriteFile: atomically replaces a file so no partial output is left behind
//   - ReadStdin: reads piped data such as a private key
//
// # Terminal Utilities
//
//   - ReadPassphrase, ReadPassphraseFromTTY: hidden passphrase prompts
//   - IsTerminal: checks whether stdin is a terminal
//
// # String Utilities
//
//   - FormatPaths, FormatSize: human-readable summaries for CLI output
package utils
