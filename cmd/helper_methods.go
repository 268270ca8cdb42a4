package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	kerrors "github.com/PolarWolf314/cryptr/internal/errors"
	"github.com/PolarWolf314/cryptr/internal/ui"

	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns the spinner and a function that should be deferred to clean up.
//
// IMPORTANT: spinner.FinalMSG values do NOT need trailing newlines. The cleanup function
// automatically calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	err := s.Color("cyan")
	if err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// reportedError is an error whose message was already shown through a
// spinner's final message. Execute does not print it again.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// fail shows err as the spinner's final message and returns it marked as reported.
func fail(s *spinner.Spinner, err error) error {
	Logger.Errorf("%v", err)
	s.FinalMSG = describeError(err)
	return &reportedError{err: err}
}

// describeError turns an operation error into a user-facing message with a hint.
func describeError(err error) string {
	msg := ui.Cross() + " "
	hint := ""

	switch {
	case errors.Is(err, kerrors.ErrFileNotFound):
		msg += "A required file does not exist"
		hint = "Check the path and try again"
	case errors.Is(err, kerrors.ErrPassphraseRequired):
		msg += "The private key is protected by a passphrase"
		hint = "Run the command from a terminal so the passphrase can be entered"
	case errors.Is(err, kerrors.ErrMalformedEnvelope):
		msg += "The input is too short to be an encrypted file"
		hint = "Encrypted files start with a " + ui.Highlight.Sprint("16 byte") + " IV"
	case errors.Is(err, kerrors.ErrDecryption):
		msg += "Failed to decrypt"
		hint = "Make sure you are using the same key the file was encrypted with"
	case errors.Is(err, kerrors.ErrEncryption):
		msg += "Failed to encrypt"
		hint = "Keys must be 16, 24 or 32 bytes, as written by " + ui.Code.Sprint("cryptr generatekey")
	case errors.Is(err, kerrors.ErrUnwrap):
		msg += "Failed to decrypt the key"
		hint = "Make sure the private key matches the public key the key was encrypted for"
	case errors.Is(err, kerrors.ErrWrap):
		msg += "Failed to encrypt the key"
		hint = "Public keys may be DER, PEM or OpenSSH encoded RSA keys"
	case errors.Is(err, kerrors.ErrKeyGeneration):
		msg += "Failed to generate a key"
	case errors.Is(err, kerrors.ErrNoFilesFound):
		msg += "No matching files found"
	case errors.Is(err, kerrors.ErrInvalidFileType):
		msg += "Invalid file type"
	case errors.Is(err, kerrors.ErrInvalidConfig):
		msg += "Invalid configuration"
		hint = "Fix the file given by " + ui.Flag.Sprint("--config") + " or remove it to use the defaults"
	default:
		msg += "Operation failed"
	}

	msg += "\n" + ui.Error.Sprint("Error: ") + err.Error()
	if hint != "" {
		msg += "\n" + ui.Arrow() + " " + hint
	}
	return msg
}
