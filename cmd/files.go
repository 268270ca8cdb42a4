package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/utils"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptFilesCmd = &cobra.Command{
	Use:   "encryptfiles <secret key file> <pattern>...",
	Short: "Encrypts many files with one symmetric key",
	Long: `Encrypts every file matched by the patterns. Patterns may be files,
directories (searched recursively) or globs, including ** globs.

Each file is written next to the original with the encrypted suffix
(files.encrypted_suffix, ".enc" by default). Files that already carry the
suffix are skipped. Files are processed in parallel by files.workers workers;
a failure on one file does not stop the others.`,
	Example: `  cryptr encryptfiles secret.key reports/
  cryptr encryptfiles secret.key "**/*.pdf" notes.txt`,
	Args: minimumArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatchCommand(args, true)
	},
}

var decryptFilesCmd = &cobra.Command{
	Use:   "decryptfiles <secret key file> <pattern>...",
	Short: "Decrypts many files with one symmetric key",
	Long: `Decrypts every file matched by the patterns that carries the encrypted
suffix, writing the result to the same path without the suffix.`,
	Example: `  cryptr decryptfiles secret.key reports/
  cryptr decryptfiles secret.key "**/*.enc"`,
	Args: minimumArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatchCommand(args, false)
	},
}

func runBatchCommand(args []string, encrypt bool) error {
	verb, past := "Decrypting", "Decrypted"
	run := workflows.DecryptFiles
	if encrypt {
		verb, past = "Encrypting", "Encrypted"
		run = workflows.EncryptFiles
	}

	Logger.Infof("Starting batch command: %s %d patterns", verb, len(args)-1)
	spinner, cleanup := startSpinner(verb+" files...", verbose)
	defer cleanup()

	result, err := run(context.Background(), workflows.BatchOptions{
		KeyPath:  args[0],
		Patterns: args[1:],
	})
	if result == nil {
		return fail(spinner, err)
	}

	outputs := make([]string, len(result.Processed))
	for i, r := range result.Processed {
		Logger.Debugf("%s %s -> %s", past, r.InputPath, r.OutputPath)
		outputs[i] = r.OutputPath
	}

	finalMessage := ""
	if len(outputs) > 0 {
		finalMessage = ui.Tick() + " " + past + " " + strconv.Itoa(len(outputs)) +
			" files. The following files were created:" + formatOutputs(outputs)
	}

	if err != nil {
		for _, f := range result.Failed {
			finalMessage += ui.Cross() + " " + ui.Path.Sprint(f.InputPath) + ": " + f.Err.Error() + "\n"
		}
		if len(result.Failed) == 0 {
			// Cancelled before every file was handed out.
			finalMessage += ui.Cross() + " " + err.Error() + "\n"
		}
		spinner.FinalMSG = finalMessage
		Logger.Errorf("%d files failed", len(result.Failed))
		return &reportedError{err: fmt.Errorf("%w: %w", errBatchFailed, err)}
	}

	spinner.FinalMSG = finalMessage
	return nil
}

var errBatchFailed = errors.New("some files could not be processed")

func formatOutputs(paths []string) string {
	if len(paths) > 20 {
		return " " + ui.Muted.Sprintf("%d files", len(paths)) + "\n"
	}
	return utils.FormatPaths(paths)
}
