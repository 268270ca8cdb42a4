package cmd

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var generateKeyCmd = &cobra.Command{
	Use:   "generatekey <key output file>",
	Short: "Generates a new symmetric key",
	Long: `Generates a random AES key and writes its raw bytes to the output file.

The key size comes from keys.symmetric_bits in the config (128 by default).
Keep this file private: anyone holding it can decrypt your files.`,
	Example: `  cryptr generatekey secret.key`,
	Args:    exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting generatekey command")
		spinner, cleanup := startSpinner("Generating key...", verbose)
		defer cleanup()

		result, err := workflows.GenerateKey(context.Background(), workflows.GenerateKeyOptions{
			OutputPath: args[0],
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Wrote %d-bit key to %s", result.KeyBits, result.OutputPath)

		spinner.FinalMSG = ui.Tick() + " Generated a " + ui.Highlight.Sprintf("%d-bit", result.KeyBits) +
			" key in " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Arrow() + " Share it with " + ui.Code.Sprint("cryptr encryptkey") + ", never as plain text"
		return nil
	},
}
