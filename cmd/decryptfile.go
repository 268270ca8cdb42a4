package cmd

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/utils"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var decryptFileCmd = &cobra.Command{
	Use:     "decryptfile <input> <secret key file> <output>",
	Short:   "Decrypts a file with a symmetric key",
	Long:    `Decrypts a file produced by encryptfile and writes the original bytes to output.`,
	Example: `  cryptr decryptfile report.pdf.enc secret.key report.pdf`,
	Args:    exactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decryptfile command")
		spinner, cleanup := startSpinner("Decrypting file...", verbose)
		defer cleanup()

		result, err := workflows.DecryptFile(context.Background(), workflows.DecryptFileOptions{
			InputPath:  args[0],
			KeyPath:    args[1],
			OutputPath: args[2],
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Decrypted %d bytes into %d bytes", result.EnvelopeSize, result.PlaintextSize)

		spinner.FinalMSG = ui.Tick() + " Decrypted " + ui.Path.Sprint(result.InputPath) +
			" to " + ui.Path.Sprint(result.OutputPath) + " " + ui.Muted.Sprint(utils.FormatSize(result.PlaintextSize))
		return nil
	},
}
