package cmd

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/utils"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptFileCmd = &cobra.Command{
	Use:   "encryptfile <input> <secret key file> <output>",
	Short: "Encrypts a file with a symmetric key",
	Long: `Encrypts the input file with the symmetric key and writes the result to output.

The output starts with a random 16 byte IV followed by the AES-CBC ciphertext,
so encrypting the same file twice gives different results.`,
	Example: `  cryptr encryptfile report.pdf secret.key report.pdf.enc`,
	Args:    exactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encryptfile command")
		spinner, cleanup := startSpinner("Encrypting file...", verbose)
		defer cleanup()

		result, err := workflows.EncryptFile(context.Background(), workflows.EncryptFileOptions{
			InputPath:  args[0],
			KeyPath:    args[1],
			OutputPath: args[2],
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Encrypted %d bytes into %d bytes", result.PlaintextSize, result.EnvelopeSize)

		spinner.FinalMSG = ui.Tick() + " Encrypted " + ui.Path.Sprint(result.InputPath) +
			" to " + ui.Path.Sprint(result.OutputPath) + " " + ui.Muted.Sprint(utils.FormatSize(result.EnvelopeSize))
		return nil
	},
}
