package cmd

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var encryptKeyCmd = &cobra.Command{
	Use:   "encryptkey <secret key file> <public key file> <output>",
	Short: "Encrypts a symmetric key with an RSA public key",
	Long: `Wraps the symmetric key with the recipient's RSA public key so only the
holder of the matching private key can recover it.

Public keys may be DER or PEM (SubjectPublicKeyInfo or PKCS#1) or an
OpenSSH ssh-rsa line. The padding comes from wrap.padding in the config.`,
	Example: `  cryptr encryptkey secret.key alice.pub secret.key.enc
  cryptr encryptkey secret.key ~/.ssh/id_rsa.pub secret.key.enc`,
	Args: exactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encryptkey command")
		spinner, cleanup := startSpinner("Encrypting key...", verbose)
		defer cleanup()

		result, err := workflows.EncryptKey(context.Background(), workflows.EncryptKeyOptions{
			KeyPath:       args[0],
			PublicKeyPath: args[1],
			OutputPath:    args[2],
		})
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Wrapped key with a %d-bit RSA key using %s padding", result.PublicKeyBits, result.Padding)

		spinner.FinalMSG = ui.Tick() + " Encrypted key written to " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Arrow() + " The recipient can recover it with " + ui.Code.Sprint("cryptr decryptkey")
		return nil
	},
}
