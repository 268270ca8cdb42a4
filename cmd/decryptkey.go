package cmd

import (
	"context"

	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/utils"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var privateKeyStdin bool

func init() {
	decryptKeyCmd.Flags().BoolVar(&privateKeyStdin, "private-key-stdin", false, "read the private key from stdin")
}

var decryptKeyCmd = &cobra.Command{
	Use:   "decryptkey <encrypted key file> <private key file> <output>",
	Short: "Decrypts a symmetric key with an RSA private key",
	Long: `Unwraps a key produced by encryptkey using your RSA private key and writes
the raw symmetric key to output.

Private keys may be DER or PEM (PKCS#8 or PKCS#1) or OpenSSH keys. Passphrase
protected OpenSSH keys prompt for the passphrase on the terminal.

With --private-key-stdin the private key argument is omitted and the key is
read from stdin instead.`,
	Example: `  cryptr decryptkey secret.key.enc ~/.ssh/id_rsa secret.key

  # Use with a secrets manager
  vault kv get -field=private_key secret/cryptr | cryptr decryptkey --private-key-stdin secret.key.enc secret.key`,
	Args: func(cmd *cobra.Command, args []string) error {
		if privateKeyStdin {
			return exactArgs(2)(cmd, args)
		}
		return exactArgs(3)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decryptkey command")
		spinner, cleanup := startSpinner("Decrypting key...", verbose)
		defer cleanup()

		opts := workflows.DecryptKeyOptions{WrappedKeyPath: args[0]}

		// Read private key from stdin early, before anything else can consume stdin.
		if privateKeyStdin {
			Logger.Debugf("Reading private key from stdin")
			keyData, err := utils.ReadStdin()
			if err != nil {
				return Logger.ErrorfAndReturn("failed to read private key from stdin: %v", err)
			}
			Logger.Infof("Read %d bytes of private key data from stdin", len(keyData))
			opts.PrivateKeyData = keyData
			opts.OutputPath = args[1]
		} else {
			opts.PrivateKeyPath = args[1]
			opts.OutputPath = args[2]
		}

		// Without a terminal a protected key fails with ErrPassphraseRequired.
		if privateKeyStdin || utils.IsTerminal() {
			opts.PassphrasePrompt = func() ([]byte, error) {
				spinner.Stop()
				defer func() {
					if !verbose && !debug {
						spinner.Start()
					}
				}()
				if privateKeyStdin {
					return utils.ReadPassphraseFromTTY("Enter passphrase for private key: ")
				}
				return utils.ReadPassphrase("Enter passphrase for private key: ")
			}
		}

		result, err := workflows.DecryptKey(context.Background(), opts)
		if err != nil {
			return fail(spinner, err)
		}
		Logger.Infof("Unwrapped a %d byte key using %s padding", result.KeySize, result.Padding)

		spinner.FinalMSG = ui.Tick() + " Decrypted key written to " + ui.Path.Sprint(result.OutputPath) + "\n" +
			ui.Arrow() + " Decrypt files with " + ui.Code.Sprint("cryptr decryptfile")
		return nil
	},
}
