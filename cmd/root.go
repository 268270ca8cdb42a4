package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PolarWolf314/cryptr/internal/configs"
	logger "github.com/PolarWolf314/cryptr/internal/logging"
	"github.com/PolarWolf314/cryptr/internal/ui"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose    bool
	debug      bool
	configPath string
	Logger     logger.Logger

	RootCmd = &cobra.Command{
		Use:   "cryptr",
		Short: "Cryptr - encrypt files with AES and share the key with RSA",
		Long: `Cryptr encrypts whole files with a symmetric AES key and wraps that key
with an RSA public key so it can travel next to the encrypted files.

A typical exchange:
  cryptr generatekey secret.key
  cryptr encryptfile report.pdf secret.key report.pdf.enc
  cryptr encryptkey secret.key alice.pub secret.key.enc

  # on Alice's machine
  cryptr decryptkey secret.key.enc ~/.ssh/id_rsa secret.key
  cryptr decryptfile report.pdf.enc secret.key report.pdf`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			printBanner(cmd.OutOrStdout())
			return cmd.Help()
		},
	}
)

// errInvalidArgs marks errors that should be followed by the command usage.
var errInvalidArgs = errors.New("invalid arguments")

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is <user config dir>/cryptr/config.toml)")

	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	})

	RootCmd.AddCommand(generateKeyCmd)
	RootCmd.AddCommand(encryptFileCmd)
	RootCmd.AddCommand(decryptFileCmd)
	RootCmd.AddCommand(encryptKeyCmd)
	RootCmd.AddCommand(decryptKeyCmd)
	RootCmd.AddCommand(encryptFilesCmd)
	RootCmd.AddCommand(decryptFilesCmd)
	RootCmd.AddCommand(logCmd)
}

// Execute runs the root command. Errors already shown to the user are not
// printed again; argument errors are followed by the usage text.
func Execute() error {
	cmd, err := RootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if errors.As(err, &reported) {
		return err
	}

	fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
	if errors.Is(err, errInvalidArgs) {
		fmt.Fprintln(os.Stderr)
		_ = cmd.Usage()
	}
	return err
}

// loadConfig replaces configs.Active with the file given by --config or the
// default location.
func loadConfig(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		defaultPath, err := configs.DefaultPath()
		if err != nil {
			Logger.Warnf("Using built-in configuration: %v", err)
			configs.Active = configs.Default()
			return nil
		}
		path = defaultPath
	}

	Logger.Debugf("Loading config from %s", path)
	config, err := configs.Load(path)
	if err != nil {
		return err
	}
	configs.Active = config
	Logger.Debugf("Active config: symmetric_bits=%d padding=%s workers=%d suffix=%s audit=%t",
		config.Keys.SymmetricBits, config.Padding(), config.Files.Workers, config.Files.EncryptedSuffix, config.Audit.Enabled)
	return nil
}

func printBanner(w io.Writer) {
	banner := figure.NewColorFigure("Cryptr", "alligator2", "green", true)
	if color.NoColor {
		fmt.Fprintln(w, banner.String())
		return
	}
	fmt.Fprintln(w, banner.ColorString())
}

// exactArgs is cobra.ExactArgs with an error that triggers the usage text.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s expects %d arguments, got %d", errInvalidArgs, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs with an error that triggers the usage text.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s expects at least %d arguments, got %d", errInvalidArgs, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// Helper functions for testing

// ResetGlobalState restores every flag to its default and the active config
// to the built-in one, for testing.
func ResetGlobalState() {
	reset := func(flags *pflag.FlagSet) {
		flags.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	for _, c := range append([]*cobra.Command{RootCmd}, RootCmd.Commands()...) {
		reset(c.Flags())
		reset(c.PersistentFlags())
	}
	configs.Active = configs.Default()
}
