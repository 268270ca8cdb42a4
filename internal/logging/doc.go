// Package logger provides leveled console logging for Cryptr commands.
//
// Output is prefixed with a colored level tag. Verbosity is controlled by
// the --verbose and --debug persistent flags:
//
//	Logger.Infof()           // Shown with --verbose or --debug
//	Logger.Debugf()          // Shown only with --debug
//	Logger.Warnf()           // Shown with --verbose or --debug
//	Logger.WarnfAlways()     // Always shown
//	Logger.Errorf()          // Shown with --debug
//	Logger.ErrorfAndReturn() // Errorf, then returns the message as an error
//
// The root command builds the logger in its PersistentPreRunE:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %s", path)
package logger
