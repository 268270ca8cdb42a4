// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content with colors when the terminal supports them and
// fall back to plain text decorations (backticks, quotes) when NO_COLOR is
// set or output is not a terminal.
//
//	ui.Code.Sprint("cryptr generatekey secret.key") // Commands
//	ui.Path.Sprint("report.pdf.enc")                // File paths
//	ui.Highlight.Sprint("AES-128-CBC")              // Emphasized values
//	ui.Muted.Sprint("32 bytes")                     // Secondary text
//
// Tick, Cross and Arrow return the status marks that prefix final messages.
package ui
