package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/PolarWolf314/cryptr/internal/audit"
	"github.com/PolarWolf314/cryptr/internal/ui"
	"github.com/PolarWolf314/cryptr/internal/workflows"

	"github.com/spf13/cobra"
)

var (
	logLimit      int
	logJSON       bool
	logReverse    bool
	logOperations string
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit the number of entries shown")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "print entries as JSON")
	logCmd.Flags().BoolVar(&logReverse, "reverse", false, "show most recent entries first")
	logCmd.Flags().StringVar(&logOperations, "operation", "", "filter by operations (comma-separated)")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Shows the history of cryptr operations",
	Long: `Shows entries from the audit log. Auditing is off by default; enable it
with audit.enabled in the config.`,
	Example: `  cryptr log
  cryptr log -n 10 --reverse
  cryptr log --operation encryptfile,decryptfile --json`,
	Args: exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		result, err := workflows.Log(context.Background(), workflows.LogOptions{
			Limit:      logLimit,
			Reverse:    logReverse,
			Operations: logOperations,
		})
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %w", err)
		}

		if !result.Enabled {
			fmt.Println(ui.Warning.Sprint("!") + " Auditing is disabled\n" +
				ui.Arrow() + " Set " + ui.Code.Sprint("enabled = true") + " in the " + ui.Code.Sprint("[audit]") + " section of your config")
			return nil
		}

		if logJSON {
			if result.Entries == nil {
				result.Entries = []audit.Entry{}
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result.Entries)
		}

		if len(result.Entries) == 0 {
			fmt.Println(ui.Muted.Sprint("no entries"))
			return nil
		}

		for _, e := range result.Entries {
			fmt.Printf("%s  %-12s  %s\n",
				ui.Muted.Sprint(workflows.FormatDateTime(e.Timestamp)),
				ui.Highlight.Sprint(e.Operation),
				workflows.FormatDetails(e))
		}
		return nil
	},
}
