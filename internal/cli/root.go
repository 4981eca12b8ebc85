package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lookupload",
	Short: "Upload reference lookup lists to Firestore",
	Long: `lookupload writes the fixed option lists used by the fishing log app
(gender, health, rod and reel types, line thickness, bait type, color and
weight, sea color, moon phase) into Firestore, one document per list:

  lookup_tables/<category>  ->  { "values": [ ... ] }

Every write replaces the whole document, so running it again converges to
the same state. There is no rollback: if a write fails, lists written
before it stay updated.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or unknown category
  11 - Credential file missing or invalid (nothing written)
  12 - Database unreachable
  13 - A document write failed
  14 - Permission denied`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
