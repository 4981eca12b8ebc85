package cli

import (
	"github.com/fishub/lookupload/internal/lookup"
	"github.com/fishub/lookupload/internal/tui"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [category...]",
	Short: "Show the built-in lookup lists",
	Long: `List prints the lists that 'lookupload load' writes. It never contacts
the database.

Without arguments it prints each category with its value count. With
category names, or --values, it prints the values in stored order.
Output is tab-separated when piped or when NO_COLOR or CI is set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runList,
}

var listValues bool

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listValues, "values", false, "Print every value, not just the counts")
}

func runList(cmd *cobra.Command, args []string) error {
	categories, err := lookup.Select(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	mode := tui.DetectMode(out)
	if len(args) > 0 || listValues {
		return tui.RenderValues(out, mode, categories)
	}
	return tui.RenderSummary(out, mode, categories)
}
