package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List design tokens and their resolved colors",
	Long: `List every registered design token, grouped by category, with the color it
resolves to for the given mode and palettes.

Examples:
  themestudio tokens
  themestudio tokens --mode dark --neutral "#6b7280"
  themestudio tokens --json`,
	Args: cobra.NoArgs,
	RunE: runTokens,
}

var (
	tokensMode       string
	tokensNeutral    string
	tokensDataColors string
	tokensJSON       bool
)

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensMode, "mode", "m", "light", "Color mode: light or dark")
	tokensCmd.Flags().StringVarP(&tokensNeutral, "neutral", "n", "", "Neutral seed color")
	tokensCmd.Flags().StringVarP(&tokensDataColors, "data-colors", "d", "", "Comma separated data colors")
	tokensCmd.Flags().BoolVar(&tokensJSON, "json", false, "Output as JSON")
}

func runTokens(cmd *cobra.Command, args []string) error {
	mode, err := tokens.ParseMode(tokensMode)
	if err != nil {
		return err
	}
	palettes, err := buildPalettes(tokensNeutral, tokensDataColors)
	if err != nil {
		return err
	}

	values := theme.Preview(mode, palettes)
	if tokensJSON {
		return writeJSON(cmd.OutOrStdout(), "", values)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tTOKEN\tVALUE\tDESCRIPTION")
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Category, v.Token, v.Value, v.Description)
	}
	return w.Flush()
}
