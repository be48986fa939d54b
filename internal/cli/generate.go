package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/themestudio/internal/theme"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a complete Power BI theme",
	Long: `Generate a complete theme from the configured base theme and visual styles.

With --brand and no --data-colors, data colors are picked from the brand ramp.
Unset values fall back to tokens.yaml in the config directory.

Examples:
  themestudio generate --name Corporate --neutral "#6b7280" -o corporate.json
  themestudio generate --brand "#2568e8" --mode dark
  themestudio generate --data-colors "#118dff,#12239e,#e66c37"`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateName       string
	generateMode       string
	generateNeutral    string
	generateBrand      string
	generateDataColors string
	generateOutput     string
	generateConfigDir  string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateName, "name", theme.DefaultName, "Theme name")
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "light", "Color mode: light or dark")
	generateCmd.Flags().StringVarP(&generateNeutral, "neutral", "n", "", "Neutral seed color")
	generateCmd.Flags().StringVarP(&generateBrand, "brand", "b", "", "Brand seed color")
	generateCmd.Flags().StringVarP(&generateDataColors, "data-colors", "d", "", "Comma separated data colors")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default stdout)")
	generateCmd.Flags().StringVar(&generateConfigDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/themestudio)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	mode, err := tokens.ParseMode(generateMode)
	if err != nil {
		return err
	}
	dataColors, err := parseDataColors(generateDataColors)
	if err != nil {
		return err
	}

	_, deps, err := newDeps(ctx, generateConfigDir)
	if err != nil {
		return err
	}
	defer deps.Close(ctx)

	gen := theme.NewGenerator(deps.Configs, deps.Metrics)

	var res *theme.Result
	if generateBrand != "" && len(dataColors) == 0 {
		res, err = theme.NewSimpleGenerator(gen).Generate(ctx, theme.SimpleRequest{
			Name:       generateName,
			Mode:       mode,
			BrandHex:   generateBrand,
			NeutralHex: generateNeutral,
		})
	} else {
		res, err = gen.Generate(ctx, theme.Request{
			Name:       generateName,
			Mode:       mode,
			NeutralHex: generateNeutral,
			DataColors: dataColors,
		})
	}
	if err != nil {
		return err
	}

	if err := writeJSON(cmd.OutOrStdout(), generateOutput, res.Document); err != nil {
		return err
	}
	if generateOutput != "" && generateOutput != "-" {
		fmt.Fprintf(os.Stderr, "Wrote %s (%s, neutral %s)\n", generateOutput, res.Mode, res.Neutral.Name)
	}
	return nil
}
