package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/themestudio/internal/palette"
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate shade ramps",
	Long:  `Generate 12-step shade ramps (25 to 950) from a single seed color.`,
}

var paletteNeutralCmd = &cobra.Command{
	Use:   "neutral <hex>...",
	Short: "Generate a neutral (gray) ramp",
	Long: `Generate a neutral ramp. The seed's chroma is damped to a subtle tint.

Examples:
  themestudio palette neutral "#808080"
  themestudio palette neutral 6b7280 --json
  themestudio palette neutral "#808080" "#336699"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPaletteNeutral,
}

var paletteBrandCmd = &cobra.Command{
	Use:   "brand <hex>...",
	Short: "Generate a brand ramp",
	Long: `Generate a saturated brand ramp that keeps the seed's chroma.

Examples:
  themestudio palette brand "#2568e8"
  themestudio palette brand 2568e8 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPaletteBrand,
}

var paletteNameCmd = &cobra.Command{
	Use:   "name <hex>",
	Short: "Show the generated display names for a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaletteName,
}

var paletteJSON bool

func init() {
	rootCmd.AddCommand(paletteCmd)
	paletteCmd.AddCommand(paletteNeutralCmd, paletteBrandCmd, paletteNameCmd)

	paletteCmd.PersistentFlags().BoolVar(&paletteJSON, "json", false, "Output as JSON")
}

func runPaletteNeutral(cmd *cobra.Command, args []string) error {
	ps, err := palette.GenerateMany(cmd.Context(), args, palette.KindNeutral)
	if err != nil {
		return err
	}

	named := make([]palette.Named, len(ps))
	for i, p := range ps {
		name, err := palette.ColorName(args[i])
		if err != nil {
			return err
		}
		named[i] = palette.Named{Name: name, Palette: p}
	}

	if paletteJSON {
		if len(named) == 1 {
			return writeJSON(cmd.OutOrStdout(), "", named[0])
		}
		return writeJSON(cmd.OutOrStdout(), "", named)
	}
	for i, n := range named {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		printRamp(cmd, n.Name, n.Palette)
	}
	return nil
}

func runPaletteBrand(cmd *cobra.Command, args []string) error {
	ps, err := palette.GenerateMany(cmd.Context(), args, palette.KindBrand)
	if err != nil {
		return err
	}

	if paletteJSON {
		if len(ps) == 1 {
			return writeJSON(cmd.OutOrStdout(), "", map[string]any{"palette": ps[0]})
		}
		return writeJSON(cmd.OutOrStdout(), "", ps)
	}
	for i, p := range ps {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		name, err := palette.BrandColorName(args[i])
		if err != nil {
			return err
		}
		printRamp(cmd, name, p)
	}
	return nil
}

func runPaletteName(cmd *cobra.Command, args []string) error {
	neutral, err := palette.ColorName(args[0])
	if err != nil {
		return err
	}
	brand, err := palette.BrandColorName(args[0])
	if err != nil {
		return err
	}

	if paletteJSON {
		return writeJSON(cmd.OutOrStdout(), "", map[string]string{"neutral": neutral, "brand": brand})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Neutral: %s\nBrand:   %s\n", neutral, brand)
	return nil
}

func printRamp(cmd *cobra.Command, name string, p palette.Palette) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, name)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHADE\tHEX")
	for _, sw := range p.Ordered() {
		fmt.Fprintf(w, "%s\t%s\n", sw.Shade, sw.Hex)
	}
	w.Flush()
}
