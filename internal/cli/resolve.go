package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/themestudio/internal/themedoc"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file>",
	Short: "Resolve tokens in a theme document",
	Long: `Replace every @token and, when data colors are given, every ThemeDataColor
expression in a JSON document. Use "-" to read from stdin.

Examples:
  themestudio resolve theme.json --neutral "#6b7280"
  themestudio resolve theme.json --mode dark -o dark.json
  cat theme.json | themestudio resolve - --data-colors "#118dff,#12239e"`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

var (
	resolveMode       string
	resolveNeutral    string
	resolveDataColors string
	resolveOutput     string
	resolveConfigDir  string
)

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVarP(&resolveMode, "mode", "m", "light", "Color mode: light or dark")
	resolveCmd.Flags().StringVarP(&resolveNeutral, "neutral", "n", "", "Neutral seed color")
	resolveCmd.Flags().StringVarP(&resolveDataColors, "data-colors", "d", "", "Comma separated data colors")
	resolveCmd.Flags().StringVarP(&resolveOutput, "output", "o", "", "Output file (default stdout)")
	resolveCmd.Flags().StringVar(&resolveConfigDir, "config-dir", "", "Directory with fonts and value tokens (tokens.yaml)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	mode, err := tokens.ParseMode(resolveMode)
	if err != nil {
		return err
	}
	palettes, err := buildPalettes(resolveNeutral, resolveDataColors)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	_, deps, err := newDeps(cmd.Context(), resolveConfigDir)
	if err != nil {
		return err
	}
	defer deps.Close(cmd.Context())

	cfg, err := deps.Configs.Init(cmd.Context())
	if err != nil {
		return err
	}

	resolver := &tokens.Resolver{Mode: mode, Palettes: palettes, Fonts: cfg.Fonts, Values: cfg.Values}
	out := themedoc.Replace(doc, resolver.Resolve, palettes.DataColors)

	return writeJSON(cmd.OutOrStdout(), resolveOutput, out)
}

func readDocument(stdin io.Reader, path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}
