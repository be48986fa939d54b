package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage theme configuration files",
	Long: `Manage the configuration directory holding base-theme.json,
visual-styles.json and tokens.yaml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration files",
	Long: `Write the built-in defaults into the config directory. Existing files are kept.

Examples:
  themestudio config init
  themestudio config init --config-dir ./theme-config`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config directory",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configDir string

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd)

	configCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Config directory (default $XDG_CONFIG_HOME/themestudio)")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	_, deps, err := newDeps(cmd.Context(), configDir)
	if err != nil {
		return err
	}
	defer deps.Close(cmd.Context())

	written, err := deps.Loader.WriteDefaults()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(written) == 0 {
		fmt.Fprintf(out, "All configuration files already exist in %s\n", deps.Loader.Dir())
		return nil
	}
	for _, name := range written {
		fmt.Fprintf(out, "Created %s\n", name)
	}
	fmt.Fprintf(out, "Configuration written to %s\n", deps.Loader.Dir())
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	_, deps, err := newDeps(cmd.Context(), configDir)
	if err != nil {
		return err
	}
	defer deps.Close(cmd.Context())

	fmt.Fprintln(cmd.OutOrStdout(), deps.Loader.Dir())
	return nil
}
