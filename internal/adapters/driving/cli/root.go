// Package cli wires the cobra commands of the datasets tool: resolving
// data file patterns, watching a directory for changes, and inspecting
// the resolution history.
package cli

import (
	"github.com/spf13/cobra"

	configfile "github.com/HemansAI/datasets/internal/adapters/driven/config/file"
	"github.com/HemansAI/datasets/internal/logger"
)

var (
	verbose    bool
	configPath string

	// cfg holds the loaded file configuration; flags override its values.
	cfg = &configfile.Config{}
)

var rootCmd = &cobra.Command{
	Use:   "datasets",
	Short: "Resolve dataset data files from patterns",
	Long: `Resolves file patterns (globs, paths or URLs) into the concrete data
files of a dataset, split by train/validation/test, together with a
fingerprint that changes when and only when the file set changes.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		path := configPath
		if path == "" {
			defaultPath, err := configfile.DefaultPath()
			if err != nil {
				// No home directory: run with the zero config.
				return nil
			}
			path = defaultPath
		}
		loaded, err := configfile.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.datasets/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
