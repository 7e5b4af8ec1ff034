package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HemansAI/datasets/internal/core/services"
	"github.com/HemansAI/datasets/internal/logger"
	"github.com/HemansAI/datasets/internal/resolvers/hub"
	"github.com/HemansAI/datasets/internal/resolvers/local"
)

var (
	watchBase       string
	watchExtensions []string
)

var watchCmd = &cobra.Command{
	Use:   "watch [patterns...]",
	Short: "Re-resolve on filesystem changes",
	Long: `Watches the base directory and re-resolves the data files whenever
the tree changes, printing the new content hash when it differs.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchBase, "base", ".", "base directory to watch")
	watchCmd.Flags().StringSliceVar(&watchExtensions, "extensions", nil, "allowed data file extensions")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base, err := filepath.Abs(watchBase)
	if err != nil {
		return err
	}

	resolver := services.NewResolver(hub.NewETagFetcher(), cfg.MaxWorkers)
	resolve := func() (string, error) {
		patterns, err := splitPatterns(args, func() (map[string][]string, error) {
			return services.GetPatternsLocally(base)
		})
		if err != nil {
			return "", err
		}
		dict, err := resolver.DictFromLocal(ctx, patterns, base, watchExtensions, cfg.Token)
		if err != nil {
			return "", err
		}
		return dict.Hash(), nil
	}

	lastHash, err := resolve()
	if err != nil {
		return err
	}
	cmd.Printf("hash: %s\n", lastHash)

	watcher, err := local.NewWatcher(base)
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = watcher.Run(ctx, func() {
		hash, err := resolve()
		if err != nil {
			logger.Warn("re-resolution failed: %v", err)
			return
		}
		if hash != lastHash {
			lastHash = hash
			cmd.Printf("hash: %s\n", hash)
		}
	})
	if ctx.Err() != nil {
		// Interrupted by the user; not an error.
		return nil
	}
	return err
}
