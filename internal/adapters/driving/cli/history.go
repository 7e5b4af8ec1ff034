package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/HemansAI/datasets/internal/adapters/driven/storage/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [key]",
	Short: "List recorded resolutions for a key",
	Long: `Lists the recorded resolution runs for a key, newest first.
Keys look like "local:/abs/base/path" or "hub:owner/name".`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(ctx, args[0], historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		cmd.Println("No resolutions recorded.")
		return nil
	}

	for _, res := range records {
		cmd.Printf("%s  %s  %d files\n",
			res.CreatedAt.Format("2006-01-02 15:04:05"), res.Hash, res.FileCount)
	}
	return nil
}
