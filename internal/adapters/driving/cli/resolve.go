package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/HemansAI/datasets/internal/adapters/driven/storage/sqlite"
	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/core/services"
	"github.com/HemansAI/datasets/internal/resolvers/hub"
)

var (
	resolveBase       string
	resolveRepo       string
	resolveRevision   string
	resolveToken      string
	resolveExtensions []string
	resolveWorkers    int
	resolveJSON       bool
	resolveSave       bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [patterns...]",
	Short: "Resolve data file patterns into concrete files",
	Long: `Resolves patterns into the data files of a dataset, either under a
local base directory or inside a hosted repository at a revision.

Without patterns, the split layout is inferred from naming conventions
(sharded shards, then train/test/dev file names, then directory names,
then a catch-all). With patterns, all of them go to the train split.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveBase, "base", ".", "base directory for local resolution")
	resolveCmd.Flags().StringVar(&resolveRepo, "repo", "", "repository id (owner/name) for remote resolution")
	resolveCmd.Flags().StringVar(&resolveRevision, "revision", "", "repository revision (default branch head if empty)")
	resolveCmd.Flags().StringVar(&resolveToken, "token", "", "credential forwarded to the hub and metadata requests")
	resolveCmd.Flags().StringSliceVar(&resolveExtensions, "extensions", nil, "allowed data file extensions")
	resolveCmd.Flags().IntVar(&resolveWorkers, "workers", 0, "max concurrent metadata requests")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "output as JSON")
	resolveCmd.Flags().BoolVar(&resolveSave, "save", false, "record the resolution and report changed/unchanged")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token := resolveToken
	if token == "" {
		token = cfg.Token
	}
	extensions := resolveExtensions
	if extensions == nil && len(cfg.AllowedExtensions) > 0 {
		extensions = cfg.AllowedExtensions
	}
	workers := resolveWorkers
	if workers == 0 {
		workers = cfg.MaxWorkers
	}

	resolver := services.NewResolver(hub.NewETagFetcher(), workers)

	dict, key, err := resolveDataFiles(ctx, resolver, args, token, extensions)
	if err != nil {
		return err
	}

	if resolveJSON {
		if err := outputResolveJSON(cmd, dict); err != nil {
			return err
		}
	} else {
		outputResolveText(cmd, dict)
	}

	if resolveSave {
		return saveResolution(ctx, cmd, key, dict)
	}
	return nil
}

// resolveDataFiles resolves against the repository when --repo is given,
// against the local base directory otherwise. It returns the resolved
// dict and the history key identifying what was resolved.
func resolveDataFiles(ctx context.Context, resolver *services.Resolver, args []string, token string, extensions []string) (domain.DataFilesDict, string, error) {
	if resolveRepo != "" {
		client := hub.NewClient(ctx, token)
		info, err := client.DatasetInfo(ctx, resolveRepo, resolveRevision)
		if err != nil {
			return nil, "", err
		}

		patterns, err := splitPatterns(args, func() (map[string][]string, error) {
			return services.GetPatternsFromHub(info)
		})
		if err != nil {
			return nil, "", err
		}

		dict, err := resolver.DictFromHub(patterns, info, extensions)
		return dict, "hub:" + resolveRepo, err
	}

	base, err := filepath.Abs(resolveBase)
	if err != nil {
		return nil, "", err
	}
	patterns, err := splitPatterns(args, func() (map[string][]string, error) {
		return services.GetPatternsLocally(base)
	})
	if err != nil {
		return nil, "", err
	}

	dict, err := resolver.DictFromLocal(ctx, patterns, base, extensions, token)
	return dict, "local:" + base, err
}

// splitPatterns sanitises explicit patterns, or infers them when none
// were given.
func splitPatterns(args []string, infer func() (map[string][]string, error)) (domain.PatternsDict, error) {
	if len(args) > 0 {
		return domain.SanitizePatterns(args)
	}
	inferred, err := infer()
	if err != nil {
		return nil, err
	}
	return domain.SanitizePatterns(inferred)
}

func outputResolveJSON(cmd *cobra.Command, dict domain.DataFilesDict) error {
	type jsonFile struct {
		Location string                `json:"location"`
		Remote   bool                  `json:"remote"`
		Origin   domain.OriginMetadata `json:"origin"`
	}
	out := struct {
		Splits map[string][]jsonFile `json:"splits"`
		Hash   string                `json:"hash"`
	}{
		Splits: make(map[string][]jsonFile, len(dict)),
		Hash:   dict.Hash(),
	}
	for split, list := range dict {
		files := make([]jsonFile, list.Len())
		for i, f := range list.Files {
			files[i] = jsonFile{Location: f.Path, Remote: f.IsRemote(), Origin: list.Origins[i]}
		}
		out.Splits[split] = files
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResolveText(cmd *cobra.Command, dict domain.DataFilesDict) {
	for _, split := range sortedSplits(dict) {
		list := dict[split]
		cmd.Printf("%s (%d files):\n", split, list.Len())
		for _, f := range list.Files {
			cmd.Printf("  %s\n", f.Path)
		}
	}
	cmd.Printf("hash: %s\n", dict.Hash())
}

// sortedSplits returns the split names in lexicographic order.
func sortedSplits(dict domain.DataFilesDict) []string {
	splits := make([]string, 0, len(dict))
	for split := range dict {
		splits = append(splits, split)
	}
	sort.Strings(splits)
	return splits
}

// saveResolution records the run and reports whether the file set
// changed since the previous record for the same key.
func saveResolution(ctx context.Context, cmd *cobra.Command, key string, dict domain.DataFilesDict) error {
	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	hash := dict.Hash()
	prev, err := store.Latest(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		cmd.Printf("first resolution recorded for %s\n", key)
	case err != nil:
		return err
	case prev.Hash == hash:
		cmd.Printf("unchanged since %s\n", prev.CreatedAt.Format("2006-01-02 15:04:05"))
	default:
		cmd.Printf("changed since %s\n", prev.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return store.Record(ctx, domain.Resolution{
		Key:       key,
		Hash:      hash,
		FileCount: dict.NumFiles(),
	})
}
