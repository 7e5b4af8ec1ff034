package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/HemansAI/datasets/internal/core/domain"
	"github.com/HemansAI/datasets/internal/core/ports/driven"
	"github.com/HemansAI/datasets/internal/logger"
)

// ShardedSplitPattern is the sharded naming convention, e.g.
// data/train-00000-of-00042.parquet. It is tried before the looser
// conventions because it is the least ambiguous one.
const ShardedSplitPattern = "data/{split}-[0-9][0-9][0-9][0-9][0-9]-of-[0-9][0-9][0-9][0-9][0-9].*"

var allSplitPatterns = []string{ShardedSplitPattern}

var defaultPatternsSplitInFilename = map[string][]string{
	"train":      {"*train*"},
	"test":       {"*test*", "*eval*"},
	"validation": {"*dev*", "*valid*"},
}

var defaultPatternsSplitInDirName = map[string][]string{
	"train":      {"*train*/*", "*train*/**/*"},
	"test":       {"*test*/*", "*test*/**/*", "*eval*/*", "*eval*/**/*"},
	"validation": {"*dev*/*", "*dev*/**/*", "*valid*/*", "*valid*/**/*"},
}

var defaultPatternsAll = map[string][]string{
	domain.DefaultSplit: {"*"},
}

// allDefaultPatterns are tried in order after the sharded convention;
// the first group with any non-empty split wins outright.
var allDefaultPatterns = []map[string][]string{
	defaultPatternsSplitInFilename,
	defaultPatternsSplitInDirName,
	defaultPatternsAll,
}

// shardedSplitRe reverses ShardedSplitPattern against a matched path to
// recover the split name. Greedy, so the longest token before a
// shard-looking suffix wins.
var shardedSplitRe = regexp.MustCompile(`data/(.+)-[0-9]{5}-of-[0-9]{5}\.`)

// InferPatterns discovers an implicit split -> patterns mapping from the
// naming conventions of the files a resolver can see. Strategies are
// tried in strict priority order and the first one producing any
// non-empty result wins outright:
//
//  1. the sharded convention, with the discovered split names substituted
//     back into the template;
//  2. split names in file names (*train*, *test*/*eval*, *dev*/*valid*);
//  3. split names in directory names;
//  4. the catch-all "*" assigned to the default split.
func InferPatterns(resolver driven.PatternResolver) (map[string][]string, error) {
	for _, template := range allSplitPatterns {
		pattern := strings.ReplaceAll(template, "{split}", "*")
		matches, err := resolver.Resolve(pattern, nil)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if len(matches) == 0 {
			continue
		}

		splits := make(map[string]struct{})
		for _, match := range matches {
			sub := shardedSplitRe.FindStringSubmatch(filepath.ToSlash(match))
			if sub == nil {
				logger.Warn("matched file %s doesn't fit the sharded split pattern", match)
				continue
			}
			splits[sub[1]] = struct{}{}
		}
		if len(splits) == 0 {
			continue
		}

		out := make(map[string][]string, len(splits))
		for split := range splits {
			out[split] = []string{strings.ReplaceAll(template, "{split}", split)}
		}
		return out, nil
	}

	for _, patternsDict := range allDefaultPatterns {
		out := make(map[string][]string)
		for split, patterns := range patternsDict {
			for _, pattern := range patterns {
				matches, err := resolver.Resolve(pattern, nil)
				if err != nil {
					// A hard miss on one alternative is not fatal while probing.
					if errors.Is(err, domain.ErrNotFound) {
						continue
					}
					return nil, err
				}
				if len(matches) > 0 {
					out[split] = patternsDict[split]
					break
				}
			}
		}
		if len(out) > 0 {
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: couldn't resolve any default pattern in %s",
		domain.ErrNoDataFiles, resolver.Location())
}
