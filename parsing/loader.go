package parsing

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/NickyBoy89/methodmap/fst"
	"github.com/bmatcuk/doublestar/v4"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// DefaultInclude matches every Java source below a feature directory
const DefaultInclude = "**/*.java"

// Feature names a directory of sources that is composed with others
type Feature struct {
	Name string
	Dir  string
}

// LoadOptions select which files of a feature are loaded
type LoadOptions struct {
	// Glob patterns, relative to the feature directory. Defaults to DefaultInclude.
	Include []string
	// Glob patterns of files to skip, even if included
	Exclude []string
}

// DiscoverSources returns the slash-separated paths of the files in dir that
// match one of the include patterns and none of the exclude patterns, sorted
// and without duplicates
func DiscoverSources(dir string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = []string{DefaultInclude}
	}
	for _, pattern := range append(slices.Clone(include), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}

	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var paths []string
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q in %s: %w", pattern, dir, err)
		}
		for _, match := range matches {
			if seen[match] || isExcluded(match, exclude) {
				continue
			}
			seen[match] = true
			paths = append(paths, match)
		}
	}

	slices.Sort(paths)
	return paths, nil
}

func isExcluded(path string, exclude []string) bool {
	for _, pattern := range exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}
	return false
}

// LoadFeature parses the sources of a feature and returns the feature's root
// node, with one compilation unit per file in path order.
//
// Files are parsed in parallel, bounded by the number of CPUs.
func LoadFeature(ctx context.Context, feature Feature, opts LoadOptions) (*fst.NonTerminal, error) {
	info, err := os.Stat(feature.Dir)
	if err != nil {
		return nil, fmt.Errorf("feature %s: %w", feature.Name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("feature %s: not a directory: %s", feature.Name, feature.Dir)
	}

	paths, err := DiscoverSources(feature.Dir, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		log.WithFields(log.Fields{
			"feature": feature.Name,
			"dir":     feature.Dir,
		}).Warn("Feature has no source files")
	}

	units := make([]*fst.NonTerminal, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for ind, path := range paths {
		ind, path := ind, path
		g.Go(func() error {
			source, err := fs.ReadFile(os.DirFS(feature.Dir), path)
			if err != nil {
				return fmt.Errorf("read %s of feature %s: %w", path, feature.Name, err)
			}

			file := SourceFile{Name: path, Feature: feature.Name, Source: source}
			if err := file.ParseASTCtx(ctx); err != nil {
				return fmt.Errorf("feature %s: %w", feature.Name, err)
			}
			defer file.Close()

			units[ind] = file.BuildUnit()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	root := fst.NewNonTerminal(fst.KindFeature, feature.Name, feature.Name)
	for _, unit := range units {
		root.AddChild(unit)
	}

	log.WithFields(log.Fields{
		"feature": feature.Name,
		"files":   len(units),
	}).Debug("Loaded feature")
	return root, nil
}

// FeatureFromArg parses a command-line feature argument of the form
// `Name=dir`, or a bare `dir` named after its last path element
func FeatureFromArg(arg string) Feature {
	if name, dir, found := strings.Cut(arg, "="); found && name != "" && !strings.ContainsAny(name, `/\`) {
		return Feature{Name: name, Dir: dir}
	}
	return Feature{Name: filepath.Base(filepath.Clean(arg)), Dir: arg}
}
