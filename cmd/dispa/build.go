package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/dispa-lang/dispa"
	"github.com/dispa-lang/dispa/pkg/config"
	"github.com/dispa-lang/dispa/pkg/enum"
	"github.com/dispa-lang/dispa/pkg/store"
	"github.com/dispa-lang/dispa/pkg/types"
	"github.com/spf13/cobra"
)

var (
	buildConfigPath   string
	buildSource       string
	buildTarget       string
	buildNamespace    string
	buildTickFunction string
	buildIncremental  bool
	buildCachePath    string
	buildColor        string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile a source tree",
	Long:  "Compile every .dspa file under the source directory into mcfunction files, and regenerate the shared tick function",
	Args:  cobra.NoArgs,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildConfigPath, "config", config.DefaultPath, "Path to project config (created with defaults if missing)")
	buildCmd.Flags().StringVar(&buildSource, "source", "", "Source directory (overrides config)")
	buildCmd.Flags().StringVar(&buildTarget, "target", "", "Target directory (overrides config)")
	buildCmd.Flags().StringVar(&buildNamespace, "namespace", "", "Function namespace (overrides config)")
	buildCmd.Flags().StringVar(&buildTickFunction, "tick-function", "", "Tick function path (overrides config)")
	buildCmd.Flags().BoolVar(&buildIncremental, "incremental", false, "Skip files whose content is unchanged since the last build")
	buildCmd.Flags().StringVar(&buildCachePath, "cache", ".dispa-cache.db", "Build cache path (used with --incremental)")
	buildCmd.Flags().StringVar(&buildColor, "color", "auto", "Color output: auto, always, never")
}

// fileResult is one source file's build outcome.
type fileResult struct {
	path     string
	id       types.FileID
	compiled *dispa.CompiledFile
	err      error
	skipped  bool
	cached   store.Record
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadBuildConfig()
	if err != nil {
		return err
	}

	compiler := dispa.New(dispa.WithNamespace(cfg.Namespace))

	var cache store.Store
	cachedByID := make(map[string]store.Record)
	if buildIncremental {
		cache, err = store.New(store.Config{Path: buildCachePath})
		if err != nil {
			return fmt.Errorf("opening build cache: %w", err)
		}
		defer cache.Close()

		records, err := cache.All()
		if err != nil {
			return fmt.Errorf("reading build cache: %w", err)
		}
		for _, rec := range records {
			cachedByID[rec.ID.Hex()] = rec
		}
	}

	// Compile everything. The enumerator reads files in parallel; results
	// are collected under a lock and sorted afterwards so output order is
	// deterministic.
	var mu sync.Mutex
	var results []fileResult

	enumerator := enum.NewFilesystemEnumerator(enum.Config{Root: cfg.Source})
	err = enumerator.Enumerate(context.Background(), func(content []byte, id types.FileID, path string) error {
		res := fileResult{path: path, id: id}
		if rec, ok := cachedByID[id.Hex()]; buildIncremental && ok {
			res.skipped = true
			res.cached = rec
		} else {
			res.compiled, res.err = compiler.CompileString(path, string(content))
		}

		mu.Lock()
		results = append(results, res)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return fmt.Errorf("enumerating sources: %w", err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	// Write outputs for every file that compiled; failures never block
	// their siblings.
	s := newStyles(colorEnabled(buildColor))
	out := cmd.OutOrStdout()
	var triggers []string
	compiled, skipped, failed := 0, 0, 0

	for _, res := range results {
		switch {
		case res.skipped:
			skipped++
			outPath := outputPath(cfg, res.cached.Path)
			triggers = append(triggers, compiler.Trigger(&dispa.CompiledFile{
				ObjectName:    res.cached.Object,
				AnimationName: res.cached.Animation,
			}, functionPath(outPath)))
			if !quiet {
				fmt.Fprintf(out, "%s %s\n", s.skipped.Sprint("cached"), res.path)
			}

		case res.err != nil:
			failed++
			fmt.Fprintf(out, "%s %s\n", s.fail.Sprint("FAIL"), s.path.Sprint(res.path))
			for _, line := range strings.Split(res.err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", s.detail.Sprint(line))
			}

		default:
			outPath := outputPath(cfg, res.path)
			if err := writeCompiled(outPath, res.compiled.Contents); err != nil {
				return err
			}
			triggers = append(triggers, compiler.Trigger(res.compiled, functionPath(outPath)))
			if cache != nil {
				if err := cache.Add(store.Record{
					ID:        res.id,
					Path:      res.path,
					Object:    res.compiled.ObjectName,
					Animation: res.compiled.AnimationName,
				}); err != nil {
					return fmt.Errorf("updating build cache: %w", err)
				}
			}
			compiled++
			if !quiet {
				fmt.Fprintf(out, "%s %s -> %s\n", s.ok.Sprint("ok"), res.path, outPath)
			}
		}
	}

	// The tick function is regenerated from scratch on every build so stale
	// trigger lines never survive a rename.
	if err := writeTickFunction(cfg.TickFunction, triggers); err != nil {
		return err
	}

	if !quiet || failed > 0 {
		fmt.Fprintf(out, "Build complete: %d compiled, %d cached, %d failed\n", compiled, skipped, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%d files failed to compile", failed)
	}
	return nil
}

func loadBuildConfig() (config.Config, error) {
	cfg, err := config.Load(buildConfigPath)
	if err != nil {
		return config.Config{}, err
	}
	if buildSource != "" {
		cfg.Source = buildSource
	}
	if buildTarget != "" {
		cfg.Target = buildTarget
	}
	if buildNamespace != "" {
		cfg.Namespace = buildNamespace
	}
	if buildTickFunction != "" {
		cfg.TickFunction = buildTickFunction
	}
	return cfg, nil
}

// outputPath mirrors the source tree under the target directory, swapping
// the extension to .mcfunction.
func outputPath(cfg config.Config, srcPath string) string {
	rel, err := filepath.Rel(cfg.Source, srcPath)
	if err != nil {
		rel = filepath.Base(srcPath)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + ".mcfunction"
	return filepath.Join(cfg.Target, rel)
}

// functionPath is the namespace-relative reference used in trigger lines:
// forward slashes, no leading ./, no extension.
func functionPath(outPath string) string {
	p := filepath.ToSlash(strings.TrimSuffix(outPath, ".mcfunction"))
	return strings.TrimPrefix(p, "./")
}

func writeCompiled(outPath, contents string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

func writeTickFunction(path string, triggers []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating tick function directory: %w", err)
	}
	contents := ""
	if len(triggers) > 0 {
		contents = strings.Join(triggers, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		return fmt.Errorf("writing tick function: %w", err)
	}
	return nil
}
