package main

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dispa-lang/dispa/pkg/enum"
	"github.com/dispa-lang/dispa/pkg/parser"
	"github.com/dispa-lang/dispa/pkg/types"
	"github.com/spf13/cobra"
)

var checkColor string

var checkCmd = &cobra.Command{
	Use:   "check <source-dir>",
	Short: "Validate sources without compiling",
	Long:  "Parse every .dspa file under the given directory and report diagnostics, writing nothing",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkColor, "color", "auto", "Color output: auto, always, never")
}

func runCheck(cmd *cobra.Command, args []string) error {
	root := args[0]

	type checkResult struct {
		path string
		err  error
	}

	var mu sync.Mutex
	var results []checkResult

	enumerator := enum.NewFilesystemEnumerator(enum.Config{Root: root})
	err := enumerator.Enumerate(context.Background(), func(content []byte, id types.FileID, path string) error {
		_, parseErr := parser.ParseString(path, string(content))
		mu.Lock()
		results = append(results, checkResult{path: path, err: parseErr})
		mu.Unlock()
		return nil
	})
	if err != nil {
		return fmt.Errorf("enumerating sources: %w", err)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].path < results[j].path })

	s := newStyles(colorEnabled(checkColor))
	out := cmd.OutOrStdout()
	failed := 0

	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n", s.fail.Sprint("FAIL"), s.path.Sprint(res.path))
			for _, line := range strings.Split(res.err.Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", s.detail.Sprint(line))
			}
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "%s %s\n", s.ok.Sprint("ok"), res.path)
		}
	}

	fmt.Fprintf(out, "Checked %d files, %d with errors\n", len(results), failed)
	if failed > 0 {
		return fmt.Errorf("%d files have errors", failed)
	}
	return nil
}
