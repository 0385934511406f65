package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/cfmt/internal/cases"
	"github.com/bjaus/cfmt/internal/report"
)

var errCasesFailed = errors.New("cases failed")

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Run YAML formatting suites and report mismatches",
		Long: `check loads each suite file, renders every case and compares the result
with the expected output or error. The exit status is non-zero if any case
fails.

Output formats: ` + formatList(),
		Args: cobra.MinimumNArgs(1),
		RunE: a.runCheck,
	}
	cmd.Flags().StringP(keyOutput, "o", string(report.Table), "report format")
	cmd.Flags().Int(keyDiffContext, cases.DefaultDiffContext, "context lines in diffs")
	_ = a.v.BindPFlag(keyOutput, cmd.Flags().Lookup(keyOutput))
	_ = a.v.BindPFlag(keyDiffContext, cmd.Flags().Lookup(keyDiffContext))
	return cmd
}

func (a *app) runCheck(_ *cobra.Command, paths []string) error {
	format, err := report.ParseFormat(a.v.GetString(keyOutput))
	if err != nil {
		return err
	}
	runner := cases.Runner{DiffContext: a.v.GetInt(keyDiffContext)}

	var results []cases.Result
	for _, path := range paths {
		suite, err := cases.LoadFile(path)
		if err != nil {
			return err
		}
		got := runner.Run(suite)
		a.log.Info("ran suite", "suite", suite.Name, "cases", len(got), "failed", len(cases.Failed(got)))
		results = append(results, got...)
	}

	if err := report.Write(a.stdout, format, results); err != nil {
		return err
	}

	failed := cases.Failed(results)
	if len(failed) == 0 {
		return nil
	}
	if format != report.Plain && format != report.JSON && format != report.JSONL && format != report.YAML {
		for _, r := range failed {
			fmt.Fprintf(a.stderr, "--- %s/%s\n%s", r.Suite, r.Case, strings.TrimRight(r.Diff, "\n")+"\n")
		}
	}
	return fmt.Errorf("%w: %d of %d", errCasesFailed, len(failed), len(results))
}

func formatList() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
