package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"kartabogor.or.id/web/internal/selfcheck"
)

var errChecksFailed = errors.New("self-check failed")

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var file string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the self-check and exit non-zero when any check fails",
		Long: `check renders the page without the panel and evaluates every self-check.
With --file the visible text is taken from a saved HTML document instead,
while the navigation checks still use the configured content.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(false)
			if err != nil {
				return err
			}

			var report selfcheck.Report
			if file == "" {
				report, err = r.Report(cmd.Context())
				if err != nil {
					return err
				}
			} else {
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read %s: %w", file, err)
				}
				report = selfcheck.EvaluateDocument(cmd.Context(), r.Site().Nav, r.Sections(), bytes.NewReader(raw))
			}

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = writeText(cmd.OutOrStdout(), report)
			}
			if err != nil {
				return err
			}
			if !report.OK() {
				return errChecksFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "evaluate a saved HTML document instead of rendering")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func writeText(w io.Writer, report selfcheck.Report) error {
	for _, res := range report.Results {
		mark := "PASS"
		if !res.Pass {
			mark = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", mark, res.Name); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d passed, %d failed\n", report.Passed, report.Failed)
	return err
}

func writeJSON(w io.Writer, report selfcheck.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
