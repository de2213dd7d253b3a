package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var output string
	var panel bool
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the page to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.renderer(panel)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := r.Render(cmd.Context(), &buf); err != nil {
				return fmt.Errorf("render page: %w", err)
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			cmd.PrintErrf("wrote %s (%d bytes)\n", output, buf.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to this file instead of stdout")
	cmd.Flags().BoolVar(&panel, "selfcheck", false, "compose the self-check panel into the page")
	return cmd
}
