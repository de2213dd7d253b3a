package main

import (
	"github.com/spf13/cobra"

	"kartabogor.or.id/web/internal/content"
	"kartabogor.or.id/web/internal/page"
)

// Version is set via ldflags at build time.
var Version = "dev"

type rootOptions struct {
	contentFile  string
	templatesDir string
	baseURL      string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "pagecheck",
		Short: "Render the Karang Taruna page and run its self-check",
		Long: `pagecheck renders the single-page site with the same templates and content
the web server uses, and evaluates the navigation and text checks against
the result. Use it in CI to catch stale "Program" links or leftover copy
before a deploy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.contentFile, "content", "", "YAML content override")
	cmd.PersistentFlags().StringVar(&opts.templatesDir, "templates", "", "read templates from this directory instead of the embedded set")
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "", "canonical URL used in SEO metadata")

	cmd.AddCommand(newRenderCmd(opts), newCheckCmd(opts), newVersionCmd())
	return cmd
}

// renderer builds a page renderer from the persistent flags.
func (o *rootOptions) renderer(panel bool) (*page.Renderer, error) {
	site, err := content.Load(o.contentFile)
	if err != nil {
		return nil, err
	}
	return page.New(site, page.Options{
		DevMode:        o.templatesDir != "",
		DevDir:         o.templatesDir,
		SelfCheckPanel: panel,
		BaseURL:        o.baseURL,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of pagecheck",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pagecheck %s\n", Version)
		},
	}
}
