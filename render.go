package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/view"
)

type renderOptions struct {
	theme  string
	tab    string
	output string
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the mounted page as static HTML",
		Long: "Render the page once and write it to stdout or a file. Without --theme the " +
			"document starts light and the embedded pre-paint script picks the visitor's theme.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.output != "" && opts.output != "-" {
				f, err := os.Create(opts.output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}
			return renderPage(out, opts)
		},
	}

	cmd.Flags().StringVar(&opts.theme, "theme", "", "Initial theme: light or dark")
	cmd.Flags().StringVar(&opts.tab, "tab", string(page.TabAll), "Active tab: All, About or Work")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func renderPage(w io.Writer, opts *renderOptions) error {
	store := &theme.MemoryStore{}
	if opts.theme != "" {
		t, ok := theme.Parse(opts.theme)
		if !ok {
			return fmt.Errorf("unknown theme %q", opts.theme)
		}
		if err := store.Save(t.String()); err != nil {
			return err
		}
	}
	ctrl := theme.NewController(store, theme.FixedPreference(false), nil)

	state := page.New()
	state.SetActiveTab(page.ParseTab(opts.tab))
	state.Mount()

	node := view.Page(ctrl.Apply(ctrl.Initial()), state, content.Default())
	if err := node.Render(w); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
