package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/viewstream/pkg/markup"
)

func renderCmd() *cobra.Command {
	var (
		title  string
		xml    bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo document to stdout",
		Long: `Render the demo document to stdout and exit.

Examples:
  markupctl render
  markupctl render --title="hello" --pretty
  markupctl render --xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(title, xml, pretty)
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "markupctl", "Document title")
	cmd.Flags().BoolVar(&xml, "xml", false, "Render in XML mode instead of HTML")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}

func runRender(title string, xml, pretty bool) error {
	opts := []markup.Option{}
	if xml {
		opts = append(opts, markup.WithMode(markup.ModeXML))
	}
	if pretty {
		opts = append(opts, markup.WithPretty(true))
	}

	if err := markup.RenderResponse(os.Stdout, demoPage(title), opts...); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintln(os.Stdout)
	return nil
}
