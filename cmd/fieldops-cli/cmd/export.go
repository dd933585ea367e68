package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/landing/internal/rendering"
	"github.com/fieldops/landing/internal/view"
	"github.com/fieldops/landing/web/src/templates/layouts"
	"github.com/fieldops/landing/web/src/templates/pages"
)

var exportOutput string

// exportCmd renders the landing page through the same components the
// server uses, so the exported document matches a served page body.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the landing page to static HTML",
	Long: `Export renders the full landing page (layout and view) to a static
HTML document, suitable for hosting without the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := view.AdaptGomponentToTempl(pages.Landing())
		doc := layouts.Base("", layouts.Options{}, content)

		renderer := rendering.NewUniversalRenderer()
		out, err := renderer.RenderComponent(cmd.Context(), doc)
		if err != nil {
			return fmt.Errorf("failed to render landing page: %w", err)
		}

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		return os.WriteFile(exportOutput, out, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
