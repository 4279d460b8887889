package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmasdeu/ankigen/internal/pipeline"
	"github.com/jmasdeu/ankigen/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview <document.pdf|document.docx>",
	Short: "Render suggested cards as an HTML review page",
	Long: `Preview runs the same generation pipeline as the root command but writes
an HTML page grouping the suggested cards by section, for reading through
before flipping the approved flag in the CSV. No CSV is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		_, rules, log, err := setup()
		if err != nil {
			return err
		}

		res, err := pipeline.Run(args[0], rules, log)
		if err != nil {
			return err
		}

		html, err := preview.HTML(res.Cards)
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("output")
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
		}
		if err := os.WriteFile(out, html, 0o644); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}

		fmt.Printf("✔ review page for %d suggested cards written to %s\n", len(res.Cards), out)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringP("output", "o", "output/preview.html", "output HTML path")

	rootCmd.AddCommand(previewCmd)
}
