package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Faizanmoriani2/bignote/internal/export"
	"github.com/Faizanmoriani2/bignote/pkg/htmltext"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a note to a TXT, HTML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		dir, _ := cmd.Flags().GetString("out")

		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}

		n, err := api.GetNote(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		data, err := export.Render(n, format)
		if err != nil {
			return err
		}

		path := filepath.Join(dir, export.FileName(n, format))
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // exported notes are meant to be shared
			return fmt.Errorf("write export: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Exported"), path)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats <id>",
	Short: "Show word count and reading time of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := api.GetNote(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		st := htmltext.Analyze(n.Content)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n", bold(noteTitle(n)))
		fmt.Fprintf(out, "%s %d\n", faint("Words:"), st.Words)
		fmt.Fprintf(out, "%s %d\n", faint("Characters:"), st.Chars)
		fmt.Fprintf(out, "%s %d min\n", faint("Reading time:"), st.ReadMinutes)
		fmt.Fprintf(out, "%s %d\n", faint("Source files:"), len(n.SourceFiles))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "txt", "Export format: txt, html or json")
	exportCmd.Flags().StringP("out", "o", ".", "Output directory")
	rootCmd.AddCommand(exportCmd, statsCmd)
}
