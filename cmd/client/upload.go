package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Faizanmoriani2/bignote/internal/client"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <id> <file>...",
	Short: "Merge TXT and DOCX files into a note",
	Long: `Upload files to be converted server side, then append the merged text
and the file list to the note.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		n, err := api.GetNote(ctx, args[0])
		if err != nil {
			return err
		}

		files := make([]client.UploadFile, 0, len(args)-1)
		for _, p := range args[1:] {
			f, err := os.Open(p) //nolint:gosec // path comes from the user
			if err != nil {
				return fmt.Errorf("open %s: %w", p, err)
			}
			defer f.Close()

			files = append(files, client.UploadFile{Name: filepath.Base(p), Body: f})
		}

		res, err := api.Upload(ctx, files)
		if err != nil {
			return err
		}

		content := n.Content + res.Content
		sources := append(slices.Clone(n.SourceFiles), res.SourceFiles...)

		if _, err := api.UpdateNote(ctx, n.ID, v1.NoteFields{
			Content:     &content,
			SourceFiles: &sources,
		}); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, f := range res.SourceFiles {
			fmt.Fprintf(out, "%s %s %s\n", green("Merged"), f.Name, faint(f.FileType))
		}
		if skipped := len(files) - len(res.SourceFiles); skipped > 0 {
			fmt.Fprintf(out, "%s %d file(s) could not be read\n", yellow("Skipped"), skipped)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
