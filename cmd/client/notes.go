package main

import (
	"fmt"

	"github.com/spf13/cobra"

	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
	"github.com/Faizanmoriani2/bignote/pkg/htmltext"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := api.ListNotes(cmd.Context())
		if err != nil {
			return err
		}
		printNotes(cmd, notes)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over title, tags and content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := api.SearchNotes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printNotes(cmd, notes)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := api.GetNote(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetBool("html")

		out := cmd.OutOrStdout()
		fmt.Fprint(out, formatNoteHeader(n))
		fmt.Fprintln(out)
		if raw {
			fmt.Fprintln(out, n.Content)
		} else {
			fmt.Fprintln(out, htmltext.PlainText(n.Content))
		}
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := v1.NoteFields{}
		flags := cmd.Flags()

		if flags.Changed("title") {
			v, _ := flags.GetString("title")
			fields.Title = &v
		}
		if flags.Changed("content") {
			v, _ := flags.GetString("content")
			fields.Content = &v
		}
		if flags.Changed("folder") {
			v, _ := flags.GetString("folder")
			fields.Folder = &v
		}
		if flags.Changed("tags") {
			v, _ := flags.GetString("tags")
			tags := splitTags(v)
			fields.Tags = &tags
		}
		if big, _ := flags.GetBool("big"); big {
			t := v1.TypeBig
			fields.Type = &t
		}

		n, err := api.CreateNote(cmd.Context(), fields)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("Created"), n.ID)
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.DeleteNote(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", red("Deleted"), args[0])
		return nil
	},
}

func printNotes(cmd *cobra.Command, notes []v1.Note) {
	out := cmd.OutOrStdout()
	if len(notes) == 0 {
		fmt.Fprintln(out, "No notes found.")
		return
	}
	for _, n := range notes {
		fmt.Fprint(out, formatNoteListItem(n))
	}
}

func init() {
	showCmd.Flags().Bool("html", false, "Print stored HTML instead of plain text")

	createCmd.Flags().String("title", "", "Note title")
	createCmd.Flags().String("content", "", "Note content (HTML)")
	createCmd.Flags().String("folder", "", "Folder (default General)")
	createCmd.Flags().String("tags", "", "Comma separated tags")
	createCmd.Flags().Bool("big", false, "Create a big note")

	rootCmd.AddCommand(listCmd, searchCmd, showCmd, createCmd, rmCmd)
}
