package main

import (
	"bufio"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Faizanmoriani2/bignote/internal/autosave"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Append stdin lines to a note, saving as you type",
	Long: `Each line read from stdin becomes a paragraph of the note. Changes are
saved after a pause in input and once more at end of input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		n, err := api.GetNote(ctx, args[0])
		if err != nil {
			return err
		}

		delay, _ := cmd.Flags().GetDuration("delay")
		errOut := cmd.ErrOrStderr()

		s, err := autosave.New(autosave.NewOptions(n.ID, api,
			autosave.WithDelay(delay),
			autosave.WithOnChange(func(state autosave.State, err error) {
				switch state {
				case autosave.StateSaved:
					fmt.Fprintln(errOut, faint("saved"))
				case autosave.StateSaveFailed:
					fmt.Fprintf(errOut, "%s %v\n", red("save failed:"), err)
				case autosave.StateClosed:
					if err != nil {
						fmt.Fprintf(errOut, "%s %v\n", red("note is gone:"), err)
					}
				}
			}),
		))
		if err != nil {
			return err
		}
		defer s.Close()

		draft := autosave.DraftFromNote(n)
		if cmd.Flags().Changed("title") {
			draft.Title, _ = cmd.Flags().GetString("title")
			if err := s.Edit(draft); err != nil {
				return err
			}
		}

		sc := bufio.NewScanner(cmd.InOrStdin())
		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			draft.Content += "<p>" + html.EscapeString(line) + "</p>"
			if err := s.Edit(draft); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}

		return s.Flush(ctx)
	},
}

func init() {
	editCmd.Flags().Duration("delay", 800*time.Millisecond, "Pause before an automatic save")
	editCmd.Flags().String("title", "", "Replace the note title")
	rootCmd.AddCommand(editCmd)
}
