package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

var (
	faint  = color.New(color.Faint).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
)

const timeLayout = "2006-01-02 15:04"

func noteTitle(n v1.Note) string {
	if n.Title == "" {
		return "(untitled)"
	}
	return n.Title
}

func formatNoteListItem(n v1.Note) string {
	var sb strings.Builder

	kind := ""
	if n.Type == v1.TypeBig {
		kind = " " + yellow("[BIG]")
	}
	fmt.Fprintf(&sb, "  %s  %s%s\n", faint(n.ID), bold(noteTitle(n)), kind)

	fmt.Fprintf(&sb, "      %s %s", faint("Folder:"), n.Folder)
	if len(n.Tags) > 0 {
		fmt.Fprintf(&sb, "  %s %s", faint("Tags:"), cyan(strings.Join(n.Tags, ", ")))
	}
	fmt.Fprintf(&sb, "  %s %s\n", faint("Updated:"), faint(n.UpdatedAt.Local().Format(timeLayout)))

	return sb.String()
}

func formatNoteHeader(n v1.Note) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", bold(noteTitle(n)))
	fmt.Fprintf(&sb, "%s %s\n", faint("ID:"), faint(n.ID))
	fmt.Fprintf(&sb, "%s %s  %s %s\n", faint("Type:"), n.Type, faint("Folder:"), n.Folder)
	if len(n.Tags) > 0 {
		fmt.Fprintf(&sb, "%s %s\n", faint("Tags:"), cyan(strings.Join(n.Tags, ", ")))
	}
	fmt.Fprintf(&sb, "%s %s\n", faint("Created:"), faint(n.CreatedAt.Local().Format(timeLayout)))
	fmt.Fprintf(&sb, "%s %s\n", faint("Updated:"), faint(n.UpdatedAt.Local().Format(timeLayout)))

	if len(n.SourceFiles) > 0 {
		fmt.Fprintf(&sb, "%s\n", faint("Source files:"))
		for _, f := range n.SourceFiles {
			fmt.Fprintf(&sb, "  - %s %s\n", f.Name, faint(f.FileType))
		}
	}

	return sb.String()
}

func splitTags(s string) []string {
	tags := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
