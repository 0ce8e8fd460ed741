package slogx

import "log/slog"

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.String("error", err.Error())
}

func NoteID(id string) slog.Attr {
	return slog.String("note_id", id)
}

func FileName(name string) slog.Attr {
	return slog.String("file_name", name)
}
