package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/internal/repository/converter"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

const noteColumns = `id, title, content, type, tags, folder, source_files, created_at, updated_at`

const createNoteSQL = `
INSERT INTO notes (title, content, type, tags, folder, source_files)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + noteColumns

const listNotesSQL = `
SELECT ` + noteColumns + `
FROM notes
ORDER BY updated_at DESC, id`

const getNoteSQL = `
SELECT ` + noteColumns + `
FROM notes
WHERE id = $1`

const updateNoteSQL = `
UPDATE notes
SET title = $2,
    content = $3,
    type = $4,
    tags = $5,
    folder = $6,
    source_files = $7,
    updated_at = GREATEST(now(), updated_at + interval '1 microsecond')
WHERE id = $1
RETURNING ` + noteColumns

const deleteNoteSQL = `DELETE FROM notes WHERE id = $1`

const searchNotesSQL = `
SELECT ` + noteColumns + `
FROM notes, websearch_to_tsquery('english', $1) AS query
WHERE search_vector @@ query
ORDER BY ts_rank_cd(search_vector, query) DESC, updated_at DESC`

func (r *Repo) CreateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	row, err := r.queryNote(ctx, createNoteSQL,
		note.Title, note.Content, string(note.Type), note.Tags, note.Folder, note.SourceFiles,
	)
	if err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.NoteID(row.ID))

	return row, nil
}

func (r *Repo) ListNotes(ctx context.Context) ([]entity.Note, error) {
	notes, err := r.queryNotes(ctx, listNotesSQL)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (r *Repo) GetNote(ctx context.Context, id string) (entity.Note, error) {
	note, err := r.queryNote(ctx, getNoteSQL, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("get note: %w", err)
	}

	return note, nil
}

// GetNoteForUpdate locks the row until the surrounding transaction ends.
func (r *Repo) GetNoteForUpdate(ctx context.Context, id string) (entity.Note, error) {
	note, err := r.queryNote(ctx, getNoteSQL+` FOR UPDATE`, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("get note for update: %w", err)
	}

	return note, nil
}

func (r *Repo) UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error) {
	row, err := r.queryNote(ctx, updateNoteSQL,
		note.ID, note.Title, note.Content, string(note.Type), note.Tags, note.Folder, note.SourceFiles,
	)
	if err != nil {
		return entity.Note{}, fmt.Errorf("update note: %w", err)
	}

	return row, nil
}

func (r *Repo) DeleteNote(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteNoteSQL, id)
	if err != nil {
		return fmt.Errorf("delete note: %w", mapError(err))
	}

	if tag.RowsAffected() == 0 {
		slogx.Debug(ctx, "delete of absent note", slogx.NoteID(id))
	}

	return nil
}

func (r *Repo) SearchNotes(ctx context.Context, query string) ([]entity.Note, error) {
	notes, err := r.queryNotes(ctx, searchNotesSQL, query)
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}

	return notes, nil
}

func (r *Repo) queryNote(ctx context.Context, sql string, args ...any) (entity.Note, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return entity.Note{}, mapError(err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.NoteRow])
	if err != nil {
		return entity.Note{}, mapError(err)
	}

	return converter.ConvertNoteToEntity(row), nil
}

func (r *Repo) queryNotes(ctx context.Context, sql string, args ...any) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[converter.NoteRow])
	if err != nil {
		return nil, mapError(err)
	}

	return converter.ConvertNotesToEntity(collected), nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.ErrNoteNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.CheckViolation:
			return entity.NewValidationError(pgErr.Message)
		case pgerrcode.InvalidTextRepresentation:
			return entity.ErrInvalidNoteID
		}
	}

	return err
}
