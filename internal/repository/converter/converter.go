package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Faizanmoriani2/bignote/internal/entity"
)

// NoteRow mirrors one row of the notes table.
type NoteRow struct {
	ID          pgtype.UUID         `db:"id"`
	Title       string              `db:"title"`
	Content     string              `db:"content"`
	Type        string              `db:"type"`
	Tags        []string            `db:"tags"`
	Folder      string              `db:"folder"`
	SourceFiles []entity.SourceFile `db:"source_files"`
	CreatedAt   pgtype.Timestamptz  `db:"created_at"`
	UpdatedAt   pgtype.Timestamptz  `db:"updated_at"`
}

func ConvertNoteToEntity(row NoteRow) entity.Note {
	n := entity.Note{
		Title:       row.Title,
		Content:     row.Content,
		Type:        entity.NoteType(row.Type),
		Tags:        row.Tags,
		Folder:      row.Folder,
		SourceFiles: row.SourceFiles,
		CreatedAt:   ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt:   ConvertTimestampzToTime(row.UpdatedAt),
	}

	if row.ID.Valid {
		n.ID = uuid.UUID(row.ID.Bytes).String()
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	if n.SourceFiles == nil {
		n.SourceFiles = []entity.SourceFile{}
	}

	return n
}

func ConvertNotesToEntity(rows []NoteRow) []entity.Note {
	notes := make([]entity.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, ConvertNoteToEntity(row))
	}

	return notes
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
