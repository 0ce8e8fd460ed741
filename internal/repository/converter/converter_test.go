package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"github.com/Faizanmoriani2/bignote/internal/entity"
)

func TestConvertNoteToEntity(t *testing.T) {
	id := uuid.New()
	now := time.Now().UTC()

	note := ConvertNoteToEntity(NoteRow{
		ID:        pgtype.UUID{Bytes: id, Valid: true},
		Title:     "t",
		Type:      "BIG",
		Folder:    "Work",
		CreatedAt: ConvertTimeToTimestampz(now),
		UpdatedAt: ConvertTimeToTimestampz(now),
	})

	assert.Equal(t, id.String(), note.ID)
	assert.Equal(t, entity.NoteTypeBig, note.Type)
	assert.Equal(t, []string{}, note.Tags)
	assert.Equal(t, []entity.SourceFile{}, note.SourceFiles)
	assert.True(t, now.Equal(note.UpdatedAt))
}

func TestConvertTimeToTimestampzZero(t *testing.T) {
	assert.False(t, ConvertTimeToTimestampz(time.Time{}).Valid)
}
