package notes

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

type notesRepository interface {
	CreateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	ListNotes(ctx context.Context) ([]entity.Note, error)
	GetNote(ctx context.Context, id string) (entity.Note, error)
	GetNoteForUpdate(ctx context.Context, id string) (entity.Note, error)
	UpdateNote(ctx context.Context, note entity.Note) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, query string) ([]entity.Note, error)
}

type txManager interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	tx   txManager       `option:"mandatory" validate:"required"`
}

// Usecase holds no note state between calls; every operation goes to the
// repository.
type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes usecase options: %v", err)
	}

	return &Usecase{Options: opts}, nil
}

func (u *Usecase) CreateNote(ctx context.Context, patch entity.NotePatch) (entity.Note, error) {
	note, err := entity.NewNote(patch)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	note, err = u.repo.CreateNote(ctx, note)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase create note: %w", err)
	}

	slogx.Info(ctx, "success to create note", slogx.NoteID(note.ID))
	return note, nil
}

func (u *Usecase) ListNotes(ctx context.Context) ([]entity.Note, error) {
	notes, err := u.repo.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase list notes: %w", err)
	}

	if notes == nil {
		notes = []entity.Note{}
	}
	return notes, nil
}

func (u *Usecase) GetNote(ctx context.Context, id string) (entity.Note, error) {
	id, err := parseID(id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	note, err := u.repo.GetNote(ctx, id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase get note: %w", err)
	}

	return note, nil
}

// UpdateNote merges the supplied fields over the stored note. Concurrent
// updates of the same note are last-write-wins.
func (u *Usecase) UpdateNote(ctx context.Context, id string, patch entity.NotePatch) (entity.Note, error) {
	id, err := parseID(id)
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	var updated entity.Note
	err = u.tx.RunInTx(ctx, func(ctx context.Context) error {
		note, err := u.repo.GetNoteForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := note.Apply(patch); err != nil {
			return err
		}

		updated, err = u.repo.UpdateNote(ctx, note)
		return err
	})
	if err != nil {
		return entity.Note{}, fmt.Errorf("usecase update note: %w", err)
	}

	slogx.Debug(ctx, "success to update note", slogx.NoteID(id))
	return updated, nil
}

// DeleteNote succeeds when the note is already gone.
func (u *Usecase) DeleteNote(ctx context.Context, id string) error {
	id, err := parseID(id)
	if err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	if err := u.repo.DeleteNote(ctx, id); err != nil {
		return fmt.Errorf("usecase delete note: %w", err)
	}

	slogx.Info(ctx, "success to delete note", slogx.NoteID(id))
	return nil
}

// SearchNotes returns nothing for a blank query instead of every note.
func (u *Usecase) SearchNotes(ctx context.Context, query string) ([]entity.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Note{}, nil
	}

	notes, err := u.repo.SearchNotes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("usecase search notes: %w", err)
	}

	if notes == nil {
		notes = []entity.Note{}
	}
	return notes, nil
}

func parseID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", entity.ErrInvalidNoteID
	}

	return parsed.String(), nil
}
