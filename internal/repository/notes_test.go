package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/pkg/database"
)

// newTestRepo needs a disposable PostgreSQL database in TEST_DATABASE_URL.
func newTestRepo(t *testing.T) (*Repo, *database.Database) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, Migrate(ctx, pool))

	_, err = pool.Exec(ctx, `TRUNCATE notes`)
	require.NoError(t, err)

	db := database.NewDatabase(pool)
	return New(db), db
}

func newNote(t *testing.T, title, content string, tags ...string) entity.Note {
	t.Helper()

	p := entity.NotePatch{Title: &title, Content: &content}
	if len(tags) > 0 {
		p.Tags, p.HasTags = tags, true
	}

	n, err := entity.NewNote(p)
	require.NoError(t, err)
	return n
}

func TestRepoCreateAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	note := newNote(t, "Groceries", "<p>milk</p>", "home")
	note.SourceFiles = []entity.SourceFile{{Name: "a.txt", FileType: "text/plain"}}

	created, err := repo.CreateNote(ctx, note)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetNote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Groceries", got.Title)
	assert.Equal(t, entity.NoteTypeNormal, got.Type)
	assert.Equal(t, entity.DefaultFolder, got.Folder)
	assert.Equal(t, []string{"home"}, got.Tags)
	assert.Equal(t, note.SourceFiles, got.SourceFiles)
}

func TestRepoGetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.GetNote(context.Background(), "7b0d1d1e-8a39-4c8b-9d5e-6a0b7b9a1c11")
	require.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestRepoListOrderAndMonotonicUpdate(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	a, err := repo.CreateNote(ctx, newNote(t, "A", ""))
	require.NoError(t, err)
	b, err := repo.CreateNote(ctx, newNote(t, "B", ""))
	require.NoError(t, err)

	prev := a.UpdatedAt
	for range 3 {
		a, err = repo.UpdateNote(ctx, a)
		require.NoError(t, err)
		assert.True(t, a.UpdatedAt.After(prev))
		prev = a.UpdatedAt
	}

	notes, err := repo.ListNotes(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, a.ID, notes[0].ID)
	assert.Equal(t, b.ID, notes[1].ID)
}

func TestRepoRejectsUnknownType(t *testing.T) {
	repo, _ := newTestRepo(t)

	note := newNote(t, "x", "")
	note.Type = "HUGE"

	_, err := repo.CreateNote(context.Background(), note)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestRepoDeleteIsIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.CreateNote(ctx, newNote(t, "gone", ""))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteNote(ctx, n.ID))
	require.NoError(t, repo.DeleteNote(ctx, n.ID))

	_, err = repo.GetNote(ctx, n.ID)
	require.ErrorIs(t, err, entity.ErrNoteNotFound)
}

func TestRepoSearchRanksTitleFirst(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	inContent, err := repo.CreateNote(ctx, newNote(t, "Misc", "<p>notes about kubernetes</p>"))
	require.NoError(t, err)
	inTitle, err := repo.CreateNote(ctx, newNote(t, "Kubernetes", "<p>cluster</p>"))
	require.NoError(t, err)
	inTags, err := repo.CreateNote(ctx, newNote(t, "Ops", "", "kubernetes"))
	require.NoError(t, err)
	_, err = repo.CreateNote(ctx, newNote(t, "Cooking", "<p>pasta</p>"))
	require.NoError(t, err)

	found, err := repo.SearchNotes(ctx, "kubernetes")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, inTitle.ID, found[0].ID)
	assert.Equal(t, inTags.ID, found[1].ID)
	assert.Equal(t, inContent.ID, found[2].ID)
}

func TestRepoUpdateInTxLocksRow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.CreateNote(ctx, newNote(t, "tx", ""))
	require.NoError(t, err)

	err = db.RunInTx(ctx, func(ctx context.Context) error {
		locked, err := repo.GetNoteForUpdate(ctx, n.ID)
		if err != nil {
			return err
		}
		locked.Title = "tx2"
		_, err = repo.UpdateNote(ctx, locked)
		return err
	})
	require.NoError(t, err)

	got, err := repo.GetNote(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "tx2", got.Title)
}
