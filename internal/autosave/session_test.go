package autosave

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const testDelay = 20 * time.Millisecond

type fakeSaver struct {
	mu    sync.Mutex
	calls []v1.NoteFields
	err   error
	block chan struct{}
}

func (f *fakeSaver) UpdateNote(ctx context.Context, id string, fields v1.NoteFields) (v1.Note, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fields)
	err, block := f.err, f.block
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return v1.Note{}, ctx.Err()
		}
	}
	if err != nil {
		return v1.Note{}, err
	}
	return v1.Note{ID: id, Title: *fields.Title, Content: *fields.Content}, nil
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeSaver) call(i int) v1.NoteFields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

func (f *fakeSaver) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

func newSession(t *testing.T, saver *fakeSaver, opts ...OptOptionsSetter) *Session {
	t.Helper()

	opts = append([]OptOptionsSetter{WithDelay(testDelay)}, opts...)
	s, err := New(NewOptions("note-1", saver, opts...))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(NewOptions("", &fakeSaver{}))
	require.Error(t, err)

	_, err = New(NewOptions("id", nil))
	require.Error(t, err)
}

func TestDebounceSendsOnlyLastDraft(t *testing.T) {
	saver := &fakeSaver{}
	s := newSession(t, saver)

	for _, title := range []string{"a", "ab", "abc"} {
		require.NoError(t, s.Edit(Draft{Title: title}))
	}
	assert.Equal(t, StateDirty, s.State())

	require.Eventually(t, func() bool { return s.State() == StateSaved }, time.Second, time.Millisecond)
	time.Sleep(3 * testDelay)

	require.Equal(t, 1, saver.count())
	assert.Equal(t, "abc", *saver.call(0).Title)
	assert.Equal(t, "abc", s.Saved().Title)
}

func TestSaveSendsFullFieldSet(t *testing.T) {
	saver := &fakeSaver{}
	s := newSession(t, saver, WithDelay(time.Hour))

	require.NoError(t, s.Edit(Draft{
		Title:       "t",
		Content:     "<p>c</p>",
		Folder:      "Work",
		SourceFiles: []v1.SourceFile{{Name: "a.txt", FileType: "text/plain"}},
	}))
	require.NoError(t, s.Flush(context.Background()))

	f := saver.call(0)
	require.NotNil(t, f.Title)
	require.NotNil(t, f.Content)
	require.NotNil(t, f.Folder)
	require.NotNil(t, f.Tags)
	require.NotNil(t, f.SourceFiles)
	assert.Nil(t, f.Type)

	assert.Equal(t, []string{}, *f.Tags)
	assert.Equal(t, "Work", *f.Folder)
	assert.Len(t, *f.SourceFiles, 1)
	assert.Equal(t, StateSaved, s.State())
}

func TestFlushWithoutChangesIsNoop(t *testing.T) {
	saver := &fakeSaver{}
	s := newSession(t, saver)

	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, 0, saver.count())
	assert.Equal(t, StateIdle, s.State())
}

func TestFailedSaveIsNotRetriedWithoutEdit(t *testing.T) {
	boom := errors.New("boom")
	saver := &fakeSaver{err: boom}
	s := newSession(t, saver)

	require.NoError(t, s.Edit(Draft{Title: "x"}))
	require.Eventually(t, func() bool { return s.State() == StateSaveFailed }, time.Second, time.Millisecond)
	require.ErrorIs(t, s.Err(), boom)

	time.Sleep(5 * testDelay)
	assert.Equal(t, 1, saver.count())

	saver.setErr(nil)
	require.NoError(t, s.Edit(Draft{Title: "y"}))
	require.Eventually(t, func() bool { return s.State() == StateSaved }, time.Second, time.Millisecond)
	assert.Equal(t, 2, saver.count())
	assert.NoError(t, s.Err())
}

func TestFlushRetriesFailedDraft(t *testing.T) {
	saver := &fakeSaver{err: errors.New("boom")}
	s := newSession(t, saver, WithDelay(time.Hour))

	require.NoError(t, s.Edit(Draft{Title: "x"}))
	require.Error(t, s.Flush(context.Background()))
	assert.Equal(t, StateSaveFailed, s.State())

	saver.setErr(nil)
	require.NoError(t, s.Flush(context.Background()))
	assert.Equal(t, StateSaved, s.State())
	assert.Equal(t, 2, saver.count())
}

func TestNotFoundClosesSession(t *testing.T) {
	saver := &fakeSaver{err: entity.ErrNoteNotFound}
	s := newSession(t, saver, WithDelay(time.Hour))

	require.NoError(t, s.Edit(Draft{Title: "x"}))
	err := s.Flush(context.Background())
	require.ErrorIs(t, err, entity.ErrNoteNotFound)

	assert.Equal(t, StateClosed, s.State())
	assert.ErrorIs(t, s.Edit(Draft{Title: "y"}), ErrClosed)
	assert.ErrorIs(t, s.Flush(context.Background()), ErrClosed)
	assert.Equal(t, 1, saver.count())
}

func TestCloseCancelsInFlightSave(t *testing.T) {
	saver := &fakeSaver{block: make(chan struct{})}

	var (
		mu     sync.Mutex
		states []State
	)
	s := newSession(t, saver, WithOnChange(func(state State, _ error) {
		mu.Lock()
		states = append(states, state)
		mu.Unlock()
	}))

	require.NoError(t, s.Edit(Draft{Title: "x"}))
	require.Eventually(t, func() bool { return s.State() == StateSaving }, time.Second, time.Millisecond)

	s.Close()

	assert.Equal(t, StateClosed, s.State())
	assert.Equal(t, v1.Note{}, s.Saved())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateDirty, StateSaving, StateClosed}, states)
}

func TestEditDuringSaveKeepsSessionDirty(t *testing.T) {
	saver := &fakeSaver{block: make(chan struct{})}
	s := newSession(t, saver)

	require.NoError(t, s.Edit(Draft{Title: "first"}))
	require.Eventually(t, func() bool { return s.State() == StateSaving }, time.Second, time.Millisecond)

	require.NoError(t, s.Edit(Draft{Title: "second"}))
	close(saver.block)

	require.Eventually(t, func() bool { return saver.count() == 2 && s.State() == StateSaved }, time.Second, time.Millisecond)
	assert.Equal(t, "first", *saver.call(0).Title)
	assert.Equal(t, "second", *saver.call(1).Title)
	assert.Equal(t, "second", s.Saved().Title)
}

func TestCloseIsIdempotent(t *testing.T) {
	s := newSession(t, &fakeSaver{})

	require.NoError(t, s.Edit(Draft{Title: "x"}))
	s.Close()
	s.Close()

	assert.Equal(t, StateClosed, s.State())
}

func TestDraftFromNote(t *testing.T) {
	n := v1.Note{Title: "t", Tags: []string{"a"}, Folder: "General"}
	d := DraftFromNote(n)
	d.Tags[0] = "b"

	assert.Equal(t, "a", n.Tags[0])
	assert.Equal(t, "t", d.Title)
}
