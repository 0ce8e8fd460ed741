// Package autosave keeps the server copy of one note in step with an editor.
//
// Every Edit re-arms a debounce timer. When the timer fires the latest draft
// is sent as a full update; intermediate drafts are never sent. Saves of a
// session never overlap.
package autosave

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

var ErrClosed = errors.New("autosave session closed")

type State int

const (
	StateIdle State = iota
	StateDirty
	StateSaving
	StateSaved
	StateSaveFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirty:
		return "dirty"
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	case StateSaveFailed:
		return "save failed"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Draft is the editor's view of a note. It is always sent whole.
type Draft struct {
	Title       string
	Content     string
	Tags        []string
	Folder      string
	SourceFiles []v1.SourceFile
}

// DraftFromNote seeds a draft with the stored note.
func DraftFromNote(n v1.Note) Draft {
	return Draft{
		Title:       n.Title,
		Content:     n.Content,
		Tags:        slices.Clone(n.Tags),
		Folder:      n.Folder,
		SourceFiles: slices.Clone(n.SourceFiles),
	}
}

func (d Draft) fields() v1.NoteFields {
	tags := slices.Clone(d.Tags)
	if tags == nil {
		tags = []string{}
	}
	files := slices.Clone(d.SourceFiles)
	if files == nil {
		files = []v1.SourceFile{}
	}

	return v1.NoteFields{
		Title:       &d.Title,
		Content:     &d.Content,
		Tags:        &tags,
		Folder:      &d.Folder,
		SourceFiles: &files,
	}
}

type saver interface {
	UpdateNote(ctx context.Context, id string, fields v1.NoteFields) (v1.Note, error)
}

// ChangeFunc observes state transitions. It runs with the session lock held
// and must not call back into the session.
type ChangeFunc func(state State, err error)

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=session_options.gen.go -from-struct=Options
type Options struct {
	noteID string `option:"mandatory" validate:"required"`
	saver  saver  `option:"mandatory" validate:"required"`

	delay       time.Duration `default:"800ms" validate:"min=1ms"`
	saveTimeout time.Duration `default:"30s" validate:"min=1ms"`
	onChange    ChangeFunc
}

type Session struct {
	Options

	// saveMu serializes saves; mu guards everything below.
	saveMu sync.Mutex

	mu    sync.Mutex
	state State
	draft Draft
	gen   uint64
	timer *time.Timer
	last  v1.Note
	err   error

	ctx    context.Context
	cancel context.CancelFunc
	fires  sync.WaitGroup
}

func New(opts Options) (*Session, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate autosave options: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Session{
		Options: opts,
		state:   StateIdle,
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Edit records the latest draft and restarts the debounce timer.
func (s *Session) Edit(d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return ErrClosed
	}

	s.draft = d
	s.gen++
	s.setStateLocked(StateDirty, nil)

	s.stopTimerLocked()
	s.fires.Add(1)
	s.timer = time.AfterFunc(s.delay, func() {
		defer s.fires.Done()
		if err := s.save(s.ctx, true); err != nil {
			slogx.Debug(s.ctx, "autosave failed", slogx.NoteID(s.noteID), slogx.Err(err))
		}
	})

	return nil
}

// Flush saves unsaved changes now instead of waiting for the timer. A draft
// whose last save failed is sent again.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.state == StateClosed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.stopTimerLocked()
	s.mu.Unlock()

	return s.save(ctx, false)
}

// Close stops the timer and cancels a save in flight. The result of that
// save is discarded. Close waits for timer-driven saves to return.
func (s *Session) Close() {
	s.mu.Lock()
	if s.state != StateClosed {
		s.closeLocked(nil)
	}
	s.mu.Unlock()

	s.fires.Wait()
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err is the error of the last failed save, if the session is in
// StateSaveFailed or was closed by one.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Saved is the note as last acknowledged by the server.
func (s *Session) Saved() v1.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// save sends the current draft. A timer-driven save only acts on a dirty
// session so that a failure is never retried without a new edit.
func (s *Session) save(ctx context.Context, fromTimer bool) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	switch {
	case s.state == StateClosed:
		s.mu.Unlock()
		return ErrClosed
	case s.state == StateDirty:
	case s.state == StateSaveFailed && !fromTimer:
	default:
		s.mu.Unlock()
		return nil
	}
	fields := s.draft.fields()
	gen := s.gen
	s.setStateLocked(StateSaving, nil)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	note, err := s.saver.UpdateNote(ctx, s.noteID, fields)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return ErrClosed
	}

	switch {
	case errors.Is(err, entity.ErrNoteNotFound):
		s.closeLocked(err)
		return fmt.Errorf("save note %s: %w", s.noteID, err)
	case err != nil:
		if s.gen == gen {
			s.setStateLocked(StateSaveFailed, err)
		}
		return fmt.Errorf("save note %s: %w", s.noteID, err)
	}

	s.last = note
	// A newer edit keeps the session dirty; its timer is already armed.
	if s.gen == gen {
		s.setStateLocked(StateSaved, nil)
	}
	return nil
}

func (s *Session) closeLocked(err error) {
	s.stopTimerLocked()
	s.cancel()
	s.setStateLocked(StateClosed, err)
}

func (s *Session) stopTimerLocked() {
	if s.timer != nil && s.timer.Stop() {
		s.fires.Done()
	}
	s.timer = nil
}

func (s *Session) setStateLocked(state State, err error) {
	s.state = state
	s.err = err
	if s.onChange != nil {
		s.onChange(state, err)
	}
}
