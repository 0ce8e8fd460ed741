package notes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/internal/usecase/upload"
)

const pathPrefix = "/api/notes"

type notesUsecase interface {
	CreateNote(ctx context.Context, patch entity.NotePatch) (entity.Note, error)
	ListNotes(ctx context.Context) ([]entity.Note, error)
	GetNote(ctx context.Context, id string) (entity.Note, error)
	UpdateNote(ctx context.Context, id string, patch entity.NotePatch) (entity.Note, error)
	DeleteNote(ctx context.Context, id string) error
	SearchNotes(ctx context.Context, query string) ([]entity.Note, error)
}

type uploadUsecase interface {
	Merge(ctx context.Context, files []upload.File) (upload.Result, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	notes   notesUsecase  `option:"mandatory" validate:"required"`
	uploads uploadUsecase `option:"mandatory" validate:"required"`

	maxUploadBytes int64 `default:"33554432" validate:"min=1"`
	maxUploadFiles int   `default:"20" validate:"min=1"`
}

// Service exposes the note operations as REST routes under /api/notes.
type Service struct {
	Options
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes api options: %v", err)
	}

	return &Service{Options: opts}, nil
}

func (s *Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleRoot)

	mux.HandleFunc("POST "+pathPrefix, s.handleCreate)
	mux.HandleFunc("GET "+pathPrefix, s.handleList)
	mux.HandleFunc("GET "+pathPrefix+"/search", s.handleSearch)
	mux.HandleFunc("POST "+pathPrefix+"/upload", s.handleUpload)
	mux.HandleFunc("GET "+pathPrefix+"/{id}", s.handleGet)
	mux.HandleFunc("PUT "+pathPrefix+"/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE "+pathPrefix+"/{id}", s.handleDelete)
}

// Handler returns a mux with only this service registered.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

func (s *Service) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("API running..."))
}
