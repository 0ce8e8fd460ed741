package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/Faizanmoriani2/bignote/internal/api/notes/converter"
	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/internal/usecase/upload"
	v1 "github.com/Faizanmoriani2/bignote/pkg/api/notes/v1"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

const (
	maxJSONBody        = 16 << 20
	multipartMemory    = 8 << 20
	uploadFilesField   = "files"
	deletedNoteMessage = "Note deleted"
)

func (s *Service) handleCreate(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}

	note, err := s.notes.CreateNote(r.Context(), converter.ConvertFieldsToPatch(fields))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, converter.ConvertNoteToV1(note))
}

func (s *Service) handleList(w http.ResponseWriter, r *http.Request) {
	notes, err := s.notes.ListNotes(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNotesToV1(notes))
}

func (s *Service) handleSearch(w http.ResponseWriter, r *http.Request) {
	notes, err := s.notes.SearchNotes(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNotesToV1(notes))
}

func (s *Service) handleGet(w http.ResponseWriter, r *http.Request) {
	note, err := s.notes.GetNote(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNoteToV1(note))
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request) {
	fields, ok := s.decodeFields(w, r)
	if !ok {
		return
	}

	note, err := s.notes.UpdateNote(r.Context(), r.PathValue("id"), converter.ConvertFieldsToPatch(fields))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, converter.ConvertNoteToV1(note))
}

func (s *Service) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.notes.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v1.MessageResponse{Message: deletedNoteMessage})
}

func (s *Service) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, v1.MessageResponse{
				Message: fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit),
			})
			return
		}

		writeJSON(w, http.StatusBadRequest, v1.MessageResponse{Message: "invalid multipart form: " + err.Error()})
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File[uploadFilesField]
	if len(headers) > s.maxUploadFiles {
		writeJSON(w, http.StatusBadRequest, v1.MessageResponse{
			Message: fmt.Sprintf("at most %d files per upload", s.maxUploadFiles),
		})
		return
	}

	files, closeFiles := openParts(r, headers)
	defer closeFiles()

	res, err := s.uploads.Merge(r.Context(), files)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, v1.UploadResponse{
		Content:     res.Content,
		SourceFiles: converter.ConvertSourceFilesToV1(res.SourceFiles),
	})
}

// openParts opens every uploaded part. A part that cannot be opened keeps
// its slot with a nil body so the merge skips it like any unreadable file.
func openParts(r *http.Request, headers []*multipart.FileHeader) ([]upload.File, func()) {
	files := make([]upload.File, 0, len(headers))
	var opened []multipart.File

	for _, fh := range headers {
		f := upload.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
		}

		body, err := fh.Open()
		if err != nil {
			slogx.Warn(r.Context(), "open uploaded part", slogx.FileName(fh.Filename), slogx.Err(err))
		} else {
			f.Body = body
			opened = append(opened, body)
		}

		files = append(files, f)
	}

	return files, func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
}

func (s *Service) decodeFields(w http.ResponseWriter, r *http.Request) (v1.NoteFields, bool) {
	var fields v1.NoteFields

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	err := dec.Decode(&fields)
	if errors.Is(err, io.EOF) {
		return fields, true
	}
	if err == nil {
		// A single object only.
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errors.New("unexpected data after JSON object")
		}
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, v1.MessageResponse{Message: "invalid request body: " + err.Error()})
		return v1.NoteFields{}, false
	}

	return fields, true
}

func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *entity.ValidationError

	switch {
	case errors.Is(err, entity.ErrNoteNotFound):
		writeJSON(w, http.StatusNotFound, v1.MessageResponse{Message: "Note not found"})

	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, v1.MessageResponse{Message: validation.Msg})

	default:
		slogx.Error(r.Context(), "handle notes request",
			slog.String("path", r.URL.Path),
			slogx.Err(err),
		)
		writeJSON(w, http.StatusInternalServerError, v1.MessageResponse{Message: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slogx.Default().Slog().Warn("write json response", slog.Any("err", err))
	}
}
