package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/internal/extractor"
	"github.com/Faizanmoriani2/bignote/pkg/logger/slogx"
)

// boundary separates each file's contribution from whatever precedes it.
const boundary = "\n\n"

const genericContentType = "application/octet-stream"

// File is one part of an upload batch.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.ReaderAt
}

type Result struct {
	Content     string
	SourceFiles []entity.SourceFile
}

type extractFunc func(ctx context.Context, kind extractor.Kind, r io.ReaderAt, size int64) (string, error)

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	parallelism int `default:"4" validate:"min=1,max=64"`

	extract extractFunc
}

// Usecase merges uploaded files into note content. It persists nothing.
type Usecase struct {
	Options
}

func New(opts Options) (*Usecase, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate upload usecase options: %v", err)
	}

	if opts.extract == nil {
		opts.extract = extractor.Extract
	}

	return &Usecase{Options: opts}, nil
}

type outcome struct {
	text     string
	fileType string
	err      error
}

// Merge extracts every file and concatenates the results in input order.
// A file that fails to extract is logged and left out of both the content
// and the source list; the rest of the batch still merges.
func (u *Usecase) Merge(ctx context.Context, files []File) (Result, error) {
	if len(files) == 0 {
		return Result{}, entity.NewValidationError("no files uploaded")
	}

	outcomes := make([]outcome, len(files))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(u.parallelism)

	for i, f := range files {
		eg.Go(func() error {
			outcomes[i] = u.extractOne(egCtx, f)
			return nil
		})
	}
	_ = eg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("usecase merge upload: %w", err)
	}

	var (
		content strings.Builder
		sources = make([]entity.SourceFile, 0, len(files))
	)
	for i, o := range outcomes {
		if o.err != nil {
			slogx.Warn(ctx, "skip uploaded file",
				slogx.FileName(files[i].Name),
				slogx.Err(o.err),
			)
			continue
		}

		content.WriteString(boundary)
		content.WriteString(o.text)
		sources = append(sources, entity.SourceFile{Name: files[i].Name, FileType: o.fileType})
	}

	slogx.Info(ctx, "merged uploaded files",
		slog.Int("files", len(files)),
		slog.Int("merged", len(sources)),
	)

	return Result{Content: content.String(), SourceFiles: sources}, nil
}

func (u *Usecase) extractOne(ctx context.Context, f File) (o outcome) {
	defer func() {
		if v := recover(); v != nil {
			o = outcome{err: fmt.Errorf("%w: panic: %v", extractor.ErrRead, v)}
		}
	}()

	if f.Body == nil {
		return outcome{err: fmt.Errorf("%w: empty body", extractor.ErrRead)}
	}

	text, err := u.extract(ctx, extractor.KindFromName(f.Name), f.Body, f.Size)
	if err != nil {
		return outcome{err: err}
	}

	return outcome{text: text, fileType: fileType(f)}
}

// fileType prefers the declared content type and sniffs the bytes when the
// client sent nothing useful.
func fileType(f File) string {
	if mt, _, err := mime.ParseMediaType(f.ContentType); err == nil && mt != genericContentType {
		return f.ContentType
	}

	detected, err := mimetype.DetectReader(io.NewSectionReader(f.Body, 0, f.Size))
	if err != nil {
		return genericContentType
	}

	if mt := extensionType(f.Name); mt != "" && detected.Is("application/zip") {
		return mt
	}

	return detected.String()
}

// extensionType resolves office formats that sniff as plain zip archives.
func extensionType(name string) string {
	if extractor.KindFromName(name) == extractor.KindDocx {
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return ""
}
