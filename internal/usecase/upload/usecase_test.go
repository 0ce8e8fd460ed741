package upload

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faizanmoriani2/bignote/internal/entity"
	"github.com/Faizanmoriani2/bignote/internal/extractor"
)

func textFile(name, contentType, body string) File {
	return File{
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func newUsecase(t *testing.T, opts ...OptOptionsSetter) *Usecase {
	t.Helper()

	uc, err := New(NewOptions(opts...))
	require.NoError(t, err)
	return uc
}

func TestMergeKeepsOrderAndSkipsCorruptFile(t *testing.T) {
	uc := newUsecase(t)

	files := []File{
		textFile("one.txt", "text/plain", "first"),
		textFile("two.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "not a zip"),
		textFile("three.TXT", "text/plain", "third"),
	}

	res, err := uc.Merge(context.Background(), files)
	require.NoError(t, err)

	assert.Equal(t, "\n\n<p>first</p>\n\n<p>third</p>", res.Content)
	assert.Equal(t, []entity.SourceFile{
		{Name: "one.txt", FileType: "text/plain"},
		{Name: "three.TXT", FileType: "text/plain"},
	}, res.SourceFiles)
}

func TestMergeUnsupportedExtensionContributesNothing(t *testing.T) {
	uc := newUsecase(t)

	res, err := uc.Merge(context.Background(), []File{
		textFile("slides.pdf", "application/pdf", "%PDF-1.4"),
		textFile("a.txt", "text/plain", "a"),
	})
	require.NoError(t, err)

	assert.Equal(t, "\n\n\n\n<p>a</p>", res.Content)
	require.Len(t, res.SourceFiles, 2)
	assert.Equal(t, "slides.pdf", res.SourceFiles[0].Name)
}

func TestMergePreservesOrderUnderParallelism(t *testing.T) {
	// later files finish first
	slow := func(ctx context.Context, kind extractor.Kind, r io.ReaderAt, size int64) (string, error) {
		buf := make([]byte, size)
		if _, err := r.ReadAt(buf, 0); err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		n := len(buf)
		time.Sleep(time.Duration(10-n) * 3 * time.Millisecond)
		return string(buf), nil
	}

	uc := newUsecase(t, WithParallelism(8), WithExtract(slow))

	var files []File
	for _, body := range []string{"a", "bb", "ccc", "dddd", "eeeee"} {
		files = append(files, textFile(body+".txt", "text/plain", body))
	}

	res, err := uc.Merge(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, "\n\na\n\nbb\n\nccc\n\ndddd\n\neeeee", res.Content)
}

func TestMergeRespectsParallelismLimit(t *testing.T) {
	var running, peak atomic.Int32
	track := func(context.Context, extractor.Kind, io.ReaderAt, int64) (string, error) {
		n := running.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		running.Add(-1)
		return "x", nil
	}

	uc := newUsecase(t, WithParallelism(2), WithExtract(track))

	files := make([]File, 6)
	for i := range files {
		files[i] = textFile("f.txt", "text/plain", "x")
	}

	_, err := uc.Merge(context.Background(), files)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestMergeRecoversExtractorPanic(t *testing.T) {
	boom := func(_ context.Context, kind extractor.Kind, _ io.ReaderAt, _ int64) (string, error) {
		if kind == extractor.KindDocx {
			panic("bad input")
		}
		return "ok", nil
	}

	uc := newUsecase(t, WithExtract(boom))

	res, err := uc.Merge(context.Background(), []File{
		textFile("a.docx", "", "x"),
		textFile("b.txt", "text/plain", "y"),
	})
	require.NoError(t, err)
	assert.Equal(t, "\n\nok", res.Content)
	require.Len(t, res.SourceFiles, 1)
	assert.Equal(t, "b.txt", res.SourceFiles[0].Name)
}

func TestMergeEmptyBatch(t *testing.T) {
	uc := newUsecase(t)

	_, err := uc.Merge(context.Background(), nil)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestMergeCanceled(t *testing.T) {
	uc := newUsecase(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Merge(ctx, []File{textFile("a.txt", "text/plain", "a")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFileTypeDetection(t *testing.T) {
	plain := textFile("a.txt", "", "just some text")
	assert.True(t, strings.HasPrefix(fileType(plain), "text/plain"))

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	docx := File{Name: "a.docx", ContentType: "application/octet-stream", Size: int64(buf.Len()), Body: bytes.NewReader(buf.Bytes())}
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", fileType(docx))

	declared := textFile("a.txt", "text/markdown", "x")
	assert.Equal(t, "text/markdown", fileType(declared))
}

func TestNewRejectsBadParallelism(t *testing.T) {
	_, err := New(NewOptions(WithParallelism(0)))
	require.Error(t, err)
}
