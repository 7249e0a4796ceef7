package book

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vrmiguel/porquinho/internal/entry"
	"github.com/vrmiguel/porquinho/internal/model"
)

// Book is one month of entries backed by a file.
type Book struct {
	Path  string
	Month string // file name, "MM-YYYY"
	Doc   Document

	codec Codec
	log   logrus.FieldLogger
}

// Load reads the month file at path, creating an empty one if it does not
// exist yet. A blank file is an empty month. The document's field types are
// checked before it is returned; entry lines are not parsed here.
func Load(path string, codec Codec, log logrus.FieldLogger) (*Book, error) {
	if err := createIfMissing(path, log); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	raw := map[string]any{"take": []any{}, "put": []any{}}
	if strings.TrimSpace(string(data)) != "" {
		raw, err = codec.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if raw == nil {
			raw = map[string]any{}
		}
	}

	if verrs := ValidateTypes(raw); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return nil, fmt.Errorf("invalid types in %s: %s", path, strings.Join(msgs, "; "))
	}

	return &Book{
		Path:  path,
		Month: filepath.Base(path),
		Doc:   fromRaw(raw),
		codec: codec,
		log:   log,
	}, nil
}

// Append adds e at the end of its list and rewrites the file.
func (b *Book) Append(e model.Entry) error {
	line := entry.Format(e)
	switch e.Kind {
	case model.Credit:
		b.Doc.Put = append(b.Doc.Put, line)
	default:
		b.Doc.Take = append(b.Doc.Take, line)
	}

	if err := b.save(); err != nil {
		return err
	}
	b.log.WithFields(logrus.Fields{"month": b.Month, "line": line}).Debug("entry appended")
	return nil
}

// SetTarget stores the month's target and rewrites the file.
func (b *Book) SetTarget(target int64) error {
	b.Doc.Target = &target
	return b.save()
}

// save writes the whole document from the start of the file and cuts off
// whatever the previous, possibly longer, content left behind.
func (b *Book) save() error {
	data, err := b.codec.Encode(b.Doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", b.Path, err)
	}

	f, err := os.OpenFile(b.Path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", b.Path, err)
	}
	defer f.Close()

	n, err := f.WriteAt(data, 0)
	if err != nil {
		return fmt.Errorf("writing %s: %w", b.Path, err)
	}
	if err := f.Truncate(int64(n)); err != nil {
		return fmt.Errorf("truncating %s: %w", b.Path, err)
	}
	return nil
}

func createIfMissing(path string, log logrus.FieldLogger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	log.WithField("path", path).Info("creating month file")
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return f.Close()
}
