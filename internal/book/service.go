package book

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/vrmiguel/porquinho/internal/model"
	"github.com/vrmiguel/porquinho/internal/month"
)

// Service gives access to the month files of one data directory.
type Service struct {
	dataDir string
	codec   Codec
	log     logrus.FieldLogger
}

// NewService creates a Service rooted at dataDir. A nil codec means YAML.
func NewService(dataDir string, codec Codec, log logrus.FieldLogger) *Service {
	if codec == nil {
		codec = YAML{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Service{dataDir: dataDir, codec: codec, log: log}
}

// DataDir returns the directory holding the month files.
func (s *Service) DataDir() string {
	return s.dataDir
}

// EnsureDir creates the data directory if it does not exist.
func (s *Service) EnsureDir() error {
	if _, err := os.Stat(s.dataDir); err == nil {
		return nil
	}
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", s.dataDir, err)
	}
	s.log.WithField("path", s.dataDir).Info("created folder")
	return nil
}

// Path returns the file backing m.
func (s *Service) Path(m month.Month) string {
	return filepath.Join(s.dataDir, m.String())
}

// Open loads the book for m, creating its file on first access.
func (s *Service) Open(m month.Month) (*Book, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}
	return Load(s.Path(m), s.codec, s.log)
}

// Append records e in the book for m.
func (s *Service) Append(m month.Month, e model.Entry) (*Book, error) {
	b, err := s.Open(m)
	if err != nil {
		return nil, err
	}
	if err := b.Append(e); err != nil {
		return nil, err
	}
	return b, nil
}

// Months lists the months with a file in the data directory, oldest first.
// Files whose name is not a month are ignored.
func (s *Service) Months() ([]month.Month, error) {
	dirEntries, err := os.ReadDir(s.dataDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.dataDir, err)
	}

	var months []month.Month
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		m, err := month.Parse(de.Name())
		if err != nil {
			s.log.WithField("file", de.Name()).Debug("skipping non-month file")
			continue
		}
		months = append(months, m)
	}

	slices.SortFunc(months, func(a, b month.Month) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})
	return months, nil
}

// OpenAll loads every stored month, oldest first.
func (s *Service) OpenAll() ([]*Book, error) {
	months, err := s.Months()
	if err != nil {
		return nil, err
	}

	books := make([]*Book, 0, len(months))
	for _, m := range months {
		b, err := Load(s.Path(m), s.codec, s.log)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, nil
}
