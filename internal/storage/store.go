package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

// DefaultPath is where the book lives when no path is configured.
const DefaultPath = "addressbook.cbor"

// Store loads and saves a whole address book.
type Store interface {
	// Load returns the saved book, or an empty one when nothing was saved yet.
	Load() (*contacts.Book, error)

	// Save replaces the saved state with book.
	Save(book *contacts.Book) error
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// FileStore keeps the book in a single file.
type FileStore struct {
	path  string
	codec Codec
	log   *zap.Logger
	now   func() time.Time
}

// NewFileStore creates a store at path. An empty format selects the codec from the
// file extension.
func NewFileStore(path, format string, log *zap.Logger) (*FileStore, error) {
	if path == "" {
		path = DefaultPath
	}
	codec, err := CodecFor(format, path)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FileStore{path: path, codec: codec, log: log, now: time.Now}, nil
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Codec() Codec { return s.codec }

func (s *FileStore) Load() (*contacts.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Info("no saved address book, starting empty", zap.String("path", s.path))
			return contacts.NewBook(), nil
		}
		return nil, err
	}

	var snap snapshot
	if err := s.codec.decode(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	book, err := snap.book()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.path, err)
	}

	s.log.Info("address book loaded",
		zap.String("path", s.path),
		zap.String("codec", s.codec.Name()),
		zap.String("snapshot_id", snap.ID),
		zap.Int("contacts", book.Len()),
	)
	return book, nil
}

// Save writes to a temporary file next to the target and renames it into place.
func (s *FileStore) Save(book *contacts.Book) error {
	data, err := s.codec.encode(newSnapshot(book, s.now()))
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return err
	}

	s.log.Info("address book saved",
		zap.String("path", s.path),
		zap.String("codec", s.codec.Name()),
		zap.Int("contacts", book.Len()),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// MemoryStore keeps the encoded book in memory. Saves go through the codec so a
// reload sees exactly what a file would hold.
type MemoryStore struct {
	codec Codec
	data  []byte
	now   func() time.Time
	Saves int
}

// NewMemoryStore returns an empty store using the CBOR codec.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codec: cborCodec{}, now: time.Now}
}

func (m *MemoryStore) Load() (*contacts.Book, error) {
	if m.data == nil {
		return contacts.NewBook(), nil
	}
	var snap snapshot
	if err := m.codec.decode(m.data, &snap); err != nil {
		return nil, err
	}
	return snap.book()
}

func (m *MemoryStore) Save(book *contacts.Book) error {
	data, err := m.codec.encode(newSnapshot(book, m.now()))
	if err != nil {
		return err
	}
	m.data = data
	m.Saves++
	return nil
}

// Saved reports whether Save has been called at least once.
func (m *MemoryStore) Saved() bool { return m.data != nil }
