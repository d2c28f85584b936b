package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

const snapshotVersion = 1

// snapshot is the serialized form of a whole book.
type snapshot struct {
	Version  int       `json:"version" yaml:"version"`
	ID       string    `json:"id" yaml:"id"`
	SavedAt  time.Time `json:"saved_at" yaml:"saved_at"`
	Contacts []contact `json:"contacts" yaml:"contacts"`
}

type contact struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

func newSnapshot(book *contacts.Book, now time.Time) *snapshot {
	s := &snapshot{
		Version:  snapshotVersion,
		ID:       uuid.New().String(),
		SavedAt:  now.UTC(),
		Contacts: make([]contact, 0, book.Len()),
	}
	for _, r := range book.Records() {
		c := contact{Name: r.Name().String(), Phones: []string{}}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if b, ok := r.Birthday(); ok {
			c.Birthday = b.String()
		}
		s.Contacts = append(s.Contacts, c)
	}
	return s
}

// book rebuilds the records through the validating constructors.
func (s *snapshot) book() (*contacts.Book, error) {
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}
	book := contacts.NewBook()
	for i, c := range s.Contacts {
		r, err := contacts.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("contact %d: %w", i, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.SetBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("contact %q: %w", c.Name, err)
			}
		}
		if _, dup := book.Find(c.Name); dup {
			return nil, fmt.Errorf("contact %q stored twice", c.Name)
		}
		book.AddRecord(r)
	}
	return book, nil
}
