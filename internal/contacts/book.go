package contacts

import (
	"sort"
	"time"
)

// UpcomingWindowDays is the default look-ahead for UpcomingBirthdays, inclusive.
const UpcomingWindowDays = 7

// Book is the address book: records keyed by name.
type Book struct {
	records map[string]*Record
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{records: make(map[string]*Record)}
}

// AddRecord inserts the record, replacing any record with the same name.
func (b *Book) AddRecord(r *Record) {
	b.records[r.name.value] = r
}

// Find looks a record up by its exact name.
func (b *Book) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the named record. A missing name yields an error matching ErrNotFound.
func (b *Book) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return ContactNotFound(name)
	}
	delete(b.records, name)
	return nil
}

func (b *Book) Len() int { return len(b.records) }

// Records returns every record sorted by name.
func (b *Book) Records() []*Record {
	out := make([]*Record, 0, len(b.records))
	for _, r := range b.records {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].name.value < out[j].name.value
	})
	return out
}

// Upcoming is a contact whose next birthday falls inside the look-ahead window.
type Upcoming struct {
	Name string
	Date time.Time
	Days int
}

// DateString formats the occurrence as DD.MM.YYYY.
func (u Upcoming) DateString() string { return u.Date.Format(DateLayout) }

// UpcomingBirthdays reports contacts whose next birthday is 0 to 7 days after today.
func (b *Book) UpcomingBirthdays(today time.Time) []Upcoming {
	return b.UpcomingWithin(today, UpcomingWindowDays)
}

// UpcomingWithin is UpcomingBirthdays with a custom window. Only the calendar date of
// today is used. A birthday earlier than today this year rolls over to next year.
func (b *Book) UpcomingWithin(today time.Time, days int) []Upcoming {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	var out []Upcoming
	for name, r := range b.records {
		if r.birthday == nil {
			continue
		}
		next := r.birthday.Next(start)
		until := int(next.Sub(start).Hours() / 24)
		if until >= 0 && until <= days {
			out = append(out, Upcoming{Name: name, Date: next, Days: until})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
