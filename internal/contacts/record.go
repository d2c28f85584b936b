package contacts

import (
	"fmt"
	"strings"
)

// Record holds one contact: a name, an ordered list of phones and an optional birthday.
// Duplicate phones are allowed.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// Birthday reports the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

func (r *Record) FindPhone(number string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == number {
			return p, true
		}
	}
	return Phone{}, false
}

// RemovePhone drops every phone equal to number.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone equal to oldNumber with a phone built from newNumber.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	p, err := NewPhone(newNumber)
	if err != nil {
		return err
	}
	for i := range r.phones {
		if r.phones[i].value == oldNumber {
			r.phones[i] = p
			return nil
		}
	}
	return PhoneNotFound(r.name.value, oldNumber)
}

// SetBirthday validates and stores the birthday, replacing any previous one.
func (r *Record) SetBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name.value, strings.Join(values, "; "))
}
