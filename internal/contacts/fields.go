package contacts

import (
	"time"
)

// DateLayout is the input and display format for birthdays (DD.MM.YYYY).
const DateLayout = "02.01.2006"

const phoneDigits = 10

// Name identifies a contact and keys it in the Book.
type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	if s == "" {
		return Name{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Phone is a number of exactly ten decimal digits.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	if len(s) != phoneDigits {
		return Phone{}, &ValidationError{Field: "phone", Value: s, Reason: "phone number can only consist of 10 digits"}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Phone{}, &ValidationError{Field: "phone", Value: s, Reason: "phone number can only consist of 10 digits"}
		}
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date. The time of day is always midnight UTC.
type Birthday struct {
	date time.Time
}

func NewBirthday(s string) (Birthday, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: s, Reason: "invalid date format, use DD.MM.YYYY"}
	}
	return Birthday{date: t}, nil
}

// Date returns the parsed date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string { return b.date.Format(DateLayout) }

// Next returns the first anniversary on or after the calendar date of today.
func (b Birthday) Next(today time.Time) time.Time {
	y, m, d := today.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	next := b.occurrence(y)
	if next.Before(start) {
		next = b.occurrence(y + 1)
	}
	return next
}

// occurrence returns the birthday's anniversary in the given year.
// 29 February falls on 28 February when year is not a leap year.
func (b Birthday) occurrence(year int) time.Time {
	month, day := b.date.Month(), b.date.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
