package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

func TestAdd(t *testing.T) {
	book := contacts.NewBook()

	msg, err := Add([]string{"John", "1234567890"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Contact added.", msg)

	msg, err = Add([]string{"John", "5555555555", "ignored"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Contact updated.", msg)

	r, ok := book.Find("John")
	require.True(t, ok)
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555", r.String())
}

func TestAdd_Errors(t *testing.T) {
	book := contacts.NewBook()

	_, err := Add([]string{"John"}, book)
	assert.ErrorIs(t, err, ErrArguments)
	assert.Contains(t, err.Error(), "add <name> <phone>")

	_, err = Add(nil, book)
	assert.ErrorIs(t, err, ErrArguments)

	_, err = Add([]string{"John", "12345"}, book)
	assert.ErrorIs(t, err, contacts.ErrValidation)
	assert.Equal(t, 0, book.Len(), "invalid phone must not create a contact")
}

func TestChange(t *testing.T) {
	book := contacts.NewBook()
	_, err := Add([]string{"John", "1234567890"}, book)
	require.NoError(t, err)
	_, err = AddBirthday([]string{"John", "01.01.2000"}, book)
	require.NoError(t, err)

	msg, err := Change([]string{"John", "5555555555"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Contact updated.", msg)

	r, _ := book.Find("John")
	assert.Equal(t, "Contact name: John, phones: 5555555555", r.String())
	_, hasBirthday := r.Birthday()
	assert.False(t, hasBirthday)

	_, err = Change([]string{"Ghost", "5555555555"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)
	_, ok := book.Find("Ghost")
	assert.False(t, ok)

	_, err = Change([]string{"John", "bad"}, book)
	assert.ErrorIs(t, err, contacts.ErrValidation)
	r, _ = book.Find("John")
	assert.Equal(t, "Contact name: John, phones: 5555555555", r.String())
}

func TestShowPhone(t *testing.T) {
	book := contacts.NewBook()
	_, _ = Add([]string{"John", "1234567890"}, book)

	msg, err := ShowPhone([]string{"John"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Contact name: John, phones: 1234567890", msg)

	_, err = ShowPhone([]string{"Jane"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)

	_, err = ShowPhone(nil, book)
	assert.ErrorIs(t, err, ErrArguments)
}

func TestBirthdays(t *testing.T) {
	book := contacts.NewBook()
	_, _ = Add([]string{"John", "1234567890"}, book)

	msg, err := ShowBirthday([]string{"John"}, book)
	require.NoError(t, err)
	assert.Equal(t, "No birthday set for John.", msg)

	msg, err = AddBirthday([]string{"John", "05.06.1990"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Birthday added.", msg)

	msg, err = ShowBirthday([]string{"John"}, book)
	require.NoError(t, err)
	assert.Equal(t, "05.06.1990", msg)

	_, err = AddBirthday([]string{"John", "1990-06-05"}, book)
	assert.ErrorIs(t, err, contacts.ErrValidation)

	_, err = AddBirthday([]string{"Jane", "05.06.1990"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)

	_, err = AddBirthday([]string{"John"}, book)
	assert.ErrorIs(t, err, ErrArguments)

	_, err = ShowBirthday([]string{"Jane"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)
}

func TestEditRemoveDelete(t *testing.T) {
	book := contacts.NewBook()
	_, _ = Add([]string{"John", "1234567890"}, book)
	_, _ = Add([]string{"John", "5555555555"}, book)

	msg, err := EditPhone([]string{"John", "1234567890", "0987654321"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Phone updated.", msg)

	_, err = EditPhone([]string{"John", "1111111111", "0987654321"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)
	assert.EqualError(t, err, `phone "1111111111" of contact "John" not found`)

	_, err = EditPhone([]string{"John", "0987654321"}, book)
	assert.ErrorIs(t, err, ErrArguments)

	msg, err = RemovePhone([]string{"John", "5555555555"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Phone removed.", msg)

	_, err = RemovePhone([]string{"John", "5555555555"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)
	assert.EqualError(t, err, contacts.PhoneNotFound("John", "5555555555").Error())

	_, err = RemovePhone([]string{"Ghost", "5555555555"}, book)
	assert.EqualError(t, err, contacts.ContactNotFound("Ghost").Error())

	r, _ := book.Find("John")
	assert.Equal(t, "Contact name: John, phones: 0987654321", r.String())

	msg, err = Delete([]string{"John"}, book)
	require.NoError(t, err)
	assert.Equal(t, "Contact deleted.", msg)

	_, err = Delete([]string{"John"}, book)
	assert.ErrorIs(t, err, contacts.ErrNotFound)
}

func TestAll_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range All() {
		assert.False(t, seen[s.Name], "duplicate command %s", s.Name)
		seen[s.Name] = true
		assert.NotNil(t, s.Handler)
		assert.Contains(t, s.Usage, s.Name)
	}
}
