package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func phoneValues(r *Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.String())
	}
	return out
}

func TestRecord_Phones(t *testing.T) {
	r, err := NewRecord("John")
	require.NoError(t, err)

	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("5555555555"))
	require.NoError(t, r.AddPhone("1234567890"))
	assert.Equal(t, []string{"1234567890", "5555555555", "1234567890"}, phoneValues(r))

	err = r.AddPhone("123")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Len(t, r.Phones(), 3)

	p, ok := r.FindPhone("5555555555")
	assert.True(t, ok)
	assert.Equal(t, "5555555555", p.String())
	_, ok = r.FindPhone("0000000000")
	assert.False(t, ok)

	r.RemovePhone("1234567890")
	assert.Equal(t, []string{"5555555555"}, phoneValues(r))

	r.RemovePhone("0000000000")
	assert.Equal(t, []string{"5555555555"}, phoneValues(r))
}

func TestRecord_EditPhone(t *testing.T) {
	r, _ := NewRecord("Jane")
	require.NoError(t, r.AddPhone("1111111111"))
	require.NoError(t, r.AddPhone("2222222222"))
	require.NoError(t, r.AddPhone("1111111111"))

	require.NoError(t, r.EditPhone("1111111111", "3333333333"))
	assert.Equal(t, []string{"3333333333", "2222222222", "1111111111"}, phoneValues(r))

	err := r.EditPhone("9999999999", "4444444444")
	assert.ErrorIs(t, err, ErrNotFound)

	err = r.EditPhone("2222222222", "bad")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []string{"3333333333", "2222222222", "1111111111"}, phoneValues(r))
}

func TestRecord_Birthday(t *testing.T) {
	r, _ := NewRecord("Jane")
	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.SetBirthday("05.06.1990"))
	require.NoError(t, r.SetBirthday("06.07.1991"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "06.07.1991", b.String())

	assert.ErrorIs(t, r.SetBirthday("1991-07-06"), ErrValidation)
	b, _ = r.Birthday()
	assert.Equal(t, "06.07.1991", b.String())
}

func TestRecord_String(t *testing.T) {
	r, _ := NewRecord("John")
	assert.Equal(t, "Contact name: John, phones: ", r.String())

	_ = r.AddPhone("1234567890")
	_ = r.AddPhone("5555555555")
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555", r.String())
}

func TestNewRecord_EmptyName(t *testing.T) {
	_, err := NewRecord("")
	assert.ErrorIs(t, err, ErrValidation)
}
