package contacts

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"1234567890", true},
		{"0000000000", true},
		{"12345", false},
		{"12345abcde", false},
		{"12345678901", false},
		{"", false},
		{"+123456789", false},
		{"１２３４５６７８９０", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := NewPhone(tt.input)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.input, p.String())
				return
			}
			assert.ErrorIs(t, err, ErrValidation)
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "phone", verr.Field)
		})
	}
}

func TestNewBirthday(t *testing.T) {
	b, err := NewBirthday("01.01.2000")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), b.Date())
	assert.Equal(t, "01.01.2000", b.String())

	for _, bad := range []string{"2000-01-01", "31.02.2000", "1.1.2000", "01/01/2000", "", "29.02.2001"} {
		_, err := NewBirthday(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}

	_, err = NewBirthday("29.02.2000")
	assert.NoError(t, err)
}

func TestNewName(t *testing.T) {
	n, err := NewName("John")
	require.NoError(t, err)
	assert.Equal(t, "John", n.String())

	_, err = NewName("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBirthdayNext(t *testing.T) {
	today := time.Date(2024, time.June, 1, 15, 30, 0, 0, time.Local)

	b, _ := NewBirthday("25.05.1990")
	assert.Equal(t, time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC), b.Next(today))

	b, _ = NewBirthday("01.06.1990")
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), b.Next(today))

	leap, _ := NewBirthday("29.02.2000")
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), leap.Next(today))
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC),
		leap.Next(time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)))
}
