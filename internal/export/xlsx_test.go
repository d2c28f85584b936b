package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

func TestWriteXLSX(t *testing.T) {
	book := contacts.NewBook()

	john, _ := contacts.NewRecord("John")
	require.NoError(t, john.AddPhone("1234567890"))
	require.NoError(t, john.AddPhone("5555555555"))
	require.NoError(t, john.SetBirthday("05.06.1990"))
	book.AddRecord(john)

	adam, _ := contacts.NewRecord("Adam")
	require.NoError(t, adam.AddPhone("0987654321"))
	book.AddRecord(adam)

	path := filepath.Join(t.TempDir(), "contacts.xlsx")
	require.NoError(t, WriteXLSX(path, book))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Phones", "Birthday"}, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 2)
	assert.Equal(t, "Adam", rows[1][0])
	assert.Equal(t, "0987654321", rows[1][1])
	assert.Equal(t, []string{"John", "1234567890; 5555555555", "05.06.1990"}, rows[2])
}

func TestWriteXLSX_EmptyBook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, contacts.NewBook()))

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX_RejectsOtherExtensions(t *testing.T) {
	err := WriteXLSX(filepath.Join(t.TempDir(), "contacts.csv"), contacts.NewBook())
	assert.Error(t, err)
}
