package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

// Sheet is the worksheet holding the exported contacts.
const Sheet = "Contacts"

var header = []any{"Name", "Phones", "Birthday"}

// WriteXLSX writes one row per record, phones joined with "; ".
func WriteXLSX(path string, book *contacts.Book) error {
	if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return fmt.Errorf("export: %s is not an .xlsx file", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), Sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range book.Records() {
		phones := make([]string, 0, len(r.Phones()))
		for _, p := range r.Phones() {
			phones = append(phones, p.String())
		}
		birthday := ""
		if b, ok := r.Birthday(); ok {
			birthday = b.String()
		}
		row := []any{r.Name().String(), strings.Join(phones, "; "), birthday}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(Sheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(Sheet, "A", "C", 24); err != nil {
		return err
	}
	return f.SaveAs(path)
}

// ReadRows returns the rows of the contacts sheet, header included.
func ReadRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(Sheet)
}
