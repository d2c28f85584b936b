package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

// ContactsTable renders records as a name/phones/birthday table.
func ContactsTable(records []*contacts.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		phones := make([]string, 0, len(r.Phones()))
		for _, p := range r.Phones() {
			phones = append(phones, p.String())
		}
		birthday := "-"
		if b, ok := r.Birthday(); ok {
			birthday = b.String()
		}
		rows = append(rows, []string{r.Name().String(), strings.Join(phones, "; "), birthday})
	}
	return newTable(nil).
		Headers("Name", "Phones", "Birthday").
		Rows(rows...).
		String()
}

// BirthdaysTable renders upcoming birthdays; rows for today are highlighted.
func BirthdaysTable(upcoming []contacts.Upcoming) string {
	rows := make([][]string, 0, len(upcoming))
	today := map[int]bool{}
	for i, u := range upcoming {
		rows = append(rows, []string{u.Name, u.DateString(), inDays(u.Days)})
		if u.Days == 0 {
			today[i] = true
		}
	}
	return newTable(today).
		Headers("Name", "Date", "When").
		Rows(rows...).
		String()
}

func inDays(n int) string {
	switch n {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return "in " + strconv.Itoa(n) + " days"
	}
}

func newTable(highlight map[int]bool) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(TableBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case highlight[row]:
				return TodayStyle
			default:
				return CellStyle
			}
		})
}

// Markdown renders md for the terminal with the named glamour style
// ("auto", "dark", "light", "notty", "ascii"). On failure md is returned as is.
func Markdown(md, style string, width int) string {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
