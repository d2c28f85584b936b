// Package commands translates positional command arguments into Book operations.
package commands

import (
	"errors"
	"fmt"

	"github.com/jeanpaul/addressbook/internal/contacts"
)

const (
	usageAdd          = "add <name> <phone>"
	usageChange       = "change <name> <phone>"
	usagePhone        = "phone <name>"
	usageAddBirthday  = "add-birthday <name> <DD.MM.YYYY>"
	usageShowBirthday = "show-birthday <name>"
	usageEditPhone    = "edit-phone <name> <old> <new>"
	usageRemovePhone  = "remove-phone <name> <phone>"
	usageDelete       = "delete <name>"
)

// ErrArguments is matched by every *ArgumentError.
var ErrArguments = errors.New("not enough arguments")

// ArgumentError reports a command invoked with too few arguments.
type ArgumentError struct {
	Command string
	Usage   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s (usage: %s)", e.Command, ErrArguments, e.Usage)
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrArguments
}

// Handler runs one command against the book and returns the text to display.
type Handler func(args []string, book *contacts.Book) (string, error)

// Spec describes a handler and how to invoke it.
type Spec struct {
	Name    string
	Usage   string
	Summary string
	Handler Handler
}

// All lists the book-mutating and lookup commands in display order.
func All() []Spec {
	return []Spec{
		{Name: "add", Usage: usageAdd, Summary: "add a contact or append a phone to it", Handler: Add},
		{Name: "change", Usage: usageChange, Summary: "replace a contact with a fresh record holding only this phone", Handler: Change},
		{Name: "phone", Usage: usagePhone, Summary: "show a contact's phones", Handler: ShowPhone},
		{Name: "add-birthday", Usage: usageAddBirthday, Summary: "set a contact's birthday", Handler: AddBirthday},
		{Name: "show-birthday", Usage: usageShowBirthday, Summary: "show a contact's birthday", Handler: ShowBirthday},
		{Name: "edit-phone", Usage: usageEditPhone, Summary: "replace one phone of a contact", Handler: EditPhone},
		{Name: "remove-phone", Usage: usageRemovePhone, Summary: "remove a phone from a contact", Handler: RemovePhone},
		{Name: "delete", Usage: usageDelete, Summary: "delete a contact", Handler: Delete},
	}
}

func need(args []string, n int, command, usage string) error {
	if len(args) < n {
		return &ArgumentError{Command: command, Usage: usage}
	}
	return nil
}

func lookup(book *contacts.Book, name string) (*contacts.Record, error) {
	r, ok := book.Find(name)
	if !ok {
		return nil, contacts.ContactNotFound(name)
	}
	return r, nil
}

// Add creates the contact when missing and appends the phone.
func Add(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 2, "add", usageAdd); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if r, ok := book.Find(name); ok {
		if err := r.AddPhone(phone); err != nil {
			return "", err
		}
		return "Contact updated.", nil
	}

	r, err := contacts.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	book.AddRecord(r)
	return "Contact added.", nil
}

// Change replaces an existing contact with a new record holding only the given phone.
// Earlier phones and the birthday are dropped. A missing contact is not created.
func Change(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 2, "change", usageChange); err != nil {
		return "", err
	}
	name, phone := args[0], args[1]

	if _, err := lookup(book, name); err != nil {
		return "", err
	}
	r, err := contacts.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(phone); err != nil {
		return "", err
	}
	book.AddRecord(r)
	return "Contact updated.", nil
}

func ShowPhone(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 1, "phone", usagePhone); err != nil {
		return "", err
	}
	r, err := lookup(book, args[0])
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func AddBirthday(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 2, "add-birthday", usageAddBirthday); err != nil {
		return "", err
	}
	r, err := lookup(book, args[0])
	if err != nil {
		return "", err
	}
	if err := r.SetBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func ShowBirthday(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 1, "show-birthday", usageShowBirthday); err != nil {
		return "", err
	}
	r, err := lookup(book, args[0])
	if err != nil {
		return "", err
	}
	b, ok := r.Birthday()
	if !ok {
		return fmt.Sprintf("No birthday set for %s.", args[0]), nil
	}
	return b.String(), nil
}

func EditPhone(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 3, "edit-phone", usageEditPhone); err != nil {
		return "", err
	}
	r, err := lookup(book, args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone updated.", nil
}

func RemovePhone(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 2, "remove-phone", usageRemovePhone); err != nil {
		return "", err
	}
	r, err := lookup(book, args[0])
	if err != nil {
		return "", err
	}
	if _, ok := r.FindPhone(args[1]); !ok {
		return "", contacts.PhoneNotFound(args[0], args[1])
	}
	r.RemovePhone(args[1])
	return "Phone removed.", nil
}

func Delete(args []string, book *contacts.Book) (string, error) {
	if err := need(args, 1, "delete", usageDelete); err != nil {
		return "", err
	}
	if err := book.Delete(args[0]); err != nil {
		return "", err
	}
	return "Contact deleted.", nil
}
