// Package repl runs the interactive command loop over an input and output stream.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jeanpaul/addressbook/internal/commands"
	"github.com/jeanpaul/addressbook/internal/contacts"
	"github.com/jeanpaul/addressbook/internal/export"
	"github.com/jeanpaul/addressbook/internal/storage"
	"github.com/jeanpaul/addressbook/internal/tui"
)

const (
	Welcome        = "Welcome to the assistant bot!"
	Prompt         = "Enter a command: "
	Greeting       = "How can I help you?"
	Goodbye        = "Good bye!"
	InvalidCommand = "Invalid command."
)

// Options tunes a Session. Zero values select the defaults.
type Options struct {
	Log *zap.Logger

	// Now supplies the current date for the birthdays command.
	Now func() time.Time

	// WindowDays is the look-ahead of the birthdays command.
	WindowDays int

	// MarkdownStyle is the glamour style used by help.
	MarkdownStyle string
}

// Session is one run of the loop over a book.
type Session struct {
	book     *contacts.Book
	store    storage.Store
	out      io.Writer
	log      *zap.Logger
	now      func() time.Time
	window   int
	mdStyle  string
	handlers map[string]commands.Spec
}

func New(book *contacts.Book, store storage.Store, out io.Writer, opts Options) *Session {
	s := &Session{
		book:     book,
		store:    store,
		out:      out,
		log:      opts.Log,
		now:      opts.Now,
		window:   opts.WindowDays,
		mdStyle:  opts.MarkdownStyle,
		handlers: make(map[string]commands.Spec),
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.window <= 0 {
		s.window = contacts.UpcomingWindowDays
	}
	if s.mdStyle == "" {
		s.mdStyle = "auto"
	}
	for _, spec := range commands.All() {
		s.handlers[spec.Name] = spec
	}
	return s
}

// parseInput splits a line into a lower-cased command and its arguments.
func parseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Run reads commands from in until close, exit, end of input or cancellation of ctx,
// then saves the book. Command failures are printed and never end the loop.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(s.out, tui.BannerStyle.Render(Welcome))

	lines, readErr := readLines(ctx, in)
	for {
		if err := ctx.Err(); err != nil {
			s.log.Info("session cancelled", zap.Error(err))
			return s.close()
		}

		fmt.Fprint(s.out, tui.PromptStyle.Render(Prompt))
		select {
		case <-ctx.Done():
			s.log.Info("session cancelled", zap.Error(ctx.Err()))
			fmt.Fprintln(s.out)
			return s.close()

		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil && ctx.Err() == nil {
					s.log.Error("reading input failed", zap.Error(err))
				}
				fmt.Fprintln(s.out)
				return s.close()
			}

			cmd, args := parseInput(line)
			if cmd == "" {
				continue
			}
			if cmd == "close" || cmd == "exit" {
				return s.close()
			}
			s.Execute(cmd, args)
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not hold up
// cancellation. lines is closed at end of input, after the scanner error (nil on
// EOF) has been sent on the second channel.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

func (s *Session) close() error {
	if err := s.store.Save(s.book); err != nil {
		s.printError(fmt.Errorf("save address book: %w", err))
		return err
	}
	fmt.Fprintln(s.out, tui.BannerStyle.Render(Goodbye))
	return nil
}

// Execute runs one command other than close/exit and prints its outcome.
func (s *Session) Execute(cmd string, args []string) {
	s.log.Debug("command", zap.String("command", cmd), zap.Int("args", len(args)))

	switch cmd {
	case "hello":
		s.printResult(Greeting)

	case "all":
		if s.book.Len() == 0 {
			s.printResult("No contacts saved.")
			return
		}
		fmt.Fprintln(s.out, tui.ContactsTable(s.book.Records()))

	case "birthdays":
		upcoming := s.book.UpcomingWithin(s.now(), s.window)
		if len(upcoming) == 0 {
			s.printResult("No upcoming birthdays.")
			return
		}
		fmt.Fprintln(s.out, tui.LabelStyle.Render(fmt.Sprintf("Birthdays in the next %d days:", s.window)))
		fmt.Fprintln(s.out, tui.BirthdaysTable(upcoming))

	case "help":
		fmt.Fprint(s.out, tui.Markdown(HelpMarkdown(), s.mdStyle, 80))

	case "export":
		if len(args) < 1 {
			s.printError(&commands.ArgumentError{Command: "export", Usage: "export <file.xlsx>"})
			return
		}
		if err := export.WriteXLSX(args[0], s.book); err != nil {
			s.printError(err)
			return
		}
		s.log.Info("address book exported", zap.String("path", args[0]), zap.Int("contacts", s.book.Len()))
		s.printResult(fmt.Sprintf("Exported %d contacts to %s.", s.book.Len(), args[0]))

	default:
		spec, ok := s.handlers[cmd]
		if !ok {
			fmt.Fprintln(s.out, tui.ErrorStyle.Render(InvalidCommand))
			return
		}
		msg, err := spec.Handler(args, s.book)
		if err != nil {
			s.log.Info("command failed", zap.String("command", cmd), zap.Error(err))
			s.printError(err)
			return
		}
		s.printResult(msg)
	}
}

func (s *Session) printResult(msg string) {
	fmt.Fprintln(s.out, tui.ResultStyle.Render(msg))
}

func (s *Session) printError(err error) {
	fmt.Fprintln(s.out, tui.ErrorStyle.Render("error: "+err.Error()))
}

// HelpMarkdown lists every command the loop understands.
func HelpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	b.WriteString("| Command | Description |\n| --- | --- |\n")
	b.WriteString("| `hello` | greet the assistant |\n")
	for _, spec := range commands.All() {
		fmt.Fprintf(&b, "| `%s` | %s |\n", spec.Usage, spec.Summary)
	}
	b.WriteString("| `all` | list every contact |\n")
	b.WriteString("| `birthdays` | contacts with a birthday in the coming days |\n")
	b.WriteString("| `export <file.xlsx>` | write the contacts to a spreadsheet |\n")
	b.WriteString("| `help` | show this help |\n")
	b.WriteString("| `close`, `exit` | save and quit |\n")
	b.WriteString("\nDates use the DD.MM.YYYY format. Phones are exactly 10 digits.\n")
	return b.String()
}
