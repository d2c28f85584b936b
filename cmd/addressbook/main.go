package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jeanpaul/addressbook/internal/config"
	"github.com/jeanpaul/addressbook/internal/export"
	"github.com/jeanpaul/addressbook/internal/health"
	"github.com/jeanpaul/addressbook/internal/logging"
	"github.com/jeanpaul/addressbook/internal/repl"
	"github.com/jeanpaul/addressbook/internal/storage"
	"github.com/jeanpaul/addressbook/internal/tui"
)

// Set with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	dataFlag := flag.String("data", "", "Address book file (overrides storage.path)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("addressbook %s (%s)\n", version, commit)
		os.Exit(0)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fatal("config error: %s", err)
	}
	if *dataFlag != "" {
		cfg.Storage.Path = *dataFlag
	}
	if !cfg.UI.Color {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fatal("log setup: %s", err)
	}
	defer log.Sync() //nolint:errcheck

	store, err := storage.NewFileStore(cfg.Storage.Path, cfg.Storage.Format, log)
	if err != nil {
		fatal("%s", err)
	}

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "doctor":
			if !cmdDoctor(os.Stdout, store, *configFlag) {
				os.Exit(1)
			}
			return
		case "export":
			if len(args) < 2 {
				fatal("usage: addressbook export <file.xlsx>")
			}
			if err := cmdExport(os.Stdout, store, args[1]); err != nil {
				fatal("%s", err)
			}
			return
		case "help":
			showHelp()
			return
		default:
			fatal("unknown command %q (see addressbook help)", args[0])
		}
	}

	book, err := store.Load()
	if err != nil {
		fatal("%s", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := repl.New(book, store, os.Stdout, repl.Options{
		Log:           log,
		WindowDays:    cfg.Birthdays.WindowDays,
		MarkdownStyle: cfg.UI.Style,
	})
	if err := session.Run(ctx, os.Stdin); err != nil {
		log.Error("session ended with error", zap.Error(err))
		os.Exit(1)
	}
}

// cmdDoctor prints the state of the configuration and the data file and
// reports whether the book can be loaded.
func cmdDoctor(w io.Writer, store *storage.FileStore, configPath string) bool {
	fmt.Fprintln(w, tui.BannerStyle.Render("  Address Book Check"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %s ... ", tui.PromptStyle.Render("●"), tui.LabelStyle.Render("config"))
	switch {
	case configPath != "":
		fmt.Fprintln(w, tui.ResultStyle.Render("✓ "+configPath))
	default:
		fmt.Fprintln(w, tui.HelpStyle.Render("- defaults, "+config.Dir()+"/config.yaml not required"))
	}

	fmt.Fprintf(w, "  %s %s ... ", tui.PromptStyle.Render("●"), tui.LabelStyle.Render("data"))
	status := health.Check(store)
	latency := status.Latency.Round(time.Microsecond).String()
	switch {
	case !status.OK():
		fmt.Fprintln(w, tui.ErrorStyle.Render("✗ "+status.Error))
	case !status.Exists:
		fmt.Fprintf(w, "%s %s\n",
			tui.WarningStyle.Render("- "+status.Path+" not found, a new book will be created"),
			tui.HelpStyle.Render(status.Codec))
	default:
		fmt.Fprintf(w, "%s %s %s\n",
			tui.ResultStyle.Render("✓ "+status.Path),
			tui.HelpStyle.Render(fmt.Sprintf("(%s, %d contacts, %d birthdays)", status.Codec, status.Contacts, status.Birthdays)),
			tui.HelpStyle.Render(latency))
	}
	return status.OK()
}

func cmdExport(w io.Writer, store *storage.FileStore, path string) error {
	book, err := store.Load()
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(path, book); err != nil {
		return err
	}
	fmt.Fprintf(w, "Exported %d contacts to %s\n", book.Len(), path)
	return nil
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + tui.BannerStyle.Render("addressbook") + ` - contacts and birthdays in your terminal

` + tui.LabelStyle.Render("USAGE:") + `
  addressbook [flags]              Start the assistant
  addressbook <command> [args]     Run a command

` + tui.LabelStyle.Render("COMMANDS:") + `
  doctor                           Check the config and the data file
  export <file.xlsx>               Write all contacts to a spreadsheet
  help                             Show this help

` + tui.LabelStyle.Render("FLAGS:") + `
  --config <path>                  Use a specific config file
  --data <path>                    Use a specific address book (.cbor, .json, .yaml)
  --version                        Show version
  --help, -h                       Show this help

` + tui.LabelStyle.Render("ENVIRONMENT:") + `
  ADDRESSBOOK_STORAGE_PATH         Address book file
  ADDRESSBOOK_BIRTHDAYS_WINDOW_DAYS
                                   Days covered by the birthdays command
  ADDRESSBOOK_LOG_LEVEL            debug, info, warn, error
  ADDRESSBOOK_LOG_FILE             Log destination, "off" to disable

` + tui.LabelStyle.Render("ASSISTANT COMMANDS:") + `
  hello, add, change, phone, all, add-birthday, show-birthday,
  birthdays, edit-phone, remove-phone, delete, export, help,
  close, exit
`
	fmt.Println(help)
}
