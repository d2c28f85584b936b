package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	MedGreen    = lipgloss.Color("#00C832")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	Gold        = lipgloss.Color("#FFD700")
	Red         = lipgloss.Color("#FF4136")
	LightGray   = lipgloss.Color("#aaaaaa")

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Prompt shown before each command
	PromptStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	// Plain command results
	ResultStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	// Section labels in help and doctor output
	LabelStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	// Table header row
	HeaderStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true).
			Padding(0, 1)

	// Table cells
	CellStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	// Upcoming birthday falling today
	TodayStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true).
			Padding(0, 1)

	TableBorderStyle = lipgloss.NewStyle().
				Foreground(DarkGreen)

	// Warnings
	WarningStyle = lipgloss.NewStyle().
			Foreground(Gold)

	// Error
	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(MedGreen)
)
