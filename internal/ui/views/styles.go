package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Search      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Cursor      lipgloss.Style
	CursorBg    lipgloss.Style
	Code        lipgloss.Style
	Region      lipgloss.Style
	Capital     lipgloss.Style
	MatchCount  lipgloss.Style
	SectionHead lipgloss.Style
	Key         lipgloss.Style
	Desc        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Search:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Help:       lipgloss.NewStyle().Faint(true),
		Main:       lipgloss.NewStyle().Padding(1, 2),
		Scroll:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		CursorBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Region:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Capital:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MatchCount: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		SectionHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		Key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
