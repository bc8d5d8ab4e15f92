package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"atlas/internal/domain"
)

// DetailOps shows country details in an external pager
type DetailOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewDetailOps creates a new detail operations instance
func NewDetailOps() *DetailOps {
	return &DetailOps{}
}

// SetProgram sets the program reference for terminal management
func (d *DetailOps) SetProgram(p *tea.Program) {
	d.program = p
}

// ShowCountryInPager shows a country's details using the ov pager
func (d *DetailOps) ShowCountryInPager(c domain.Country) error {
	if d.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := d.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = d.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(renderCountryDetail(c))

	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// renderCountryDetail builds the pager content for one country
func renderCountryDetail(c domain.Country) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99"))

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var detail strings.Builder

	detail.WriteString(titleStyle.Render(c.Name))
	detail.WriteString("\n\n")
	detail.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("Code:   "), valueStyle.Render(c.Code)))
	detail.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("Region: "), valueStyle.Render(c.Region)))
	detail.WriteString(fmt.Sprintf("%s  %s\n", labelStyle.Render("Capital:"), valueStyle.Render(c.Capital)))

	return detail.String()
}
