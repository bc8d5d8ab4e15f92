package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"atlas/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	ViewportHeight int

	// Visible window of the active sequence
	Window      []domain.Country
	WindowStart int
	Cursor      int
	Count       int // rows currently visible (loaded or matched)
	Total       int // full dataset size, 0 before load

	// Mode and search
	Searching   bool // search input focused
	Query       string
	SearchInput string // rendered text input
	InSearch    bool   // controller in search mode

	// Fetch state
	Fetching bool
	Spinner  string
	FetchErr error

	// Misc
	ShowHelp      bool
	StatusMessage string
	ShowRegion    bool
	ShowCapital   bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.styles.Main.Render(r.renderHelp())
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	if state.Searching || state.Query != "" {
		content.WriteString(r.renderSearchLine(state))
		content.WriteString("\n")
	}

	content.WriteString(r.renderList(state))

	content.WriteString("\n")
	content.WriteString(r.renderStatusLine(state))

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Dim.Render(state.StatusMessage))
	}

	content.WriteString("\n")
	content.WriteString(r.styles.Help.Render("Press ? for help"))

	return r.styles.Main.Render(content.String())
}

// renderTitleLine builds the title with a right-aligned fetch indicator
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("atlas")

	rightContent := ""
	if state.Fetching {
		rightContent = r.styles.Dim.Render(fmt.Sprintf("%s Fetching dataset", state.Spinner))
	} else if state.InSearch {
		rightContent = r.styles.Search.Render(fmt.Sprintf("[Search: %s]", state.Query))
	}

	if rightContent == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	availableWidth := termWidth - 4 // main container padding
	paddingWidth := availableWidth - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if paddingWidth > 0 {
		return logo + strings.Repeat(" ", paddingWidth) + rightContent
	}
	return fmt.Sprintf("%s  %s", logo, rightContent)
}

// renderSearchLine shows the live search input or the applied query
func (r *Renderer) renderSearchLine(state ViewState) string {
	if state.Searching {
		return fmt.Sprintf("%s%s", r.styles.Search.Render("Search: "), state.SearchInput)
	}
	return r.styles.Search.Render(fmt.Sprintf("Search: %s", state.Query))
}

// renderList renders the visible window of rows
func (r *Renderer) renderList(state ViewState) string {
	if state.FetchErr != nil {
		return r.styles.Error.Render(fmt.Sprintf("Could not load dataset: %v", state.FetchErr)) +
			"\n" + r.styles.Dim.Render("Press r to retry.")
	}

	if state.Fetching && state.Total == 0 {
		return r.styles.Dim.Render("Loading countries...")
	}

	if state.Total == 0 {
		return r.styles.Dim.Render("No dataset loaded. Press r to fetch.")
	}

	if state.Count == 0 {
		if state.InSearch {
			return r.styles.Dim.Render(fmt.Sprintf("No countries match %q.", state.Query))
		}
		return r.styles.Dim.Render("Nothing to show.")
	}

	lines := make([]string, 0, len(state.Window)+2)

	if state.WindowStart > 0 {
		lines = append(lines, r.styles.Scroll.Render("↑ (more above)"))
	}

	for i, c := range state.Window {
		index := state.WindowStart + i
		lines = append(lines, r.renderRow(c, index == state.Cursor, state))
	}

	windowEnd := state.WindowStart + len(state.Window)
	if windowEnd < state.Count || (!state.InSearch && state.Total > state.Count) {
		lines = append(lines, r.styles.Scroll.Render("↓ (more below)"))
	}

	return strings.Join(lines, "\n")
}

// renderRow renders a single country row
func (r *Renderer) renderRow(c domain.Country, selected bool, state ViewState) string {
	prefix := "  "
	if selected {
		prefix = r.styles.Cursor.Render("▸ ")
	}

	name := fmt.Sprintf("%-28s", c.Name)
	code := r.styles.Code.Render(fmt.Sprintf("%-4s", c.Code))

	parts := []string{name, code}
	if state.ShowRegion {
		parts = append(parts, r.styles.Region.Render(fmt.Sprintf("%-12s", c.Region)))
	}
	if state.ShowCapital {
		parts = append(parts, r.styles.Capital.Render(c.Capital))
	}

	row := prefix + strings.Join(parts, " ")

	width := state.Width
	if width <= 0 {
		width = 80
	}
	row = truncate.StringWithTail(row, uint(width-4), "…")

	if selected {
		return r.styles.CursorBg.Render(row)
	}
	return row
}

// renderStatusLine summarizes what is visible
func (r *Renderer) renderStatusLine(state ViewState) string {
	if state.Total == 0 {
		return ""
	}

	if state.InSearch {
		return r.styles.Status.Render(fmt.Sprintf("%s of %s countries match %q",
			humanize.Comma(int64(state.Count)), humanize.Comma(int64(state.Total)), state.Query))
	}

	status := fmt.Sprintf("%s of %s countries loaded",
		humanize.Comma(int64(state.Count)), humanize.Comma(int64(state.Total)))
	if state.Count < state.Total {
		status += " · scroll for more"
	}
	return r.styles.Status.Render(status)
}

// renderHelp renders the help screen
func (r *Renderer) renderHelp() string {
	var help strings.Builder

	help.WriteString(r.styles.Title.Render("Atlas Help"))
	help.WriteString("\n")

	help.WriteString(r.styles.SectionHead.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.Key.Render("↑/↓, j/k"), r.styles.Desc.Render("Move up/down")))
	help.WriteString(fmt.Sprintf("  %s   %s\n", r.styles.Key.Render("PgUp/PgDn"), r.styles.Desc.Render("Page up/down")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", r.styles.Key.Render("g/G"), r.styles.Desc.Render("Go to top/bottom")))
	help.WriteString("\n")

	help.WriteString(r.styles.SectionHead.Render("Search"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s          %s\n", r.styles.Key.Render("/"), r.styles.Desc.Render("Search countries")))
	help.WriteString(fmt.Sprintf("  %s        %s\n", r.styles.Key.Render("Esc"), r.styles.Desc.Render("Clear search, back to browsing")))
	help.WriteString("\n")

	help.WriteString(r.styles.SectionHead.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s      %s\n", r.styles.Key.Render("Enter"), r.styles.Desc.Render("View country details")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", r.styles.Key.Render("r"), r.styles.Desc.Render("Retry dataset fetch")))
	help.WriteString(fmt.Sprintf("  %s          %s\n", r.styles.Key.Render("?"), r.styles.Desc.Render("Toggle this help")))
	help.WriteString(fmt.Sprintf("  %s          %s", r.styles.Key.Render("q"), r.styles.Desc.Render("Quit")))

	return help.String()
}
