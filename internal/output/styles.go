package output

import "github.com/charmbracelet/lipgloss"

var (
	// dimStyle for paths and hints
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// errorStyle for failures
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// sectionStyle for section names in the nav tree
	sectionStyle = lipgloss.NewStyle().
			Bold(true)

	// markerStyle for the self-index marker
	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// addedStyle and removedStyle for diff lines
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

// Styler applies terminal styles, or nothing if escape sequences are not wanted.
type Styler bool

func (s Styler) render(style lipgloss.Style, text string) string {
	if !s {
		return text
	}
	return style.Render(text)
}

func (s Styler) Dim(text string) string {
	return s.render(dimStyle, text)
}

func (s Styler) Error(text string) string {
	return s.render(errorStyle, text)
}

func (s Styler) Section(text string) string {
	return s.render(sectionStyle, text)
}

func (s Styler) Marker(text string) string {
	return s.render(markerStyle, text)
}
