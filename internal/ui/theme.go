package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the lipgloss styles for one color scheme.
type Theme struct {
	Name string

	Header     lipgloss.Style
	Title      lipgloss.Style
	ColumnHead lipgloss.Style
	Row        lipgloss.Style
	SelRow     lipgloss.Style
	Muted      lipgloss.Style
	Accent     lipgloss.Style
	Danger     lipgloss.Style
	Panel      lipgloss.Style
}

var themes = []Theme{darkTheme(), lightTheme()}

func darkTheme() Theme {
	return Theme{
		Name:       "Dark",
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("57")).Bold(true).Padding(0, 1),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		ColumnHead: lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true).Underline(true),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SelRow:     lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("57")).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
	}
}

func lightTheme() Theme {
	return Theme{
		Name:       "Light",
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true),
		ColumnHead: lipgloss.NewStyle().Foreground(lipgloss.Color("25")).Bold(true).Underline(true),
		Row:        lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		SelRow:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("25")).Bold(true),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color("162")),
		Danger:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")).Padding(0, 1),
	}
}

// GetTheme returns the theme with the given name, defaulting to the first.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, cycling.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
