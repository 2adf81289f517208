package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name       string
	Base       lipgloss.Style
	Logo       lipgloss.Style
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Label      lipgloss.Style
	Required   lipgloss.Style
	Input      lipgloss.Style
	InputFocus lipgloss.Style
	InputError lipgloss.Style
	FieldError lipgloss.Style
	Banner     lipgloss.Style
	Notice     lipgloss.Style
	Button     lipgloss.Style
	ButtonBusy lipgloss.Style
	Link       lipgloss.Style
	Accent     lipgloss.Style
	Bull       lipgloss.Style
	Bear       lipgloss.Style
	Focused    lipgloss.Style
	Dim        lipgloss.Style
	Help       lipgloss.Style
}

func newTheme(name, primary, secondary, text, muted, errColor, success, bull, bear string) Theme {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	return Theme{
		Name:       name,
		Base:       lipgloss.NewStyle().Margin(1, 2),
		Logo:       lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Background(lipgloss.Color(primary)).Bold(true).Padding(0, 2),
		Title:      lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true),
		Subtitle:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color(text)),
		Required:   lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)),
		Input:      box.BorderForeground(lipgloss.Color(muted)),
		InputFocus: box.BorderForeground(lipgloss.Color(primary)),
		InputError: box.BorderForeground(lipgloss.Color(errColor)),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)),
		Banner:     lipgloss.NewStyle().Foreground(lipgloss.Color(errColor)).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color(errColor)).PaddingLeft(1),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color(success)),
		Button:     lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Background(lipgloss.Color(secondary)).Bold(true).Padding(0, 3),
		ButtonBusy: lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Background(lipgloss.Color("236")).Padding(0, 3),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color(primary)).Underline(true),
		Accent:     lipgloss.NewStyle().Foreground(lipgloss.Color(primary)).Bold(true),
		Bull:       lipgloss.NewStyle().Foreground(lipgloss.Color(bull)),
		Bear:       lipgloss.NewStyle().Foreground(lipgloss.Color(bear)),
		Focused:    lipgloss.NewStyle().Foreground(lipgloss.Color(primary)).Bold(true),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color(muted)).Italic(true),
	}
}

var Themes = map[string]Theme{
	"default":  newTheme("Default", "63", "205", "252", "240", "9", "42", "42", "203"),
	"midnight": newTheme("Midnight", "#00D2FF", "#6C5CE7", "#FFFFFF", "#8E92A3", "#F44336", "#4CAF50", "#00C896", "#FF4757"),
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// currentThemeKey is the Themes key of CurrentTheme.
var currentThemeKey = "default"

// SetTheme switches to the named theme; unknown names are ignored.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
		currentThemeKey = name
	}
	return ok
}

// ThemeKey returns the key of the active theme.
func ThemeKey() string {
	return currentThemeKey
}
