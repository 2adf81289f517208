package tui

import (
	"strings"

	"github.com/akyairhashvil/rtauth/internal/config"
	"github.com/akyairhashvil/rtauth/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const ellipsis = "…"

func truncate(s string, width int) string {
	if width <= 0 || ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, ellipsis)
}

// formWidth fits the form into the terminal width.
func formWidth(termWidth int) int {
	if termWidth <= 0 {
		return config.FormWidth
	}
	return util.Clamp(termWidth-8, config.MinFormWidth, config.FormWidth)
}

func renderHeader(logo, title, subtitle string, width int) string {
	lines := []string{
		CurrentTheme.Logo.Render(logo),
		"",
		CurrentTheme.Title.Render(truncate(title, width)),
	}
	if subtitle != "" {
		lines = append(lines, CurrentTheme.Subtitle.Width(width).Render(subtitle))
	}
	return strings.Join(lines, "\n")
}

func renderBanner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	return CurrentTheme.Banner.Width(width - CurrentTheme.Banner.GetHorizontalBorderSize()).Render(msg)
}

func renderNotice(msg string, width int) string {
	if msg == "" {
		return ""
	}
	return CurrentTheme.Notice.Render(truncate(msg, width))
}

// renderButton draws the submit control, disabled with a spinner while a
// call is pending.
func renderButton(label string, busy bool, spin string) string {
	if busy {
		return CurrentTheme.ButtonBusy.Render(spin + " " + label)
	}
	return CurrentTheme.Button.Render(label)
}

func renderHelp(help string, width int) string {
	if help == "" {
		return ""
	}
	return CurrentTheme.Help.Render(truncate(help, width))
}

func renderCheckbox(checked, focused bool, label string) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	if focused {
		return CurrentTheme.Focused.Render(box) + " " + CurrentTheme.Label.Render(label)
	}
	return box + " " + CurrentTheme.Label.Render(label)
}

func placeCenter(width int, content string) string {
	if width <= 0 {
		return content
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}
