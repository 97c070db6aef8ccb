package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/logue/drop-compress-image/internal/locale"
	"github.com/logue/drop-compress-image/internal/notify"
	"github.com/logue/drop-compress-image/internal/platform"
)

// Catalog presentation colors as terminal colors
var accentColors = map[string]lipgloss.Color{
	"blue":    lipgloss.Color("#2196F3"),
	"red":     lipgloss.Color("#F44336"),
	"orange":  lipgloss.Color("#FF9800"),
	"primary": lipgloss.Color("#1976D2"),
}

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	dim     lipgloss.Style
	url     lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	failure lipgloss.Style
	box     lipgloss.Style
}

// newStyles binds styles to w so color is only emitted on terminals.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("#4ECDC4")),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#6C757D")),
		url:     r.NewStyle().Underline(true),
		success: r.NewStyle().Foreground(lipgloss.Color("#95E1A3")),
		warning: r.NewStyle().Foreground(lipgloss.Color("#FFE66D")),
		failure: r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

func accent(name string) lipgloss.Color {
	if c, ok := accentColors[name]; ok {
		return c
	}
	return accentColors["primary"]
}

func renderLocale(w io.Writer, signal string, info locale.Info) string {
	s := newStyles(w)
	if signal == "" {
		signal = "(empty)"
	}
	rows := []string{
		s.label.Render("signal  ") + signal,
		s.label.Render("locale  ") + s.title.Render(info.Code.String()),
		s.label.Render("label   ") + info.Label,
		s.label.Render("iso     ") + info.ISO,
		s.label.Render("tag     ") + info.Tag.String(),
	}
	return strings.Join(rows, "\n")
}

func renderDownload(w io.Writer, d platform.Descriptor, primary platform.Target, alternatives []platform.Target, otherTitle string) string {
	s := newStyles(w)

	lines := []string{
		s.title.Foreground(accent(primary.IconColor)).Render(primary.Label),
	}
	if primary.Subtitle != "" {
		lines = append(lines, s.dim.Render(primary.Subtitle))
	}
	lines = append(lines, s.url.Render(primary.URL))

	if len(alternatives) > 0 {
		lines = append(lines, "", s.label.Render(otherTitle))
		for _, t := range alternatives {
			lines = append(lines, fmt.Sprintf("  %s  %s", t.Subtitle, s.dim.Render(t.URL)))
		}
	}

	header := s.dim.Render("platform " + d.String())
	return header + "\n" + s.box.BorderForeground(accent(primary.IconColor)).Render(strings.Join(lines, "\n"))
}

func renderTargets(w io.Writer, targets []platform.Target) string {
	s := newStyles(w)
	lines := make([]string, 0, len(targets))
	for _, t := range targets {
		name := fmt.Sprintf("%-7s %-9s %-8s", t.OS, t.Arch, t.Format)
		lines = append(lines, s.title.Foreground(accent(t.IconColor)).Render(name)+" "+t.URL)
	}
	return strings.Join(lines, "\n")
}

func renderResult(w io.Writer, res notify.Result) string {
	s := newStyles(w)

	var outcome string
	switch res.Outcome {
	case notify.OutcomeDelivered:
		outcome = s.success.Render(string(res.Outcome))
	case notify.OutcomeDenied:
		outcome = s.warning.Render(string(res.Outcome))
	default:
		outcome = s.failure.Render(string(res.Outcome))
	}

	rows := []string{
		s.label.Render("id          ") + res.ID,
		s.label.Render("outcome     ") + outcome,
		s.label.Render("permission  ") + string(res.Permission),
	}
	if res.Err != nil {
		rows = append(rows, s.label.Render("error       ")+s.failure.Render(res.Err.Error()))
	}
	return strings.Join(rows, "\n")
}
