// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/hostenv/lib/distro"
)

var familyColors = map[distro.Family][2]string{
	distro.FamilyRedHat:  {"15", "160"},
	distro.FamilyDebian:  {"15", "125"},
	distro.FamilyUnknown: {"250", "238"},
}

// Styler renders terminal decorations for one output stream. A disabled
// Styler returns plain text, so piped output stays comparable by
// scripts.
type Styler struct {
	renderer *lipgloss.Renderer
	enabled  bool
}

// NewStyler returns a Styler that decorates only when w is a terminal,
// using the color profile lipgloss detects for it.
func NewStyler(w io.Writer) *Styler {
	if !IsTerminal(w) {
		return &Styler{}
	}
	return &Styler{renderer: lipgloss.NewRenderer(w), enabled: true}
}

// NewStylerWithProfile returns a Styler with a fixed color profile,
// bypassing terminal detection. termenv.Ascii disables decoration.
func NewStylerWithProfile(w io.Writer, profile termenv.Profile) *Styler {
	// SetColorProfile is required: Renderer.ColorProfile re-detects from
	// the environment unless a profile was set explicitly.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &Styler{renderer: renderer, enabled: profile != termenv.Ascii}
}

// Enabled reports whether the Styler decorates its output.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// FamilyBadge renders the family name, as a colored badge when enabled.
func (s *Styler) FamilyBadge(family distro.Family) string {
	if !s.enabled {
		return family.String()
	}
	colors := familyColors[family]
	return s.renderer.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.Color(colors[0])).
		Background(lipgloss.Color(colors[1])).
		Render(family.String())
}

// Flag renders a boolean indicator: green when true, faint when false.
func (s *Styler) Flag(value bool) string {
	text := "false"
	if value {
		text = "true"
	}
	if !s.enabled {
		return text
	}
	if value {
		return s.renderer.NewStyle().Foreground(lipgloss.Color("10")).Render(text)
	}
	return s.renderer.NewStyle().Faint(true).Render(text)
}

// HighlightJSON returns data with JSON syntax highlighting when enabled,
// or data unchanged otherwise.
func (s *Styler) HighlightJSON(data []byte) ([]byte, error) {
	if !s.enabled {
		return data, nil
	}
	formatter := "terminal256"
	if s.renderer.ColorProfile() == termenv.TrueColor {
		formatter = "terminal16m"
	}
	var highlighted bytes.Buffer
	if err := quick.Highlight(&highlighted, string(data), "json", formatter, "monokai"); err != nil {
		return nil, err
	}
	return highlighted.Bytes(), nil
}
