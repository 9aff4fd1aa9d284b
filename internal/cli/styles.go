// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// CLI style colors using lipgloss
var (
	// StylePhaseRed styles red-phase output
	StylePhaseRed = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// StylePhaseGreen styles green-phase output
	StylePhaseGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

	// StylePhaseRefactor styles refactor-phase output
	StylePhaseRefactor = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	// StyleError styles error indicators
	StyleError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// StyleMuted styles secondary/less important text
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// StyleBold styles emphasized text
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// RenderPhase renders a phase name in its conventional color.
func RenderPhase(phase string) string {
	switch phase {
	case "red":
		return StylePhaseRed.Render(phase)
	case "green":
		return StylePhaseGreen.Render(phase)
	case "refactor":
		return StylePhaseRefactor.Render(phase)
	default:
		return StyleMuted.Render(phase)
	}
}

// RenderError renders an error message with a red marker.
func RenderError(msg string) string {
	return StyleError.Render("✗") + " " + msg
}

// RenderScore renders a label: value pair with a muted label.
func RenderScore(label, value string) string {
	return StyleMuted.Render(label+":") + " " + value
}
