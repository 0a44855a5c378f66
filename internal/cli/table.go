// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ik5/pcmsilence/audio"
	"github.com/ik5/pcmsilence/silence"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// FormatReport renders the header lines and silence table for one file.
func FormatReport(name string, f audio.Format, silences []silence.Silence) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render(name))
	sb.WriteString("\n")
	sb.WriteString(KeyValue("Format", f))
	sb.WriteString("\n")
	sb.WriteString(KeyValue("Silences", len(silences)))
	sb.WriteString("\n")

	if len(silences) > 0 {
		sb.WriteString(FormatSilences(silences))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatSilences renders silences as a table of start, end, duration and
// inclusive byte range.
func FormatSilences(silences []silence.Silence) string {
	rows := make([][]string, 0, len(silences))
	for i, s := range silences {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Start.String(),
			s.End().String(),
			s.Duration.String(),
			fmt.Sprintf("%d-%d", s.IndexStart, s.IndexEnd),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("#", "Start", "End", "Duration", "Bytes").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.Render()
}
