package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stoker/internal/state"
	"github.com/five82/stoker/internal/stokercloud"
)

// renderHeader renders the two status lines above the readings.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var first string
	if m.snapshot.HasStatus() {
		first = m.renderStatusLine(styles, bg)
	} else {
		first = m.renderConnectingLine(styles, bg)
	}
	return styles.Header.Width(m.width).Render(first) + "\n" +
		styles.Header.Width(m.width).Render(m.renderInfoLine(styles, bg))
}

func (m Model) renderConnectingLine(styles Styles, bg BgStyle) string {
	sep := bg.Spaces(2)
	if m.snapshot.LastError != nil {
		return bg.Join([]string{
			bg.Render("stoker", styles.Logo),
			bg.Render("STOKERCLOUD "+classifyConnectionError(m.snapshot.LastError), styles.DangerText),
			bg.Render("Retrying...", styles.WarningText.Bold(true)),
		}, "  ")
	}
	return bg.Render("stoker", styles.Logo) + sep +
		bg.Render("Connecting to StokerCloud...", styles.WarningText.Bold(true))
}

func (m Model) renderStatusLine(styles Styles, bg BgStyle) string {
	st := m.snapshot.Status
	parts := []string{bg.Render("stoker", styles.Logo)}

	if serial, err := st.SerialNumber(); err == nil {
		parts = append(parts, bg.Render("#"+serial, styles.MutedText))
	}

	if controller, err := st.State(); err == nil {
		badge := styles.StateStyle(stateCategory(controller)).Render(controller.Name())
		parts = append(parts, badge+bg.Space()+bg.Render(controller.String(), styles.MutedText))
	} else {
		parts = append(parts, styles.StateStyle(categoryUnknown).Render(stateLabel(err)))
	}

	if running, err := st.Running(); err == nil {
		if running == stokercloud.On {
			parts = append(parts, bg.Render("● RUNNING", styles.SuccessText))
		} else {
			parts = append(parts, bg.Render("● IDLE", styles.MutedText))
		}
	}

	if alarm, err := st.Alarm(); err == nil && alarm == stokercloud.On {
		parts = append(parts, bg.Render("ALARM", styles.DangerText))
	}

	if clock, err := st.Clock(); err == nil {
		parts = append(parts, bg.Render("Clock:", styles.MutedText)+bg.Space()+bg.Render(clock, styles.Text))
	}

	return bg.Join(parts, "  ")
}

func (m Model) renderInfoLine(styles Styles, bg BgStyle) string {
	var parts []string

	if !m.snapshot.LastUpdated.IsZero() {
		parts = append(parts, bg.Render("Updated", styles.MutedText)+bg.Space()+
			bg.Render(m.snapshot.LastUpdated.Format("15:04:05"), styles.Text))
	}
	if m.refreshing {
		parts = append(parts, bg.Render("Refreshing...", styles.InfoText))
	}
	if m.snapshot.IsOffline() {
		parts = append(parts, bg.Render("OFFLINE", styles.DangerText))
	}
	if err := m.snapshot.LastError; err != nil {
		parts = append(parts, bg.Render(truncateMiddle(err.Error(), max(m.width/2, 20)), styles.WarningText))
		if m.logPath != "" {
			parts = append(parts, bg.Render("logs", styles.FaintText)+bg.Space()+
				bg.Render(truncateMiddle(m.logPath, 40), styles.MutedText))
		}
	} else if m.refreshErr != nil {
		parts = append(parts, bg.Render("refresh: "+truncateMiddle(m.refreshErr.Error(), 40), styles.WarningText))
	}
	if len(parts) == 0 {
		return bg.Render("Waiting for first update", styles.MutedText)
	}
	return bg.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	return styles.Footer.Width(m.width).Render(m.help.ShortHelpView(m.keys.ShortHelp()))
}

func stateLabel(err error) string {
	var unknown *stokercloud.UnknownStateError
	if errors.As(err, &unknown) {
		return "state " + unknown.Code
	}
	return "state n/a"
}

// classifyConnectionError turns a poll error into a short header label.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, stokercloud.ErrNotConnected):
		return "BOILER OFFLINE"
	case errors.Is(err, stokercloud.ErrTokenInvalid):
		return "LOGIN REJECTED"
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "UNREACHABLE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderReadings renders the grouped reading catalog for the viewport.
func (m Model) renderReadings() string {
	styles := m.theme.Styles()
	if len(m.snapshot.Readings) == 0 {
		return styles.MutedText.Render("No readings yet.")
	}

	labelWidth := 0
	for _, r := range m.snapshot.Readings {
		labelWidth = max(labelWidth, lipgloss.Width(r.Label))
	}
	labelStyle := styles.MutedText.Width(labelWidth + 2)

	var b strings.Builder
	for i, group := range state.Groups() {
		var lines []string
		for _, r := range m.snapshot.Readings {
			if r.Group != group {
				continue
			}
			value := styles.Text.Render(r.Display())
			if r.Err != nil {
				value = styles.FaintText.Render(r.Display())
			}
			lines = append(lines, "  "+labelStyle.Render(r.Label)+value)
		}
		if len(lines) == 0 {
			continue
		}
		if i > 0 && b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.GroupTitle.Render(group))
		b.WriteString("\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
