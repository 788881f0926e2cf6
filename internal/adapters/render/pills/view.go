package pills

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
}

type RegistryView struct {
	Pills       []domain.Pill
	Dirty       map[domain.BoxNumber]bool
	FreeBoxes   []domain.BoxNumber
	SlotCount   int
	RefreshedAt time.Time
}

func renderRegistry(view RegistryView, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Pill Manager"),
		s.header.Render(fmt.Sprintf("pills: %d/%d  %s", len(view.Pills), view.SlotCount, refreshedLabel(view.RefreshedAt, opts.Now))),
	}
	if isStale(view.RefreshedAt, opts) {
		lines = append(lines, s.warning.Render("[stale] run `pillctl pill list` to refresh"))
	}

	if len(view.Pills) == 0 {
		lines = append(lines, s.empty.Render("No pills registered."))
	}

	for _, pill := range view.Pills {
		lines = append(lines, s.section.Render(renderPill(pill, view.Dirty[pill.BoxNumber], s)))
	}

	lines = append(lines, s.section.Render(s.header.Render("free boxes: "+formatBoxes(view.FreeBoxes))))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPill(pill domain.Pill, dirty bool, s styles) string {
	title := s.pill.Render(fmt.Sprintf("Box %d: %s", pill.BoxNumber, pill.Label()))
	if dirty {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", s.warning.Render("[unsaved]"))
	}

	parts := []string{title}
	for _, window := range domain.Windows() {
		parts = append(parts, windowLine(window, pill.Schedule[window.Key], s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func windowLine(window domain.TimeWindow, entry domain.ScheduleEntry, s styles) string {
	if !entry.Enabled {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.windowOff.Render("  [ ] "+window.Key),
			" ",
			s.windowMeta.Render("("+window.Label+")"),
		)
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.windowOn.Render("  [x] "+window.Key),
		" ",
		s.windowMeta.Render("("+window.Label+")"),
		" ",
		s.dose.Render(fmt.Sprintf("x%d", entry.DoseCount)),
	)
}

func renderDispenser(snapshot domain.DispenserSnapshot, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("Server Information")}
	switch {
	case snapshot.ServerInfoError != "":
		lines = append(lines, s.errorText.Render(snapshot.ServerInfoError))
	case snapshot.ServerInfo == nil:
		lines = append(lines, s.empty.Render("Not fetched."))
	default:
		lines = append(lines, s.jsonBody.Render(prettyJSON(snapshot.ServerInfo)))
	}

	lines = append(lines, s.section.Render(s.title.Render("Pills for current time range")))
	switch {
	case snapshot.DueNowError != "":
		lines = append(lines, s.errorText.Render(snapshot.DueNowError))
	case len(snapshot.DueNow) == 0:
		lines = append(lines, s.empty.Render("Nothing due right now."))
	default:
		for _, item := range snapshot.DueNow {
			lines = append(lines, s.detail.Render("- "+compactJSON(item)))
		}
	}

	if !snapshot.FetchedAt.IsZero() {
		lines = append(lines, s.section.Render(s.header.Render(refreshedLabel(snapshot.FetchedAt, opts.Now))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func prettyJSON(value any) string {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(encoded)
}

func compactJSON(raw json.RawMessage) string {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return string(raw)
	}
	if text, ok := decoded.(string); ok {
		return text
	}

	encoded, err := json.Marshal(decoded)
	if err != nil {
		return string(raw)
	}
	return string(encoded)
}

func formatBoxes(boxes []domain.BoxNumber) string {
	if len(boxes) == 0 {
		return "none"
	}

	parts := make([]string, 0, len(boxes))
	for _, box := range boxes {
		parts = append(parts, box.String())
	}
	return strings.Join(parts, ", ")
}

func isStale(refreshedAt time.Time, opts RenderOptions) bool {
	if opts.Now.IsZero() || opts.StaleAfter <= 0 || refreshedAt.IsZero() {
		return false
	}
	return opts.Now.Sub(refreshedAt) > opts.StaleAfter
}

func refreshedLabel(at, now time.Time) string {
	if at.IsZero() {
		return "never refreshed"
	}
	if now.IsZero() {
		return "refreshed " + at.Format(time.RFC3339)
	}

	elapsed := now.Sub(at)
	if elapsed < time.Minute {
		return "refreshed just now"
	}
	if elapsed < time.Hour {
		return "refreshed " + plural(int(math.Floor(elapsed.Minutes())), "minute") + " ago"
	}
	if elapsed < 24*time.Hour {
		return "refreshed " + plural(int(math.Floor(elapsed.Hours())), "hour") + " ago"
	}

	return "refreshed " + at.Format("15:04 on 02 Jan")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
