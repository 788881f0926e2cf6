package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	renderpills "github.com/bnema/pillctl/internal/adapters/render/pills"
	"github.com/bnema/pillctl/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) bool {
	switch format {
	case outputText, outputJSON, outputYAML:
		return true
	default:
		return false
	}
}

type windowOutput struct {
	Window    string `json:"window" yaml:"window"`
	Label     string `json:"label" yaml:"label"`
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	DoseCount int    `json:"doseCount" yaml:"dose_count"`
}

type pillOutput struct {
	BoxNumber int            `json:"boxNumber" yaml:"box_number"`
	Name      string         `json:"name" yaml:"name"`
	Unsaved   bool           `json:"unsaved" yaml:"unsaved"`
	Schedule  []windowOutput `json:"schedule" yaml:"schedule"`
}

type registryOutput struct {
	Pills       []pillOutput `json:"pills" yaml:"pills"`
	FreeBoxes   []int        `json:"freeBoxes" yaml:"free_boxes"`
	SlotCount   int          `json:"slotCount" yaml:"slot_count"`
	RefreshedAt *time.Time   `json:"refreshedAt,omitempty" yaml:"refreshed_at,omitempty"`
}

type dispenserOutput struct {
	ServerInfo      map[string]any `json:"serverInfo,omitempty" yaml:"server_info,omitempty"`
	ServerInfoError string         `json:"serverInfoError,omitempty" yaml:"server_info_error,omitempty"`
	DueNow          []any          `json:"dueNow" yaml:"due_now"`
	DueNowError     string         `json:"dueNowError,omitempty" yaml:"due_now_error,omitempty"`
}

// writeOutput encodes value for json and yaml, and prints text() otherwise.
func writeOutput(cmd *cobra.Command, format string, value any, text func() (string, error)) error {
	out := cmd.OutOrStdout()

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case outputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	default:
		rendered, err := text()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	}
}

func writeRegistry(cmd *cobra.Command, app *app) error {
	view := registryView(app)
	return writeOutput(cmd, app.output, toRegistryOutput(view), func() (string, error) {
		rendered, err := app.registryRender(view, renderpills.RenderOptions{
			Now:        app.now(),
			StaleAfter: app.staleAfter,
		})
		if err != nil {
			return "", fmt.Errorf("render pills: %w", err)
		}
		return rendered, nil
	})
}

func writePill(cmd *cobra.Command, app *app, pill domain.Pill) error {
	unsaved := app.registry.Dirty(pill.BoxNumber)
	return writeOutput(cmd, app.output, toPillOutput(pill, unsaved), func() (string, error) {
		rendered, err := app.pillRender(pill, unsaved)
		if err != nil {
			return "", fmt.Errorf("render pill: %w", err)
		}
		return rendered, nil
	})
}

func writeDispenser(cmd *cobra.Command, app *app) error {
	snapshot := app.dispenser.Snapshot()
	return writeOutput(cmd, app.output, toDispenserOutput(snapshot), func() (string, error) {
		rendered, err := app.dispenserRender(snapshot, renderpills.RenderOptions{Now: app.now()})
		if err != nil {
			return "", fmt.Errorf("render dispenser: %w", err)
		}
		return rendered, nil
	})
}

func registryView(app *app) renderpills.RegistryView {
	pills := app.registry.Pills()
	dirty := make(map[domain.BoxNumber]bool, len(pills))
	for _, pill := range pills {
		dirty[pill.BoxNumber] = app.registry.Dirty(pill.BoxNumber)
	}

	return renderpills.RegistryView{
		Pills:       pills,
		Dirty:       dirty,
		FreeBoxes:   app.registry.FreeBoxes(),
		SlotCount:   app.registry.SlotCount(),
		RefreshedAt: app.registry.RefreshedAt(),
	}
}

func toRegistryOutput(view renderpills.RegistryView) registryOutput {
	out := registryOutput{
		Pills:     make([]pillOutput, 0, len(view.Pills)),
		FreeBoxes: make([]int, 0, len(view.FreeBoxes)),
		SlotCount: view.SlotCount,
	}
	for _, pill := range view.Pills {
		out.Pills = append(out.Pills, toPillOutput(pill, view.Dirty[pill.BoxNumber]))
	}
	for _, box := range view.FreeBoxes {
		out.FreeBoxes = append(out.FreeBoxes, int(box))
	}
	if !view.RefreshedAt.IsZero() {
		refreshedAt := view.RefreshedAt.UTC()
		out.RefreshedAt = &refreshedAt
	}
	return out
}

func toPillOutput(pill domain.Pill, unsaved bool) pillOutput {
	out := pillOutput{
		BoxNumber: int(pill.BoxNumber),
		Name:      pill.Name,
		Unsaved:   unsaved,
		Schedule:  make([]windowOutput, 0, len(domain.WindowKeys())),
	}
	for _, window := range domain.Windows() {
		entry := pill.Schedule[window.Key]
		out.Schedule = append(out.Schedule, windowOutput{
			Window:    window.Key,
			Label:     window.Label,
			Enabled:   entry.Enabled,
			DoseCount: entry.DoseCount,
		})
	}
	return out
}

func toDispenserOutput(snapshot domain.DispenserSnapshot) dispenserOutput {
	out := dispenserOutput{
		ServerInfo:      snapshot.ServerInfo,
		ServerInfoError: snapshot.ServerInfoError,
		DueNow:          make([]any, 0, len(snapshot.DueNow)),
		DueNowError:     snapshot.DueNowError,
	}
	for _, raw := range snapshot.DueNow {
		var item any
		if err := json.Unmarshal(raw, &item); err != nil {
			item = string(raw)
		}
		out.DueNow = append(out.DueNow, item)
	}
	return out
}
