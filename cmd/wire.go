package cmd

import (
	"fmt"
	"io"
	"net/http"
	"time"

	renderpills "github.com/bnema/pillctl/internal/adapters/render/pills"
	"github.com/bnema/pillctl/internal/adapters/remote/httpstore"
	tomlrepo "github.com/bnema/pillctl/internal/adapters/repo/toml"
	"github.com/bnema/pillctl/internal/application"
	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/logger"
	"github.com/bnema/pillctl/internal/ports"
	"github.com/bnema/pillctl/internal/version"
	"github.com/spf13/viper"
)

type app struct {
	registry        *application.Registry
	dispenser       *application.Dispenser
	registryRender  func(renderpills.RegistryView, renderpills.RenderOptions) (string, error)
	pillRender      func(domain.Pill, bool) (string, error)
	dispenserRender func(domain.DispenserSnapshot, renderpills.RenderOptions) (string, error)
	log             *logger.Logger
	output          string
	staleAfter      time.Duration
	now             func() time.Time
}

func wireApp(cfg *viper.Viper, logOutput io.Writer) (*app, error) {
	log := logger.New(cfg.GetString(logLevelKey), logOutput)

	snapshots, err := tomlrepo.NewRegistryRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire registry repository: %w", err)
	}

	store := httpstore.Client{
		BaseURL:    cfg.GetString(serverURLKey),
		HTTPClient: http.DefaultClient,
		UserAgent:  version.UserAgent(),
		Logger:     log,
	}
	clock := ports.SystemClock{}

	log.Debugw("wired app", "server", store.BaseURL, "registry", snapshots.Path())

	return &app{
		registry: application.NewRegistry(store, snapshots, application.RegistryOptions{
			SlotCount: cfg.GetInt(slotCountKey),
			Clock:     clock,
			Logger:    log,
		}),
		dispenser:       application.NewDispenser(store, clock, log),
		registryRender:  renderpills.RenderRegistry,
		pillRender:      renderpills.RenderPill,
		dispenserRender: renderpills.RenderDispenser,
		log:             log,
		output:          cfg.GetString(outputKey),
		staleAfter:      cfg.GetDuration(staleAfterKey),
		now:             clock.Now,
	}, nil
}
