package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/bnema/pillctl/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	RegistryPathKey     = "registry.path"
	registryFileMode    = 0o600
	registryDirMode     = 0o700
	registryConfigDir   = ".pillctl"
	registryConfigFile  = "registry.toml"
	registryTempPattern = ".registry-*.toml.tmp"
)

// RegistryRepository keeps the last fetched registry and any unsaved
// schedule edits in a TOML file between invocations.
type RegistryRepository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RegistrySnapshotRepository = (*RegistryRepository)(nil)

func NewRegistryRepository(cfg *viper.Viper) (*RegistryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(RegistryPathKey, filepath.Join(homeDir, registryConfigDir, registryConfigFile))

	path := cfg.GetString(RegistryPathKey)
	if path == "" {
		return nil, errors.New("registry path is empty")
	}
	path, err = normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &RegistryRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *RegistryRepository) Path() string {
	return r.path
}

func (r *RegistryRepository) Load(ctx context.Context) (ports.RegistrySnapshot, bool, error) {
	if err := ctx.Err(); err != nil {
		return ports.RegistrySnapshot{}, false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil || !found {
		return ports.RegistrySnapshot{}, false, err
	}

	return fromSchema(file), true, nil
}

func (r *RegistryRepository) Save(ctx context.Context, snapshot ports.RegistrySnapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(toSchema(snapshot))
}

func (r *RegistryRepository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read registry file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode registry file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func (r *RegistryRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), registryDirMode); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode registry file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), registryTempPattern)
	if err != nil {
		return fmt.Errorf("create temp registry file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp registry file: %w", err)
	}

	if err := tempFile.Chmod(registryFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp registry file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp registry file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace registry file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve registry path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(snapshot ports.RegistrySnapshot) fileSchema {
	dirty := make(map[domain.BoxNumber]struct{}, len(snapshot.Dirty))
	for _, box := range snapshot.Dirty {
		dirty[box] = struct{}{}
	}

	pills := make([]pillSchema, 0, len(snapshot.Pills))
	for _, pill := range snapshot.Pills {
		_, isDirty := dirty[pill.BoxNumber]
		pills = append(pills, pillSchema{
			Box:      int(pill.BoxNumber),
			Name:     pill.Name,
			Dirty:    isDirty,
			Schedule: toEntrySchemas(pill.Schedule),
		})
	}

	return fileSchema{
		Version:     currentSchemaVersion,
		RefreshedAt: formatTime(snapshot.RefreshedAt),
		Pills:       pills,
	}
}

// toEntrySchemas writes every catalog window, disabled ones included, so a
// dose count survives being switched off.
func toEntrySchemas(schedule domain.Schedule) []entrySchema {
	dense := schedule.Clone()
	entries := make([]entrySchema, 0, len(dense))
	for _, window := range domain.Windows() {
		entry := dense[window.Key]
		entries = append(entries, entrySchema{
			Window:    window.Key,
			Enabled:   entry.Enabled,
			DoseCount: entry.DoseCount,
		})
	}
	return entries
}

func fromSchema(file fileSchema) ports.RegistrySnapshot {
	snapshot := ports.RegistrySnapshot{
		Pills:       make([]domain.Pill, 0, len(file.Pills)),
		RefreshedAt: parseTime(file.RefreshedAt),
	}

	for _, entry := range file.Pills {
		schedule := domain.Schedule{}
		for _, window := range entry.Schedule {
			schedule[window.Window] = domain.ScheduleEntry{Enabled: window.Enabled, DoseCount: window.DoseCount}
		}

		box := domain.BoxNumber(entry.Box)
		snapshot.Pills = append(snapshot.Pills, domain.Pill{
			BoxNumber: box,
			Name:      entry.Name,
			Schedule:  schedule.Clone(),
		})
		if entry.Dirty {
			snapshot.Dirty = append(snapshot.Dirty, box)
		}
	}

	return snapshot
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
