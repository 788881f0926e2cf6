package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int          `toml:"version"`
	RefreshedAt string       `toml:"refreshed_at,omitempty"`
	Pills       []pillSchema `toml:"pills"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported registry schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type pillSchema struct {
	Box      int           `toml:"box"`
	Name     string        `toml:"name"`
	Dirty    bool          `toml:"dirty,omitempty"`
	Schedule []entrySchema `toml:"schedule"`
}

type entrySchema struct {
	Window    string `toml:"window"`
	Enabled   bool   `toml:"enabled"`
	DoseCount int    `toml:"dose_count"`
}
