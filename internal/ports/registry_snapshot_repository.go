package ports

import (
	"context"
	"time"

	"github.com/bnema/pillctl/internal/domain"
)

// RegistrySnapshot is the locally cached registry, including edits that have
// not been sent to the store yet.
type RegistrySnapshot struct {
	Pills       []domain.Pill
	Dirty       []domain.BoxNumber
	RefreshedAt time.Time
}

type RegistrySnapshotRepository interface {
	// Load returns found=false when no snapshot has been saved yet.
	Load(ctx context.Context) (snapshot RegistrySnapshot, found bool, err error)
	Save(ctx context.Context, snapshot RegistrySnapshot) error
}
