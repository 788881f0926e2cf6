package ports

import (
	"context"

	"github.com/bnema/pillctl/internal/domain"
)

// RemotePill is a pill as listed by the store, schedule still in sparse form.
type RemotePill struct {
	BoxNumber domain.BoxNumber     `json:"boxNumber"`
	Name      string               `json:"name"`
	Schedule  []domain.SparseEntry `json:"schedule"`
}

type PillStore interface {
	ListPills(ctx context.Context) ([]RemotePill, error)
	AddPill(ctx context.Context, name string, box domain.BoxNumber) error
	DeletePill(ctx context.Context, box domain.BoxNumber) error
	UpdateSchedule(ctx context.Context, box domain.BoxNumber, schedule []domain.SparseEntry) error
	ServerInfo(ctx context.Context) (domain.ServerInfo, error)
	DueNow(ctx context.Context) (domain.DueNow, error)
	MarkServed(ctx context.Context) error
	UnmarkServed(ctx context.Context) error
}
