package module

import (
	"context"

	"layoffs/internal/services/api/layoffs/domain"
	layoffssvc "layoffs/internal/services/api/layoffs/service"
)

// Ports exposes the dataset status to other modules
func (m *Module) Ports() any { return adaptDatasetPort{svc: m.svc} }

type adaptDatasetPort struct{ svc layoffssvc.Service }

// Dataset reports the load state of the record store
func (a adaptDatasetPort) Dataset(ctx context.Context) domain.DatasetStatus {
	return a.svc.Dataset(ctx)
}

var _ domain.DatasetPort = adaptDatasetPort{}
