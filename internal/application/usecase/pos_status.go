package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// POSStatusService recalcula el estado persistido de los POS a partir de los
// contratos vigentes hoy. Recibe el repositorio en cada llamada para poder
// ejecutarse dentro de la transacción del caller.
type POSStatusService struct {
	log     *logger.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// NewPOSStatusService construye el servicio con reloj del sistema.
func NewPOSStatusService(log *logger.Logger, m *metrics.Metrics) *POSStatusService {
	return &POSStatusService{log: log.Component("pos_status"), metrics: m, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *POSStatusService) WithClock(now func() time.Time) *POSStatusService {
	s.now = now
	return s
}

// Today fecha civil actual según el reloj del servicio.
func (s *POSStatusService) Today() time.Time {
	return rules.DateOnly(s.now())
}

// RefreshAll recorre todos los POS, persiste los estados que cambiaron y
// devuelve el contrato vigente de cada POS en uso (pos_id -> contract_id).
func (s *POSStatusService) RefreshAll(ctx context.Context, repo repository.POSRepository) (map[string]string, error) {
	start := time.Now()
	current, err := repo.Statuses(ctx)
	if err != nil {
		return nil, err
	}
	windows, err := repo.ContractWindows(ctx, nil)
	if err != nil {
		return nil, err
	}
	today := s.Today()
	active := make(map[string]string)
	changed := make(map[string]string)
	for posID, status := range current {
		next := entity.POSStatusAvailable
		if contractID, ok := rules.ActiveContract(windows[posID], today); ok {
			active[posID] = contractID
			next = entity.POSStatusUnavailable
		}
		if next != status {
			changed[posID] = next
		}
	}
	if len(changed) > 0 {
		if err := repo.SetStatuses(ctx, changed); err != nil {
			return nil, err
		}
	}
	s.metrics.ObserveStatusRefresh(time.Since(start), len(active))
	s.log.Debug().
		Int("total", len(current)).
		Int("changed", len(changed)).
		Int("in_use", len(active)).
		Msg("estado de POS recalculado")
	return active, nil
}

// RefreshFor recalcula y persiste el estado de los POS indicados.
func (s *POSStatusService) RefreshFor(ctx context.Context, repo repository.POSRepository, posIDs []string) (map[string]string, error) {
	if len(posIDs) == 0 {
		return map[string]string{}, nil
	}
	active, err := s.ActiveContracts(ctx, repo, posIDs)
	if err != nil {
		return nil, err
	}
	statuses := make(map[string]string, len(posIDs))
	for _, id := range posIDs {
		statuses[id] = entity.POSStatusAvailable
		if _, ok := active[id]; ok {
			statuses[id] = entity.POSStatusUnavailable
		}
	}
	if err := repo.SetStatuses(ctx, statuses); err != nil {
		return nil, err
	}
	return active, nil
}

// ActiveContracts calcula el contrato vigente de los POS indicados sin persistir.
func (s *POSStatusService) ActiveContracts(ctx context.Context, repo repository.POSRepository, posIDs []string) (map[string]string, error) {
	windows, err := repo.ContractWindows(ctx, posIDs)
	if err != nil {
		return nil, err
	}
	today := s.Today()
	active := make(map[string]string)
	for _, id := range posIDs {
		if contractID, ok := rules.ActiveContract(windows[id], today); ok {
			active[id] = contractID
		}
	}
	return active, nil
}
