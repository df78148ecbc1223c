package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación en memoria de LedgerRepository.
type LedgerRepo struct {
	s *Store
}

func (r *LedgerRepo) CreatePaperRoll(_ context.Context, p *entity.PaperRoll) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.costumers[p.CostumerID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.paperRolls[p.ID] = *p
	return nil
}

func (r *LedgerRepo) ListPaperRolls(_ context.Context, costumerID string) ([]*entity.PaperRoll, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.PaperRoll, 0)
	for _, p := range r.s.st.paperRolls {
		if p.CostumerID == costumerID {
			out = append(out, ptr(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderedDate.After(out[j].OrderedDate) })
	return out, nil
}

func (r *LedgerRepo) DeletePaperRoll(_ context.Context, costumerID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.paperRolls[id]
	if !ok || p.CostumerID != costumerID {
		return domain.ErrNotFound
	}
	delete(r.s.st.paperRolls, id)
	return nil
}

func (r *LedgerRepo) CreatePayment(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contracts[p.ContractID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.payments[p.ID] = *p
	return nil
}

func (r *LedgerRepo) ListPayments(_ context.Context, contractID string) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Payment, 0)
	for _, p := range r.s.st.payments {
		if p.ContractID == contractID {
			out = append(out, ptr(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *LedgerRepo) DeletePayment(_ context.Context, contractID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.payments[id]
	if !ok || p.ContractID != contractID {
		return domain.ErrNotFound
	}
	delete(r.s.st.payments, id)
	return nil
}

func (r *LedgerRepo) CreateMIDRevenue(_ context.Context, m *entity.MIDRevenue) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contracts[m.ContractID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.mids[m.ID] = *m
	return nil
}

func (r *LedgerRepo) ListMIDRevenues(_ context.Context, contractID string) ([]*entity.MIDRevenue, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.MIDRevenue, 0)
	for _, m := range r.s.st.mids {
		if m.ContractID == contractID {
			out = append(out, ptr(m))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *LedgerRepo) DeleteMIDRevenue(_ context.Context, contractID, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	m, ok := r.s.st.mids[id]
	if !ok || m.ContractID != contractID {
		return domain.ErrNotFound
	}
	delete(r.s.st.mids, id)
	return nil
}
