package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
)

var (
	_ repository.MarketingGoalRepository = (*MarketingGoalRepo)(nil)
	_ repository.CostumerRepository      = (*CostumerRepo)(nil)
	_ repository.ContractRepository      = (*ContractRepo)(nil)
)

// ─── MarketingGoal ────────────────────────────────────────────────────────────

// MarketingGoalRepo implementación en memoria de MarketingGoalRepository.
type MarketingGoalRepo struct {
	s *Store
}

func (r *MarketingGoalRepo) Create(_ context.Context, g *entity.MarketingGoal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.goals[g.ID] = *g
	return nil
}

func (r *MarketingGoalRepo) GetByID(_ context.Context, id string) (*entity.MarketingGoal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g, ok := r.s.st.goals[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *MarketingGoalRepo) List(_ context.Context, status string) ([]*entity.MarketingGoal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.MarketingGoal, 0)
	for _, g := range r.s.st.goals {
		if status != "" && g.Status != status {
			continue
		}
		out = append(out, ptr(g))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MarketingGoalRepo) Update(_ context.Context, g *entity.MarketingGoal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.goals[g.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.goals[g.ID] = *g
	return nil
}

func (r *MarketingGoalRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.goals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.st.goals, id)
	return nil
}

// ─── Costumer ─────────────────────────────────────────────────────────────────

// CostumerRepo implementación en memoria de CostumerRepository.
type CostumerRepo struct {
	s *Store
}

func (st *state) checkCountryRefs(c *entity.Costumer) error {
	for _, ref := range []*string{c.CountryID, c.RegisteredCountryID, c.DirectorNationalityID, c.PartnerNationalityID} {
		if ref == nil {
			continue
		}
		if _, ok := st.countries[*ref]; !ok {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *CostumerRepo) Create(_ context.Context, c *entity.Costumer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.st.checkCountryRefs(c); err != nil {
		return err
	}
	r.s.st.costumers[c.ID] = *c
	return nil
}

func (r *CostumerRepo) GetByID(_ context.Context, id string) (*entity.Costumer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.costumers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CostumerRepo) Update(_ context.Context, c *entity.Costumer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.st.costumers[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if err := r.s.st.checkCountryRefs(c); err != nil {
		return err
	}
	// los documentos solo cambian por UpdateDocuments
	c.Documents = existing.Documents
	r.s.st.costumers[c.ID] = *c
	return nil
}

func (r *CostumerRepo) ListMini(_ context.Context) ([]repository.CostumerMini, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]repository.CostumerMini, 0, len(r.s.st.costumers))
	for _, c := range r.s.st.costumers {
		out = append(out, repository.CostumerMini{ID: c.ID, LegalName: c.LegalName, TradingName: c.TradingName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LegalName < out[j].LegalName })
	return out, nil
}

func (r *CostumerRepo) UpdateDocuments(_ context.Context, id string, docs entity.CostumerDocuments) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.costumers[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Documents = docs
	r.s.st.costumers[c.ID] = c
	return nil
}

func (r *CostumerRepo) AddTradingAddress(_ context.Context, a *entity.TradingAddress) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.costumers[a.CostumerID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.addresses[a.CostumerID] = append(r.s.st.addresses[a.CostumerID], *a)
	return nil
}

func (r *CostumerRepo) ListTradingAddresses(_ context.Context, costumerID string) ([]*entity.TradingAddress, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := r.s.st.addresses[costumerID]
	out := make([]*entity.TradingAddress, 0, len(list))
	for _, a := range list {
		out = append(out, ptr(a))
	}
	return out, nil
}

// ─── Contract ─────────────────────────────────────────────────────────────────

// ContractRepo implementación en memoria de ContractRepository.
type ContractRepo struct {
	s *Store
}

func (r *ContractRepo) Create(_ context.Context, c *entity.Contract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.costumers[c.CostumerID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.contracts[c.ID] = *c
	return nil
}

func (r *ContractRepo) GetByID(_ context.Context, id string) (*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.contracts[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *ContractRepo) Update(_ context.Context, c *entity.Contract) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.st.contracts[c.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.costumers[c.CostumerID]; !ok {
		return domain.ErrNotFound
	}
	c.Documents = existing.Documents
	r.s.st.contracts[c.ID] = *c
	return nil
}

func (r *ContractRepo) List(_ context.Context, f repository.ContractFilter) ([]*entity.Contract, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Contract, 0)
	for _, c := range r.s.st.contracts {
		if f.Acquirer != "" && c.Acquirer != f.Acquirer {
			continue
		}
		if f.CostumerID != "" && c.CostumerID != f.CostumerID {
			continue
		}
		if f.ActiveOn != nil {
			w := rules.ContractWindow{LiveDate: c.LiveDate, EndDate: c.EndDate}
			if !w.Covers(*f.ActiveOn) {
				continue
			}
		}
		out = append(out, ptr(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ContractRepo) UpdateDocuments(_ context.Context, id string, docs entity.ContractDocuments) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.contracts[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.Documents = docs
	r.s.st.contracts[c.ID] = c
	return nil
}

func (r *ContractRepo) AddPOS(_ context.Context, l *entity.ContractPOS) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contracts[l.ContractID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.poses[l.POSID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.contractPOS[l.ID] = *l
	return nil
}

func (r *ContractRepo) ListPOS(_ context.Context, contractID string) ([]*entity.ContractPOS, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ContractPOS, 0)
	for _, l := range r.s.st.contractPOS {
		if l.ContractID == contractID {
			out = append(out, ptr(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ContractRepo) GetPOSLink(_ context.Context, id string) (*entity.ContractPOS, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.st.contractPOS[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *ContractRepo) UpdatePOSLink(_ context.Context, l *entity.ContractPOS) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contractPOS[l.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.poses[l.POSID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.contractPOS[l.ID] = *l
	return nil
}

func (r *ContractRepo) AddService(_ context.Context, l *entity.ContractService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contracts[l.ContractID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.services[l.ServiceID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.contractServices[l.ID] = *l
	return nil
}

func (r *ContractRepo) ListServices(_ context.Context, contractID string) ([]*entity.ContractService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.ContractService, 0)
	for _, l := range r.s.st.contractServices {
		if l.ContractID == contractID {
			out = append(out, ptr(l))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ContractRepo) GetServiceLink(_ context.Context, id string) (*entity.ContractService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	l, ok := r.s.st.contractServices[id]
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *ContractRepo) UpdateServiceLink(_ context.Context, l *entity.ContractService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.contractServices[l.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.services[l.ServiceID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.contractServices[l.ID] = *l
	return nil
}
