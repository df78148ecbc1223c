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
	_ repository.CountryRepository        = (*CountryRepo)(nil)
	_ repository.POSCompanyRepository     = (*POSCompanyRepo)(nil)
	_ repository.PosModelRepository       = (*PosModelRepo)(nil)
	_ repository.POSRepository            = (*POSRepo)(nil)
	_ repository.VirtualServiceRepository = (*VirtualServiceRepo)(nil)
)

// ─── Country ──────────────────────────────────────────────────────────────────

// CountryRepo implementación en memoria de CountryRepository.
type CountryRepo struct {
	s *Store
}

func (r *CountryRepo) Create(_ context.Context, c *entity.Country) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.countries {
		if existing.Name == c.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.st.countries[c.ID] = *c
	return nil
}

func (r *CountryRepo) GetByID(_ context.Context, id string) (*entity.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.countries[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CountryRepo) List(_ context.Context) ([]*entity.Country, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Country, 0, len(r.s.st.countries))
	for _, c := range r.s.st.countries {
		out = append(out, ptr(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Abbreviation == out[j].Abbreviation {
			return out[i].Name < out[j].Name
		}
		return out[i].Abbreviation < out[j].Abbreviation
	})
	return out, nil
}

// Delete borra el país; nacionalidades y países de comercios quedan en NULL.
func (r *CountryRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := &r.s.st
	if _, ok := st.countries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(st.countries, id)
	for k, p := range st.principals {
		p.NationalityID = nullIfEq(p.NationalityID, id)
		st.principals[k] = p
	}
	for k, c := range st.costumers {
		c.CountryID = nullIfEq(c.CountryID, id)
		c.RegisteredCountryID = nullIfEq(c.RegisteredCountryID, id)
		c.DirectorNationalityID = nullIfEq(c.DirectorNationalityID, id)
		c.PartnerNationalityID = nullIfEq(c.PartnerNationalityID, id)
		st.costumers[k] = c
	}
	return nil
}

func (r *CountryRepo) setCoverage(id string, fn func(bool) bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.st.countries[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	c.IsCovered = fn(c.IsCovered)
	r.s.st.countries[c.ID] = c
	return c.IsCovered, nil
}

func (r *CountryRepo) ToggleCoverage(_ context.Context, id string) (bool, error) {
	return r.setCoverage(id, func(v bool) bool { return !v })
}

func (r *CountryRepo) SetCoverage(_ context.Context, id string, value bool) (bool, error) {
	return r.setCoverage(id, func(bool) bool { return value })
}

func isRef(p *string, id string) bool { return p != nil && *p == id }

func (r *CountryRepo) IsUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.st.principals {
		if isRef(p.NationalityID, id) {
			return true, nil
		}
	}
	for _, c := range r.s.st.costumers {
		if isRef(c.CountryID, id) || isRef(c.RegisteredCountryID, id) ||
			isRef(c.DirectorNationalityID, id) || isRef(c.PartnerNationalityID, id) {
			return true, nil
		}
	}
	return false, nil
}

// ─── POSCompany ───────────────────────────────────────────────────────────────

// POSCompanyRepo implementación en memoria de POSCompanyRepository.
type POSCompanyRepo struct {
	s *Store
}

func (r *POSCompanyRepo) Create(_ context.Context, c *entity.POSCompany) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.st.companies[c.ID] = *c
	return nil
}

func (r *POSCompanyRepo) GetByID(_ context.Context, id string) (*entity.POSCompany, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.st.companies[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *POSCompanyRepo) List(_ context.Context) ([]repository.POSCompanyListItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := map[string]int{}
	for _, m := range r.s.st.models {
		counts[m.CompanyID]++
	}
	out := make([]repository.POSCompanyListItem, 0, len(r.s.st.companies))
	for _, c := range r.s.st.companies {
		out = append(out, repository.POSCompanyListItem{POSCompany: c, ModelCount: counts[c.ID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *POSCompanyRepo) Update(_ context.Context, c *entity.POSCompany) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.companies[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.companies[c.ID] = *c
	return nil
}

// Delete borra la empresa en cascada: modelos, POS y sus vínculos a contratos.
func (r *POSCompanyRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := &r.s.st
	if _, ok := st.companies[id]; !ok {
		return domain.ErrNotFound
	}
	delete(st.companies, id)
	for mid, m := range st.models {
		if m.CompanyID == id {
			st.deleteModel(mid)
		}
	}
	return nil
}

func (r *POSCompanyRepo) IsUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.st.models {
		if m.CompanyID == id {
			return true, nil
		}
	}
	return false, nil
}

// cascadas compartidas (llamar con mu tomado)

func (st *state) deleteModel(id string) {
	delete(st.models, id)
	for pid, p := range st.poses {
		if p.ModelID == id {
			st.deletePOS(pid)
		}
	}
}

func (st *state) deletePOS(id string) {
	delete(st.poses, id)
	for lid, l := range st.contractPOS {
		if l.POSID == id {
			delete(st.contractPOS, lid)
		}
	}
}

// ─── PosModel ─────────────────────────────────────────────────────────────────

// PosModelRepo implementación en memoria de PosModelRepository.
type PosModelRepo struct {
	s *Store
}

func (r *PosModelRepo) Create(_ context.Context, m *entity.PosModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.companies[m.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.models[m.ID] = *m
	return nil
}

func (r *PosModelRepo) GetByID(_ context.Context, id string) (*entity.PosModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.st.models[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *PosModelRepo) List(_ context.Context, companyID string) ([]*entity.PosModel, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.PosModel, 0)
	for _, m := range r.s.st.models {
		if companyID != "" && m.CompanyID != companyID {
			continue
		}
		out = append(out, ptr(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *PosModelRepo) Update(_ context.Context, m *entity.PosModel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.models[m.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.companies[m.CompanyID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.models[m.ID] = *m
	return nil
}

func (r *PosModelRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.models[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.deleteModel(id)
	return nil
}

func (r *PosModelRepo) IsUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.st.poses {
		if p.ModelID == id {
			return true, nil
		}
	}
	return false, nil
}

// ─── POS ──────────────────────────────────────────────────────────────────────

// POSRepo implementación en memoria de POSRepository.
type POSRepo struct {
	s *Store
}

func (r *POSRepo) Create(_ context.Context, p *entity.POS) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.models[p.ModelID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.poses[p.ID] = *p
	return nil
}

func (r *POSRepo) GetByID(_ context.Context, id string) (*entity.POS, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.st.poses[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (st *state) posDetail(p entity.POS) *entity.POSDetail {
	m := st.models[p.ModelID]
	return &entity.POSDetail{POS: p, Model: m, Company: st.companies[m.CompanyID]}
}

func (r *POSRepo) GetDetail(_ context.Context, id string) (*entity.POSDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.st.poses[id]
	if !ok {
		return nil, nil
	}
	return r.s.st.posDetail(p), nil
}

func (r *POSRepo) List(_ context.Context, f repository.POSFilter) ([]*entity.POSDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.POSDetail, 0)
	for _, p := range r.s.st.poses {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if f.ModelID != "" && p.ModelID != f.ModelID {
			continue
		}
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.Active != nil && p.IsActive != *f.Active {
			continue
		}
		out = append(out, r.s.st.posDetail(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out, nil
}

func (r *POSRepo) Update(_ context.Context, p *entity.POS) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.poses[p.ID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.st.models[p.ModelID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.poses[p.ID] = *p
	return nil
}

func (r *POSRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.poses[id]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.deletePOS(id)
	return nil
}

func (r *POSRepo) setActive(id string, fn func(bool) bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.poses[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	p.IsActive = fn(p.IsActive)
	r.s.st.poses[p.ID] = p
	return p.IsActive, nil
}

func (r *POSRepo) ToggleActive(_ context.Context, id string) (bool, error) {
	return r.setActive(id, func(v bool) bool { return !v })
}

func (r *POSRepo) SetActive(_ context.Context, id string, value bool) (bool, error) {
	return r.setActive(id, func(bool) bool { return value })
}

func (r *POSRepo) IsUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.st.contractPOS {
		if l.POSID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *POSRepo) Statuses(_ context.Context) (map[string]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]string, len(r.s.st.poses))
	for id, p := range r.s.st.poses {
		out[id] = p.Status
	}
	return out, nil
}

func (r *POSRepo) SetStatuses(_ context.Context, statuses map[string]string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, status := range statuses {
		p, ok := r.s.st.poses[id]
		if !ok {
			continue
		}
		p.Status = status
		r.s.st.poses[p.ID] = p
	}
	return nil
}

func (r *POSRepo) ContractWindows(_ context.Context, posIDs []string) (map[string][]rules.ContractWindow, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var want map[string]bool
	if len(posIDs) > 0 {
		want = make(map[string]bool, len(posIDs))
		for _, id := range posIDs {
			want[id] = true
		}
	}
	out := map[string][]rules.ContractWindow{}
	for _, l := range r.s.st.contractPOS {
		if want != nil && !want[l.POSID] {
			continue
		}
		c, ok := r.s.st.contracts[l.ContractID]
		if !ok {
			continue
		}
		out[l.POSID] = append(out[l.POSID], rules.ContractWindow{
			ContractID: c.ID, LiveDate: c.LiveDate, EndDate: c.EndDate, CreatedAt: c.CreatedAt,
		})
	}
	return out, nil
}

// ─── VirtualService ───────────────────────────────────────────────────────────

// VirtualServiceRepo implementación en memoria de VirtualServiceRepository.
type VirtualServiceRepo struct {
	s *Store
}

func (r *VirtualServiceRepo) Create(_ context.Context, v *entity.VirtualService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.services {
		if existing.Name == v.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.st.services[v.ID] = *v
	return nil
}

func (r *VirtualServiceRepo) GetByID(_ context.Context, id string) (*entity.VirtualService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	v, ok := r.s.st.services[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *VirtualServiceRepo) List(_ context.Context) ([]*entity.VirtualService, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.VirtualService, 0, len(r.s.st.services))
	for _, v := range r.s.st.services {
		out = append(out, ptr(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *VirtualServiceRepo) Update(_ context.Context, v *entity.VirtualService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.services[v.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.st.services {
		if id != v.ID && existing.Name == v.Name {
			return domain.ErrDuplicate
		}
	}
	r.s.st.services[v.ID] = *v
	return nil
}

func (r *VirtualServiceRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.st.services, id)
	for lid, l := range r.s.st.contractServices {
		if l.ServiceID == id {
			delete(r.s.st.contractServices, lid)
		}
	}
	return nil
}

func (r *VirtualServiceRepo) setAvailability(id string, fn func(bool) bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.st.services[id]
	if !ok {
		return false, domain.ErrNotFound
	}
	v.Availability = fn(v.Availability)
	r.s.st.services[v.ID] = v
	return v.Availability, nil
}

func (r *VirtualServiceRepo) ToggleAvailability(_ context.Context, id string) (bool, error) {
	return r.setAvailability(id, func(v bool) bool { return !v })
}

func (r *VirtualServiceRepo) SetAvailability(_ context.Context, id string, value bool) (bool, error) {
	return r.setAvailability(id, func(bool) bool { return value })
}

func (r *VirtualServiceRepo) IsUsed(_ context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, l := range r.s.st.contractServices {
		if l.ServiceID == id {
			return true, nil
		}
	}
	return false, nil
}
