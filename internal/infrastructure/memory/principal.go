package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

var _ repository.PrincipalRepository = (*PrincipalRepo)(nil)

// PrincipalRepo implementación en memoria de PrincipalRepository.
type PrincipalRepo struct {
	s *Store
}

func (r *PrincipalRepo) Create(_ context.Context, p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.st.principals {
		if existing.Username == p.Username {
			return domain.ErrDuplicate
		}
	}
	if p.NationalityID != nil {
		if _, ok := r.s.st.countries[*p.NationalityID]; !ok {
			return domain.ErrNotFound
		}
	}
	r.s.st.principals[p.ID] = *p
	return nil
}

func (r *PrincipalRepo) GetByID(_ context.Context, id string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.st.principals[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PrincipalRepo) GetByUsername(_ context.Context, username string) (*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.st.principals {
		if p.Username == username {
			return ptr(p), nil
		}
	}
	return nil, nil
}

func (r *PrincipalRepo) List(_ context.Context) ([]*entity.Principal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Principal, 0, len(r.s.st.principals))
	for _, p := range r.s.st.principals {
		out = append(out, ptr(p))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].Username < out[j].Username
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PrincipalRepo) Update(_ context.Context, p *entity.Principal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.st.principals[p.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, existing := range r.s.st.principals {
		if id != p.ID && existing.Username == p.Username {
			return domain.ErrDuplicate
		}
	}
	r.s.st.principals[p.ID] = *p
	return nil
}

func (r *PrincipalRepo) mutate(id string, fn func(p *entity.Principal)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.principals[id]
	if !ok {
		return domain.ErrNotFound
	}
	fn(&p)
	r.s.st.principals[p.ID] = p
	return nil
}

func (r *PrincipalRepo) UpdatePassword(_ context.Context, id, hash string) error {
	return r.mutate(id, func(p *entity.Principal) { p.PasswordHash = hash })
}

func (r *PrincipalRepo) UpdateImage(_ context.Context, id, path string) error {
	return r.mutate(id, func(p *entity.Principal) { p.Image = path })
}

func (r *PrincipalRepo) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	return r.mutate(id, func(p *entity.Principal) { p.LastLogin = &at })
}

func flagField(p *entity.Principal, flag repository.PrincipalFlag) *bool {
	switch flag {
	case repository.FlagStaff:
		return &p.IsStaff
	case repository.FlagActive:
		return &p.IsActive
	}
	return nil
}

func (r *PrincipalRepo) ToggleFlag(_ context.Context, id string, flag repository.PrincipalFlag) (bool, error) {
	var out bool
	var badFlag bool
	err := r.mutate(id, func(p *entity.Principal) {
		f := flagField(p, flag)
		if f == nil {
			badFlag = true
			return
		}
		*f = !*f
		out = *f
	})
	if badFlag {
		return false, domain.ErrInvalidInput
	}
	return out, err
}

func (r *PrincipalRepo) SetFlag(_ context.Context, id string, flag repository.PrincipalFlag, value bool) (bool, error) {
	var badFlag bool
	err := r.mutate(id, func(p *entity.Principal) {
		f := flagField(p, flag)
		if f == nil {
			badFlag = true
			return
		}
		*f = value
	})
	if badFlag {
		return false, domain.ErrInvalidInput
	}
	return value, err
}

// Delete borra el principal y anula todas las referencias de auditoría hacia él.
func (r *PrincipalRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st := &r.s.st
	if _, ok := st.principals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(st.principals, id)

	for k, v := range st.principals {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.principals[k] = v
	}
	for k, v := range st.countries {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.countries[k] = v
	}
	for k, v := range st.companies {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.companies[k] = v
	}
	for k, v := range st.models {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.models[k] = v
	}
	for k, v := range st.poses {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.poses[k] = v
	}
	for k, v := range st.services {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.services[k] = v
	}
	for k, v := range st.goals {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		v.LastUpdateBy = nullIfEq(v.LastUpdateBy, id)
		st.goals[k] = v
	}
	for k, v := range st.costumers {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		v.LastUpdatedBy = nullIfEq(v.LastUpdatedBy, id)
		st.costumers[k] = v
	}
	for k, v := range st.contracts {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.contracts[k] = v
	}
	for k, v := range st.contractPOS {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.contractPOS[k] = v
	}
	for k, v := range st.contractServices {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.contractServices[k] = v
	}
	for k, v := range st.paperRolls {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.paperRolls[k] = v
	}
	for k, v := range st.payments {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.payments[k] = v
	}
	for k, v := range st.mids {
		v.CreatedBy = nullIfEq(v.CreatedBy, id)
		st.mids[k] = v
	}
	return nil
}
