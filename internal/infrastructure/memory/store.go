// Package memory implementa los puertos de repositorio en memoria.
//
// Se usa con STORAGE_DRIVER=memory (desarrollo local sin PostgreSQL) y en los
// tests de casos de uso. Replica las acciones referenciales del esquema SQL:
// CASCADE en vínculos de catálogo y SET NULL en referencias de auditoría y país.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
)

type state struct {
	principals       map[string]entity.Principal
	countries        map[string]entity.Country
	companies        map[string]entity.POSCompany
	models           map[string]entity.PosModel
	poses            map[string]entity.POS
	services         map[string]entity.VirtualService
	goals            map[string]entity.MarketingGoal
	costumers        map[string]entity.Costumer
	addresses        map[string][]entity.TradingAddress // por costumer, en orden de alta
	contracts        map[string]entity.Contract
	contractPOS      map[string]entity.ContractPOS
	contractServices map[string]entity.ContractService
	paperRolls       map[string]entity.PaperRoll
	payments         map[string]entity.Payment
	mids             map[string]entity.MIDRevenue
}

func newState() state {
	return state{
		principals:       map[string]entity.Principal{},
		countries:        map[string]entity.Country{},
		companies:        map[string]entity.POSCompany{},
		models:           map[string]entity.PosModel{},
		poses:            map[string]entity.POS{},
		services:         map[string]entity.VirtualService{},
		goals:            map[string]entity.MarketingGoal{},
		costumers:        map[string]entity.Costumer{},
		addresses:        map[string][]entity.TradingAddress{},
		contracts:        map[string]entity.Contract{},
		contractPOS:      map[string]entity.ContractPOS{},
		contractServices: map[string]entity.ContractService{},
		paperRolls:       map[string]entity.PaperRoll{},
		payments:         map[string]entity.Payment{},
		mids:             map[string]entity.MIDRevenue{},
	}
}

func (st state) clone() state {
	addrs := make(map[string][]entity.TradingAddress, len(st.addresses))
	for k, v := range st.addresses {
		addrs[k] = append([]entity.TradingAddress(nil), v...)
	}
	return state{
		principals:       maps.Clone(st.principals),
		countries:        maps.Clone(st.countries),
		companies:        maps.Clone(st.companies),
		models:           maps.Clone(st.models),
		poses:            maps.Clone(st.poses),
		services:         maps.Clone(st.services),
		goals:            maps.Clone(st.goals),
		costumers:        maps.Clone(st.costumers),
		addresses:        addrs,
		contracts:        maps.Clone(st.contracts),
		contractPOS:      maps.Clone(st.contractPOS),
		contractServices: maps.Clone(st.contractServices),
		paperRolls:       maps.Clone(st.paperRolls),
		payments:         maps.Clone(st.payments),
		mids:             maps.Clone(st.mids),
	}
}

// Store almacén en memoria protegido por mutex. Las entidades se guardan por
// valor: las lecturas devuelven copias.
type Store struct {
	mu sync.RWMutex
	st state
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Repositories devuelve todos los puertos respaldados por este almacén.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		Principals: &PrincipalRepo{s: s},
		Countries:  &CountryRepo{s: s},
		Companies:  &POSCompanyRepo{s: s},
		Models:     &PosModelRepo{s: s},
		POS:        &POSRepo{s: s},
		Services:   &VirtualServiceRepo{s: s},
		Goals:      &MarketingGoalRepo{s: s},
		Costumers:  &CostumerRepo{s: s},
		Contracts:  &ContractRepo{s: s},
		Ledger:     &LedgerRepo{s: s},
	}
}

// Run ejecuta fn sobre una copia privada del estado mientras retiene el lock
// de escritura del almacén; la copia se publica solo si fn termina sin error.
// Las escrituras fuera de la transacción esperan a que Run termine.
// fn debe usar únicamente los repositorios que recibe.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &Store{st: s.st.clone()}
	if err := fn(tx.Repositories()); err != nil {
		return err
	}
	s.st = tx.st
	return nil
}

func ptr[T any](v T) *T { return &v }

// nullIfEq devuelve nil si p apunta a id.
func nullIfEq(p *string, id string) *string {
	if p != nil && *p == id {
		return nil
	}
	return p
}
