package usecase_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/infrastructure/memory"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// today fecha fija de los tests de estado.
var today = time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

const actor = "actor-1"

type testEnv struct {
	store   *memory.Store
	repos   repository.Repositories
	status  *usecase.POSStatusService
	storage *memStorage
	cache   *mapCache
	log     *logger.Logger
	metrics *metrics.Metrics
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	st := memory.NewStore()
	m := metrics.New("test")
	log := logger.Nop()
	return &testEnv{
		store:   st,
		repos:   st.Repositories(),
		status:  usecase.NewPOSStatusService(log, m).WithClock(func() time.Time { return today }),
		storage: newMemStorage(),
		cache:   newMapCache(),
		log:     log,
		metrics: m,
	}
}

func (e *testEnv) countries() *usecase.CountryUseCase {
	return usecase.NewCountryUseCase(e.repos.Countries, e.cache, e.log, e.metrics)
}

func (e *testEnv) companies() *usecase.POSCompanyUseCase {
	return usecase.NewPOSCompanyUseCase(e.repos.Companies, e.repos.Models, e.cache, e.log, e.metrics)
}

func (e *testEnv) models() *usecase.PosModelUseCase {
	return usecase.NewPosModelUseCase(e.repos.Models, e.repos.Companies, e.cache, e.log)
}

func (e *testEnv) poses() *usecase.POSUseCase {
	return usecase.NewPOSUseCase(e.repos.POS, e.repos.Models, e.repos.Companies, e.status, e.log, e.metrics)
}

func (e *testEnv) services() *usecase.VirtualServiceUseCase {
	return usecase.NewVirtualServiceUseCase(e.repos.Services, e.log, e.metrics)
}

func (e *testEnv) costumers() *usecase.CostumerUseCase {
	return usecase.NewCostumerUseCase(e.repos, e.store, e.storage, e.log, e.metrics)
}

func (e *testEnv) contracts() *usecase.ContractUseCase {
	return usecase.NewContractUseCase(e.repos, e.store, e.status, e.storage, e.log, e.metrics)
}

func (e *testEnv) ledger() *usecase.LedgerUseCase {
	return usecase.NewLedgerUseCase(e.repos, e.log)
}

// seedModel crea empresa (con longitud de serial) y modelo; devuelve el id del modelo.
func (e *testEnv) seedModel(t *testing.T, company string, serialLength int) string {
	t.Helper()
	ctx := context.Background()
	c, err := e.companies().Create(ctx, actor, dto.POSCompanyRequest{Name: company, SerialNumberLength: serialLength})
	require.NoError(t, err)
	m, err := e.models().Create(ctx, actor, dto.PosModelRequest{Name: company + " M1", CompanyID: c.ID})
	require.NoError(t, err)
	return m.ID
}

func (e *testEnv) seedPOS(t *testing.T, modelID, serial string) string {
	t.Helper()
	p, err := e.poses().Create(context.Background(), actor, dto.POSRequest{SerialNumber: serial, Type: "D", ModelID: modelID})
	require.NoError(t, err)
	return p.ID
}

func validCostumer() dto.CostumerRequest {
	return dto.CostumerRequest{
		TradingName:       "Café Central",
		LegalName:         "Central Foods Ltd",
		BusinessType:      "Restaurants, Pubs and Fast Food",
		LegalEntity:       "Private Limited Company",
		RegisteredAddress: "1 High Street",
		DirectorName:      "Ana Pérez",
		BusinessBankName:  "Central Foods Ltd",
	}
}

func (e *testEnv) seedCostumer(t *testing.T) string {
	t.Helper()
	c, err := e.costumers().Create(context.Background(), actor, validCostumer())
	require.NoError(t, err)
	return c.ID
}

func contractFor(costumerID string, live, end time.Time) dto.ContractRequest {
	return dto.ContractRequest{
		CostumerID:      costumerID,
		FaceToFaceSales: 80,
		Acquirer:        "EP",
		MID:             "MID-001",
		LiveDate:        dto.NewDate(live),
		EndDate:         dto.NewDate(end),
	}
}

func (e *testEnv) seedContract(t *testing.T, costumerID string, live, end time.Time) string {
	t.Helper()
	c, err := e.contracts().Create(context.Background(), actor, contractFor(costumerID, live, end))
	require.NoError(t, err)
	return c.ID
}

// patch simula el BodyParser del handler PATCH sobre el estado actual.
func patch[T any](fn func(*T)) func(*T) error {
	return func(in *T) error {
		fn(in)
		return nil
	}
}

// ── Dobles ──────────────────────────────────────────────────────────────────

type memStorage struct {
	mu    sync.Mutex
	files map[string][]byte
	n     int
}

func newMemStorage() *memStorage { return &memStorage{files: map[string][]byte{}} }

func (s *memStorage) Save(_ context.Context, folder, name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	p := fmt.Sprintf("%s/%d-%s", folder, s.n, name)
	s.files[p] = b
	return p, nil
}

func (s *memStorage) Open(_ context.Context, p string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[p]
	if !ok {
		return nil, os.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memStorage) URL(p string) string { return "/media/" + p }

type mapCache struct {
	mu      sync.Mutex
	values  map[string]any
	deletes int
}

func newMapCache() *mapCache { return &mapCache{values: map[string]any{}} }

func (c *mapCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.values[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *[]dto.CountryResponse:
		*d = v.([]dto.CountryResponse)
	case *[]dto.POSCompanyResponse:
		*d = v.([]dto.POSCompanyResponse)
	default:
		return false, nil
	}
	return true, nil
}

func (c *mapCache) Set(_ context.Context, key string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
	}
	c.deletes++
	return nil
}

func newGoalUseCase(e *testEnv) *usecase.GoalUseCase {
	return usecase.NewGoalUseCase(e.repos.Goals, e.log)
}
