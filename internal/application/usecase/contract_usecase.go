package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/internal/domain/rules"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// ContractUseCase casos de uso de contratos y sus vínculos con POS y servicios.
// Toda escritura que altera ventanas o vínculos recalcula, en la misma
// transacción, el estado de los POS afectados.
type ContractUseCase struct {
	repos   repository.Repositories
	tx      TxRunner
	status  *POSStatusService
	storage FileStorage
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewContractUseCase construye el caso de uso.
func NewContractUseCase(
	repos repository.Repositories,
	tx TxRunner,
	status *POSStatusService,
	storage FileStorage,
	log *logger.Logger,
	m *metrics.Metrics,
) *ContractUseCase {
	return &ContractUseCase{repos: repos, tx: tx, status: status, storage: storage, log: log.Component("contract"), metrics: m}
}

func (uc *ContractUseCase) contract(ctx context.Context, repo repository.ContractRepository, id string) (*entity.Contract, error) {
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// linkedPOS ids de POS vinculados al contrato.
func linkedPOS(ctx context.Context, repo repository.ContractRepository, contractID string) ([]string, error) {
	links, err := repo.ListPOS(ctx, contractID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.POSID)
	}
	return ids, nil
}

// Create valida y da de alta un contrato.
func (uc *ContractUseCase) Create(ctx context.Context, actorID string, in dto.ContractRequest) (*dto.ContractResponse, error) {
	c := &entity.Contract{ID: uuid.New().String(), CreatedBy: strPtr(actorID), CreatedAt: time.Now()}
	applyContractRequest(c, in)
	if err := rules.ValidateContract(c); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	if err := uc.repos.Contracts.Create(ctx, c); err != nil {
		return nil, err
	}
	return toContractResponse(c), nil
}

// Get devuelve el contrato con su comercio resuelto.
func (uc *ContractUseCase) Get(ctx context.Context, id string) (*dto.ContractResponse, error) {
	c, err := uc.contract(ctx, uc.repos.Contracts, id)
	if err != nil {
		return nil, err
	}
	out := toContractResponse(c)
	costumer, err := uc.repos.Costumers.GetByID(ctx, c.CostumerID)
	if err != nil {
		return nil, err
	}
	if costumer != nil {
		if out.Costumer, err = costumerResponse(ctx, uc.repos, costumer); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Update fusiona apply sobre el contrato y recalcula el estado de sus POS:
// mover live_date/end_date puede liberar u ocupar unidades.
func (uc *ContractUseCase) Update(ctx context.Context, actorID, id string, apply func(*dto.ContractRequest) error) (*dto.ContractResponse, error) {
	var out *dto.ContractResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := uc.contract(ctx, repos.Contracts, id)
		if err != nil {
			return err
		}
		in := contractToRequest(c)
		if err := apply(&in); err != nil {
			return domain.ErrInvalidInput
		}
		applyContractRequest(c, in)
		if err := rules.ValidateContract(c); err != nil {
			return rejected(uc.metrics, err)
		}
		if err := repos.Contracts.Update(ctx, c); err != nil {
			return err
		}
		ids, err := linkedPOS(ctx, repos.Contracts, id)
		if err != nil {
			return err
		}
		if _, err := uc.status.RefreshFor(ctx, repos.POS, ids); err != nil {
			return err
		}
		uc.log.Info().Str("contract_id", id).Str("actor_id", actorID).Int("pos", len(ids)).Msg("contrato actualizado")
		out = toContractResponse(c)
		return nil
	})
	return out, err
}

// List devuelve los contratos (más recientes primero) con el nombre del comercio.
func (uc *ContractUseCase) List(ctx context.Context, q dto.ContractListQuery) ([]dto.ContractListItem, error) {
	f := repository.ContractFilter{Acquirer: q.Acquirer, CostumerID: q.CostumerID}
	if q.Acquirer != "" && entity.AcquirerName(q.Acquirer) == "" {
		return nil, domain.NewValidationError("acquirer", "debe ser EP o FD")
	}
	if q.ActiveOn != "" {
		day, err := time.Parse(dto.DateLayout, q.ActiveOn)
		if err != nil {
			return nil, domain.NewValidationError("active_on", "formato esperado YYYY-MM-DD")
		}
		f.ActiveOn = &day
	}
	list, err := uc.repos.Contracts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	costumers := map[string]*entity.Costumer{}
	out := make([]dto.ContractListItem, 0, len(list))
	for _, c := range list {
		cm, ok := costumers[c.CostumerID]
		if !ok {
			if cm, err = uc.repos.Costumers.GetByID(ctx, c.CostumerID); err != nil {
				return nil, err
			}
			costumers[c.CostumerID] = cm
		}
		item := dto.ContractListItem{
			ID:       c.ID,
			MID:      c.MID,
			LiveDate: dto.NewDate(c.LiveDate),
			EndDate:  dto.NewDate(c.EndDate),
		}
		if cm != nil {
			item.Costumer = dto.CostumerMiniResponse{ID: cm.ID, LegalName: cm.LegalName, TradingName: cm.TradingName}
			item.BusinessType = cm.BusinessType
		}
		out = append(out, item)
	}
	return out, nil
}

// ListPOS devuelve los POS vinculados con su detalle.
func (uc *ContractUseCase) ListPOS(ctx context.Context, contractID string) ([]dto.ContractPOSResponse, error) {
	if _, err := uc.contract(ctx, uc.repos.Contracts, contractID); err != nil {
		return nil, err
	}
	links, err := uc.repos.Contracts.ListPOS(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return []dto.ContractPOSResponse{}, nil
	}
	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.POSID)
	}
	active, err := uc.status.ActiveContracts(ctx, uc.repos.POS, ids)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractPOSResponse, 0, len(links))
	for _, l := range links {
		d, err := uc.repos.POS.GetDetail(ctx, l.POSID)
		if err != nil {
			return nil, err
		}
		if d != nil {
			d.ContractID = active[d.ID]
		}
		out = append(out, toContractPOSResponse(l, d))
	}
	return out, nil
}

// AddPOS vincula un POS al contrato y recalcula su estado.
func (uc *ContractUseCase) AddPOS(ctx context.Context, actorID, contractID string, in dto.ContractPOSRequest) (*dto.ContractPOSResponse, error) {
	res, err := uc.Attach(ctx, actorID, contractID, dto.SolutionsRequest{
		POSes: []dto.SolutionPOS{{ID: in.POSID, Price: in.Price, HardwareCost: in.HardwareCost, SoftwareCost: in.SoftwareCost}},
	})
	if err != nil {
		return nil, err
	}
	return &res.POSes[0], nil
}

// ListServices devuelve los servicios vinculados con su nombre.
func (uc *ContractUseCase) ListServices(ctx context.Context, contractID string) ([]dto.ContractServiceResponse, error) {
	if _, err := uc.contract(ctx, uc.repos.Contracts, contractID); err != nil {
		return nil, err
	}
	links, err := uc.repos.Contracts.ListServices(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContractServiceResponse, 0, len(links))
	for _, l := range links {
		name, err := uc.serviceName(ctx, uc.repos.Services, l.ServiceID)
		if err != nil {
			return nil, err
		}
		out = append(out, toContractServiceResponse(l, name))
	}
	return out, nil
}

func (uc *ContractUseCase) serviceName(ctx context.Context, repo repository.VirtualServiceRepository, id string) (string, error) {
	s, err := repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return "", err
	}
	return s.Name, nil
}

// AddService vincula un servicio al contrato.
func (uc *ContractUseCase) AddService(ctx context.Context, actorID, contractID string, in dto.ContractServiceRequest) (*dto.ContractServiceResponse, error) {
	res, err := uc.Attach(ctx, actorID, contractID, dto.SolutionsRequest{
		Services: []dto.SolutionService{{ID: in.ServiceID, Price: in.Price, Cost: in.Cost}},
	})
	if err != nil {
		return nil, err
	}
	return &res.Services[0], nil
}

// Attach vincula en lote servicios y POS a un contrato: se crean todos los
// vínculos o ninguno, y los POS afectados quedan con su estado recalculado.
func (uc *ContractUseCase) Attach(ctx context.Context, actorID, contractID string, in dto.SolutionsRequest) (*dto.SolutionsResponse, error) {
	if len(in.Services) == 0 && len(in.POSes) == 0 {
		return nil, domain.NewValidationError("solutions", "se requiere al menos un servicio o POS")
	}
	out := &dto.SolutionsResponse{
		Services: make([]dto.ContractServiceResponse, 0, len(in.Services)),
		POSes:    make([]dto.ContractPOSResponse, 0, len(in.POSes)),
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if _, err := uc.contract(ctx, repos.Contracts, contractID); err != nil {
			return err
		}
		now := time.Now()
		for _, s := range in.Services {
			svc, err := repos.Services.GetByID(ctx, s.ID)
			if err != nil {
				return err
			}
			if svc == nil {
				return domain.ErrNotFound
			}
			l := &entity.ContractService{
				ID: uuid.New().String(), ContractID: contractID, ServiceID: s.ID,
				Price: s.Price, Cost: s.Cost, CreatedBy: strPtr(actorID), CreatedAt: now,
			}
			if err := repos.Contracts.AddService(ctx, l); err != nil {
				return err
			}
			out.Services = append(out.Services, toContractServiceResponse(l, svc.Name))
		}
		posIDs := make([]string, 0, len(in.POSes))
		links := make([]*entity.ContractPOS, 0, len(in.POSes))
		for _, p := range in.POSes {
			l := &entity.ContractPOS{
				ID: uuid.New().String(), ContractID: contractID, POSID: p.ID,
				Price: p.Price, HardwareCost: p.HardwareCost, SoftwareCost: p.SoftwareCost,
				CreatedBy: strPtr(actorID), CreatedAt: now,
			}
			if err := repos.Contracts.AddPOS(ctx, l); err != nil {
				return err
			}
			posIDs = append(posIDs, p.ID)
			links = append(links, l)
		}
		active, err := uc.status.RefreshFor(ctx, repos.POS, posIDs)
		if err != nil {
			return err
		}
		for _, l := range links {
			d, err := repos.POS.GetDetail(ctx, l.POSID)
			if err != nil {
				return err
			}
			if d == nil {
				return domain.ErrNotFound
			}
			d.ContractID = active[d.ID]
			out.POSes = append(out.POSes, toContractPOSResponse(l, d))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("contract_id", contractID).
		Str("actor_id", actorID).
		Int("services", len(out.Services)).
		Int("pos", len(out.POSes)).
		Msg("soluciones vinculadas al contrato")
	return out, nil
}

// UpdatePOSLink fusiona apply sobre el vínculo. Si cambia el POS se recalcula
// el estado del anterior y del nuevo.
func (uc *ContractUseCase) UpdatePOSLink(ctx context.Context, id string, apply func(*dto.ContractPOSRequest) error) (*dto.ContractPOSResponse, error) {
	var out dto.ContractPOSResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		l, err := repos.Contracts.GetPOSLink(ctx, id)
		if err != nil {
			return err
		}
		if l == nil {
			return domain.ErrNotFound
		}
		in := dto.ContractPOSRequest{POSID: l.POSID, Price: l.Price, HardwareCost: l.HardwareCost, SoftwareCost: l.SoftwareCost}
		if err := apply(&in); err != nil {
			return domain.ErrInvalidInput
		}
		affected := []string{l.POSID}
		if in.POSID != l.POSID {
			affected = append(affected, in.POSID)
		}
		l.POSID, l.Price, l.HardwareCost, l.SoftwareCost = in.POSID, in.Price, in.HardwareCost, in.SoftwareCost
		if err := repos.Contracts.UpdatePOSLink(ctx, l); err != nil {
			return err
		}
		active, err := uc.status.RefreshFor(ctx, repos.POS, affected)
		if err != nil {
			return err
		}
		d, err := repos.POS.GetDetail(ctx, l.POSID)
		if err != nil {
			return err
		}
		if d != nil {
			d.ContractID = active[d.ID]
		}
		out = toContractPOSResponse(l, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateServiceLink fusiona apply sobre el vínculo de servicio.
func (uc *ContractUseCase) UpdateServiceLink(ctx context.Context, id string, apply func(*dto.ContractServiceRequest) error) (*dto.ContractServiceResponse, error) {
	l, err := uc.repos.Contracts.GetServiceLink(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	in := dto.ContractServiceRequest{ServiceID: l.ServiceID, Price: l.Price, Cost: l.Cost}
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	l.ServiceID, l.Price, l.Cost = in.ServiceID, in.Price, in.Cost
	if err := uc.repos.Contracts.UpdateServiceLink(ctx, l); err != nil {
		return nil, err
	}
	name, err := uc.serviceName(ctx, uc.repos.Services, l.ServiceID)
	if err != nil {
		return nil, err
	}
	out := toContractServiceResponse(l, name)
	return &out, nil
}

// Files devuelve las URLs de los documentos del contrato.
func (uc *ContractUseCase) Files(ctx context.Context, id string) (*dto.ContractFilesResponse, error) {
	c, err := uc.contract(ctx, uc.repos.Contracts, id)
	if err != nil {
		return nil, err
	}
	return uc.filesResponse(c.Documents), nil
}

// UpdateFiles guarda los documentos recibidos y conserva los no enviados.
func (uc *ContractUseCase) UpdateFiles(ctx context.Context, id string, files map[string]Upload) (*dto.ContractFilesResponse, error) {
	c, err := uc.contract(ctx, uc.repos.Contracts, id)
	if err != nil {
		return nil, err
	}
	docs := c.Documents
	slots := map[string]*string{
		"acquirer_application": &docs.AcquirerApplication,
		"financial_report":     &docs.FinancialReport,
		"vat_return":           &docs.VATReturn,
		"fd_consent":           &docs.FDConsent,
		"credit_search":        &docs.CreditSearch,
	}
	if err := saveUploads(ctx, uc.storage, slots, files); err != nil {
		return nil, err
	}
	if err := uc.repos.Contracts.UpdateDocuments(ctx, id, docs); err != nil {
		return nil, err
	}
	uc.log.Info().Str("contract_id", id).Int("files", len(files)).Msg("documentos de contrato actualizados")
	return uc.filesResponse(docs), nil
}

func (uc *ContractUseCase) filesResponse(d entity.ContractDocuments) *dto.ContractFilesResponse {
	return &dto.ContractFilesResponse{
		AcquirerApplication: fileURL(uc.storage, d.AcquirerApplication),
		FinancialReport:     fileURL(uc.storage, d.FinancialReport),
		VATReturn:           fileURL(uc.storage, d.VATReturn),
		FDConsent:           fileURL(uc.storage, d.FDConsent),
		CreditSearch:        fileURL(uc.storage, d.CreditSearch),
	}
}
