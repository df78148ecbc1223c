package usecase

import (
	"context"
	"strings"
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

// CostumerUseCase casos de uso de comercios (alta, edición, direcciones y KYC).
type CostumerUseCase struct {
	repos   repository.Repositories
	tx      TxRunner
	storage FileStorage
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewCostumerUseCase construye el caso de uso.
func NewCostumerUseCase(repos repository.Repositories, tx TxRunner, storage FileStorage, log *logger.Logger, m *metrics.Metrics) *CostumerUseCase {
	return &CostumerUseCase{repos: repos, tx: tx, storage: storage, log: log.Component("costumer"), metrics: m}
}

// Create valida el estado completo y da de alta el comercio.
func (uc *CostumerUseCase) Create(ctx context.Context, actorID string, in dto.CostumerRequest) (*dto.CostumerResponse, error) {
	now := time.Now()
	c := &entity.Costumer{
		ID:            uuid.New().String(),
		CreatedBy:     strPtr(actorID),
		CreatedAt:     now,
		LastUpdatedBy: strPtr(actorID),
		UpdatedAt:     now,
	}
	applyCostumerRequest(c, in)
	if err := rules.PrepareCostumer(c); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	if err := uc.repos.Costumers.Create(ctx, c); err != nil {
		return nil, err
	}
	return costumerResponse(ctx, uc.repos, c)
}

// Get devuelve el comercio con países y direcciones comerciales resueltos.
func (uc *CostumerUseCase) Get(ctx context.Context, id string) (*dto.CostumerResponse, error) {
	c, err := uc.repos.Costumers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return costumerResponse(ctx, uc.repos, c)
}

// Update fusiona apply sobre el estado actual y vuelve a pasar la compuerta
// completa; Sole Trader vacía los datos de socio en cada guardado.
func (uc *CostumerUseCase) Update(ctx context.Context, actorID, id string, apply func(*dto.CostumerRequest) error) (*dto.CostumerResponse, error) {
	c, err := uc.repos.Costumers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	in := costumerToRequest(c)
	if err := apply(&in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	applyCostumerRequest(c, in)
	if err := rules.PrepareCostumer(c); err != nil {
		return nil, rejected(uc.metrics, err)
	}
	c.LastUpdatedBy = strPtr(actorID)
	c.UpdatedAt = time.Now()
	if err := uc.repos.Costumers.Update(ctx, c); err != nil {
		return nil, err
	}
	return costumerResponse(ctx, uc.repos, c)
}

// ListMini devuelve id y nombres de todos los comercios.
func (uc *CostumerUseCase) ListMini(ctx context.Context) ([]dto.CostumerMiniResponse, error) {
	list, err := uc.repos.Costumers.ListMini(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CostumerMiniResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.CostumerMiniResponse{ID: m.ID, LegalName: m.LegalName, TradingName: m.TradingName})
	}
	return out, nil
}

// AddAddresses agrega direcciones comerciales en lote: se guardan todas o ninguna.
func (uc *CostumerUseCase) AddAddresses(ctx context.Context, costumerID string, in []dto.TradingAddressRequest) ([]dto.TradingAddressResponse, error) {
	if len(in) == 0 {
		return nil, domain.NewValidationError("address", "se requiere al menos una dirección")
	}
	for _, a := range in {
		if strings.TrimSpace(a.Address) == "" {
			return nil, domain.NewValidationError("address", "la dirección no puede estar vacía")
		}
	}
	out := make([]dto.TradingAddressResponse, 0, len(in))
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Costumers.GetByID(ctx, costumerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.ErrNotFound
		}
		for _, a := range in {
			ta := &entity.TradingAddress{ID: uuid.New().String(), Address: strings.TrimSpace(a.Address), CostumerID: costumerID}
			if err := repos.Costumers.AddTradingAddress(ctx, ta); err != nil {
				return err
			}
			out = append(out, dto.TradingAddressResponse{ID: ta.ID, Address: ta.Address})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("costumer_id", costumerID).Int("count", len(out)).Msg("direcciones comerciales agregadas")
	return out, nil
}

// costumerOfContract resuelve el comercio dueño de un contrato.
func (uc *CostumerUseCase) costumerOfContract(ctx context.Context, contractID string) (*entity.Costumer, error) {
	ct, err := uc.repos.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if ct == nil {
		return nil, domain.ErrNotFound
	}
	c, err := uc.repos.Costumers.GetByID(ctx, ct.CostumerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

// Files devuelve las URLs de los documentos KYC/KYB del comercio del contrato.
func (uc *CostumerUseCase) Files(ctx context.Context, contractID string) (*dto.CostumerFilesResponse, error) {
	c, err := uc.costumerOfContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return uc.filesResponse(c.Documents), nil
}

// UpdateFiles guarda los documentos recibidos (campo multipart -> archivo) y
// conserva los que no se enviaron. Campos desconocidos se ignoran.
func (uc *CostumerUseCase) UpdateFiles(ctx context.Context, contractID string, files map[string]Upload) (*dto.CostumerFilesResponse, error) {
	c, err := uc.costumerOfContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	docs := c.Documents
	slots := map[string]*string{
		"pob":                       &docs.POB,
		"kyc1_id":                   &docs.KYC1ID,
		"kyc2_address_proof":        &docs.KYC2AddressProof,
		"kyb_premises_photo":        &docs.KYBPremisesPhoto,
		"kyb_trading_address_proof": &docs.KYBTradingAddressProof,
	}
	if err := saveUploads(ctx, uc.storage, slots, files); err != nil {
		return nil, err
	}
	if err := uc.repos.Costumers.UpdateDocuments(ctx, c.ID, docs); err != nil {
		return nil, err
	}
	uc.log.Info().Str("costumer_id", c.ID).Str("contract_id", contractID).Int("files", len(files)).Msg("documentos de comercio actualizados")
	return uc.filesResponse(docs), nil
}

func (uc *CostumerUseCase) filesResponse(d entity.CostumerDocuments) *dto.CostumerFilesResponse {
	return &dto.CostumerFilesResponse{
		POB:                    fileURL(uc.storage, d.POB),
		KYC1ID:                 fileURL(uc.storage, d.KYC1ID),
		KYC2AddressProof:       fileURL(uc.storage, d.KYC2AddressProof),
		KYBPremisesPhoto:       fileURL(uc.storage, d.KYBPremisesPhoto),
		KYBTradingAddressProof: fileURL(uc.storage, d.KYBTradingAddressProof),
	}
}

// saveUploads guarda cada archivo cuyo campo tenga destino en slots.
func saveUploads(ctx context.Context, storage FileStorage, slots map[string]*string, files map[string]Upload) error {
	for field, f := range files {
		dst, ok := slots[field]
		if !ok {
			continue
		}
		path, err := storage.Save(ctx, FolderContracts, f.Name, f.Reader)
		if err != nil {
			return err
		}
		*dst = path
	}
	return nil
}

func fileURL(storage FileStorage, path string) string {
	if path == "" {
		return ""
	}
	return storage.URL(path)
}

// costumerResponse arma el detalle con países y direcciones resueltos.
func costumerResponse(ctx context.Context, repos repository.Repositories, c *entity.Costumer) (*dto.CostumerResponse, error) {
	country := func(id *string) (*dto.NationalityResponse, error) {
		if id == nil {
			return nil, nil
		}
		ct, err := repos.Countries.GetByID(ctx, *id)
		if err != nil || ct == nil {
			return nil, err
		}
		return toNationality(ct), nil
	}
	out := &dto.CostumerResponse{
		ID:                   c.ID,
		TradingName:          c.TradingName,
		LegalName:            c.LegalName,
		BusinessType:         c.BusinessType,
		LegalEntity:          c.LegalEntity,
		BusinessDate:         dto.DatePtr(c.BusinessDate),
		RegisteredAddress:    c.RegisteredAddress,
		RegisteredPostalCode: c.RegisteredPostalCode,
		BusinessPostalCode:   c.BusinessPostalCode,
		CompanyNumber:        c.CompanyNumber,
		CompanyMobile:        c.CompanyMobile,
		LandLine:             c.LandLine,
		BusinessEmail:        c.BusinessEmail,
		Website:              c.Website,
		DirectorName:         c.DirectorName,
		DirectorPhone:        c.DirectorPhone,
		DirectorEmail:        c.DirectorEmail,
		DirectorAddress:      c.DirectorAddress,
		DirectorPostalCode:   c.DirectorPostalCode,
		DirectorBirthDate:    dto.DatePtr(c.DirectorBirthDate),
		Note:                 c.Note,
		SortCode:             c.SortCode,
		IssuingBank:          c.IssuingBank,
		AccountNumber:        c.AccountNumber,
		BusinessBankName:     c.BusinessBankName,
		PartnerName:          c.PartnerName,
		PartnerAddress:       c.PartnerAddress,
		Shareholder:          c.Shareholder,
		UpdatedAt:            c.UpdatedAt,
	}
	var err error
	if out.Country, err = country(c.CountryID); err != nil {
		return nil, err
	}
	if out.RegisteredCountry, err = country(c.RegisteredCountryID); err != nil {
		return nil, err
	}
	if out.DirectorNationality, err = country(c.DirectorNationalityID); err != nil {
		return nil, err
	}
	if out.PartnerNationality, err = country(c.PartnerNationalityID); err != nil {
		return nil, err
	}
	addrs, err := repos.Costumers.ListTradingAddresses(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out.TradingAddresses = make([]dto.TradingAddressResponse, 0, len(addrs))
	for _, a := range addrs {
		out.TradingAddresses = append(out.TradingAddresses, dto.TradingAddressResponse{ID: a.ID, Address: a.Address})
	}
	return out, nil
}
