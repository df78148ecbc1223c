package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// ExportUseCase genera los documentos descargables de un contrato.
type ExportUseCase struct {
	repos    repository.Repositories
	storage  FileStorage
	pdf      ContractPDFRenderer
	acquirer AcquirerExporter
	archiver DocumentArchiver
	log      *logger.Logger
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	repos repository.Repositories,
	storage FileStorage,
	pdf ContractPDFRenderer,
	acquirer AcquirerExporter,
	archiver DocumentArchiver,
	log *logger.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		repos: repos, storage: storage, pdf: pdf, acquirer: acquirer, archiver: archiver,
		log: log.Component("export"), now: time.Now,
	}
}

// document resuelve contrato, comercio, vínculos y agregado económico.
func (uc *ExportUseCase) document(ctx context.Context, contractID string) (ContractDocument, error) {
	doc := ContractDocument{Generated: uc.now()}
	c, err := uc.repos.Contracts.GetByID(ctx, contractID)
	if err != nil {
		return doc, err
	}
	if c == nil {
		return doc, domain.ErrNotFound
	}
	doc.Contract = c
	if doc.Costumer, err = uc.repos.Costumers.GetByID(ctx, c.CostumerID); err != nil {
		return doc, err
	}
	if doc.Costumer == nil {
		return doc, domain.ErrNotFound
	}
	poses, err := uc.repos.Contracts.ListPOS(ctx, contractID)
	if err != nil {
		return doc, err
	}
	for _, l := range poses {
		d, err := uc.repos.POS.GetDetail(ctx, l.POSID)
		if err != nil {
			return doc, err
		}
		doc.POS = append(doc.POS, ContractPOSLine{Link: l, Detail: d})
	}
	services, err := uc.repos.Contracts.ListServices(ctx, contractID)
	if err != nil {
		return doc, err
	}
	for _, l := range services {
		s, err := uc.repos.Services.GetByID(ctx, l.ServiceID)
		if err != nil {
			return doc, err
		}
		doc.Services = append(doc.Services, ContractServiceLine{Link: l, Service: s})
	}
	doc.Revenue, err = computeRevenue(ctx, uc.repos, c)
	return doc, err
}

// SummaryPDF resumen del contrato en PDF.
func (uc *ExportUseCase) SummaryPDF(ctx context.Context, contractID string) ([]byte, error) {
	doc, err := uc.document(ctx, contractID)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.RenderContractSummary(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	uc.log.Debug().Str("contract_id", contractID).Int("bytes", len(out)).Msg("resumen PDF generado")
	return out, nil
}

// AcquirerXML XML de alta ante el adquirente y su digest SHA-256 canónico.
func (uc *ExportUseCase) AcquirerXML(ctx context.Context, contractID string) ([]byte, string, error) {
	doc, err := uc.document(ctx, contractID)
	if err != nil {
		return nil, "", err
	}
	xml, digest, err := uc.acquirer.ExportOnboarding(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("export acquirer xml: %w", err)
	}
	uc.log.Info().Str("contract_id", contractID).Str("acquirer", doc.Contract.Acquirer).Str("digest", digest).Msg("XML de adquirente generado")
	return xml, digest, nil
}

// DocumentsZip empaqueta el resumen, el XML y los documentos subidos del
// contrato y de su comercio.
func (uc *ExportUseCase) DocumentsZip(ctx context.Context, contractID string) ([]byte, error) {
	doc, err := uc.document(ctx, contractID)
	if err != nil {
		return nil, err
	}
	summary, err := uc.pdf.RenderContractSummary(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	xml, _, err := uc.acquirer.ExportOnboarding(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("export acquirer xml: %w", err)
	}
	entries := []ArchiveEntry{
		memoryEntry("summary.pdf", summary),
		memoryEntry("acquirer.xml", xml),
	}
	cd, kd := doc.Contract.Documents, doc.Costumer.Documents
	stored := []struct{ name, path string }{
		{"contract/acquirer_application", cd.AcquirerApplication},
		{"contract/financial_report", cd.FinancialReport},
		{"contract/vat_return", cd.VATReturn},
		{"contract/fd_consent", cd.FDConsent},
		{"contract/credit_search", cd.CreditSearch},
		{"costumer/pob", kd.POB},
		{"costumer/kyc1_id", kd.KYC1ID},
		{"costumer/kyc2_address_proof", kd.KYC2AddressProof},
		{"costumer/kyb_premises_photo", kd.KYBPremisesPhoto},
		{"costumer/kyb_trading_address_proof", kd.KYBTradingAddressProof},
	}
	for _, s := range stored {
		if s.path == "" {
			continue
		}
		p := s.path
		entries = append(entries, ArchiveEntry{
			Name: s.name + path.Ext(p),
			Open: func() (io.ReadCloser, error) { return uc.storage.Open(ctx, p) },
		})
	}
	out, err := uc.archiver.Bundle(ctx, entries)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("contract_id", contractID).Int("entries", len(entries)).Msg("paquete de documentos generado")
	return out, nil
}

func memoryEntry(name string, b []byte) ArchiveEntry {
	return ArchiveEntry{Name: name, Open: func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}}
}
