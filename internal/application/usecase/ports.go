package usecase

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
	"github.com/jhoicas/pos-crm-api/internal/domain/repository"
	"github.com/jhoicas/pos-crm-api/pkg/metrics"
)

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}

// ReferenceCache caché de listados de referencia (países, fabricantes).
// Get devuelve false si la clave no existe.
type ReferenceCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	Delete(ctx context.Context, keys ...string) error
}

// Claves de caché.
const (
	CacheKeyCountries    = "countries"
	CacheKeyPOSCompanies = "pos_companies"
)

// Carpetas de almacenamiento de archivos subidos.
const (
	FolderUser      = "uploads/user"
	FolderContracts = "uploads/contracts"
)

// FileStorage almacenamiento de archivos subidos. Save devuelve la ruta relativa
// guardada en la entidad; URL la convierte en la URL pública.
type FileStorage interface {
	Save(ctx context.Context, folder, originalName string, r io.Reader) (string, error)
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	URL(path string) string
}

// Upload archivo recibido en un formulario multipart; el handler cierra Reader.
type Upload struct {
	Name   string
	Reader io.Reader
}

// ContractDocument datos resueltos de un contrato para exportaciones.
type ContractDocument struct {
	Contract  *entity.Contract
	Costumer  *entity.Costumer
	POS       []ContractPOSLine
	Services  []ContractServiceLine
	Revenue   dto.RevenueResponse
	Generated time.Time
}

// ContractPOSLine POS vinculado con su detalle de catálogo.
type ContractPOSLine struct {
	Link   *entity.ContractPOS
	Detail *entity.POSDetail
}

// ContractServiceLine servicio vinculado con su nombre.
type ContractServiceLine struct {
	Link    *entity.ContractService
	Service *entity.VirtualService
}

// ContractPDFRenderer genera el resumen PDF de un contrato.
type ContractPDFRenderer interface {
	RenderContractSummary(ctx context.Context, doc ContractDocument) ([]byte, error)
}

// AcquirerExporter genera el XML de alta ante el adquirente y su digest canónico (hex SHA-256).
type AcquirerExporter interface {
	ExportOnboarding(ctx context.Context, doc ContractDocument) (xml []byte, digest string, err error)
}

// ArchiveEntry archivo a incluir en un paquete; Open se invoca al escribirlo.
type ArchiveEntry struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// DocumentArchiver empaqueta documentos en un único archivo comprimido.
type DocumentArchiver interface {
	Bundle(ctx context.Context, entries []ArchiveEntry) ([]byte, error)
}

// rejected contabiliza en métricas los rechazos por regla y devuelve err sin cambios.
func rejected(m *metrics.Metrics, err error) error {
	if ve, ok := domain.AsValidation(err); ok {
		m.RecordValidation(ve.Rule)
	}
	return err
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
