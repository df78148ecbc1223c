package rules

import (
	"time"

	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ContractWindow ventana de vigencia de un contrato que referencia a un POS.
type ContractWindow struct {
	ContractID string
	LiveDate   time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// DateOnly trunca a día calendario conservando la zona del valor.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Covers indica si live_date <= day <= end_date, comparando fechas de calendario.
func (w ContractWindow) Covers(day time.Time) bool {
	d := civil(day)
	return !civil(w.LiveDate).After(d) && !d.After(civil(w.EndDate))
}

// civil normaliza a medianoche UTC del día calendario, para comparar DATE de la DB
// (UTC) con "hoy" en hora local sin desfases de zona.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ActiveContract devuelve el contrato vigente en today entre las ventanas dadas.
// Si varios contratos solapan, gana el creado más recientemente y, a igualdad,
// el de mayor ID: el resultado no depende del orden de entrada.
func ActiveContract(windows []ContractWindow, today time.Time) (string, bool) {
	var best *ContractWindow
	for i := range windows {
		w := &windows[i]
		if !w.Covers(today) {
			continue
		}
		if best == nil || w.CreatedAt.After(best.CreatedAt) ||
			(w.CreatedAt.Equal(best.CreatedAt) && w.ContractID > best.ContractID) {
			best = w
		}
	}
	if best == nil {
		return "", false
	}
	return best.ContractID, true
}

// POSStatus estado persistible derivado de las ventanas.
func POSStatus(windows []ContractWindow, today time.Time) string {
	if _, ok := ActiveContract(windows, today); ok {
		return entity.POSStatusUnavailable
	}
	return entity.POSStatusAvailable
}
