package rules

import (
	"github.com/jhoicas/pos-crm-api/internal/domain"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// ValidateContract compuerta de escritura de Contract.
func ValidateContract(c *entity.Contract) error {
	if c.CostumerID == "" {
		return domain.NewValidationError("costumer", "es requerido")
	}
	if err := ValidatePercent("face_to_face_sales", c.FaceToFaceSales); err != nil {
		return err
	}
	if entity.AcquirerName(c.Acquirer) == "" {
		return domain.NewValidationError("acquirer", "debe ser EP o FD")
	}
	if c.LiveDate.IsZero() || c.EndDate.IsZero() {
		return domain.NewValidationError("live_date", "live_date y end_date son requeridos")
	}
	if civil(c.EndDate).Before(civil(c.LiveDate)) {
		return &domain.ValidationError{Field: "end_date", Rule: "contract_window", Message: "no puede ser anterior a live_date"}
	}
	if c.ECommerceLiveDate != nil && c.ECommerceEndDate != nil &&
		civil(*c.ECommerceEndDate).Before(civil(*c.ECommerceLiveDate)) {
		return &domain.ValidationError{Field: "e_commerce_end_date", Rule: "contract_window", Message: "no puede ser anterior a e_commerce_live_date"}
	}
	return nil
}
