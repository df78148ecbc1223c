package dto

import "time"

// GoalRequest alta/edición de un prospecto.
type GoalRequest struct {
	TradingName    string `json:"trading_name"`
	LegalName      string `json:"legal_name"`
	BusinessField  string `json:"business_field"`
	LandLine       string `json:"land_line"`
	TradingAddress string `json:"trading_address"`
	PostalCode     string `json:"postal_code"`
	DecisionMaker  string `json:"decision_maker"`
	Mobile         string `json:"mobile"`
	Email          string `json:"email"`
	Website        string `json:"website"`
	Status         string `json:"status"`
	Note           string `json:"note"`
}

// GoalResponse detalle de un prospecto.
type GoalResponse struct {
	ID             string    `json:"id"`
	TradingName    string    `json:"trading_name"`
	LegalName      string    `json:"legal_name"`
	BusinessField  string    `json:"business_field"`
	LandLine       string    `json:"land_line"`
	TradingAddress string    `json:"trading_address"`
	PostalCode     string    `json:"postal_code"`
	DecisionMaker  string    `json:"decision_maker"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email"`
	Website        string    `json:"website"`
	Status         string    `json:"status"`
	StatusName     string    `json:"status_name"`
	Note           string    `json:"note"`
	CreatedBy      *string   `json:"created_by"`
	LastUpdate     *string   `json:"last_update"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
