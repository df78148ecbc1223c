package entity

import "time"

// Estados de un MarketingGoal.
const (
	GoalAccepted = "A"
	GoalRejected = "R"
	GoalWaiting  = "W"
	GoalPending  = "P"
)

// GoalStatusName nombre legible del estado.
func GoalStatusName(s string) string {
	switch s {
	case GoalAccepted:
		return "Accepted"
	case GoalRejected:
		return "Rejected"
	case GoalWaiting:
		return "In Waiting Queue"
	case GoalPending:
		return "Pending"
	}
	return ""
}

// MarketingGoal prospecto comercial. Guarda por separado quién lo creó y quién lo actualizó por última vez.
type MarketingGoal struct {
	ID             string
	TradingName    string
	LegalName      string
	BusinessField  string
	LandLine       string
	TradingAddress string
	PostalCode     string
	DecisionMaker  string
	Mobile         string
	Email          string
	Website        string
	Status         string
	Note           string
	CreatedBy      *string
	LastUpdateBy   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
