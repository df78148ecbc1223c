package repository

// Repositories agrupa los puertos atados a una misma conexión o transacción.
type Repositories struct {
	Principals PrincipalRepository
	Countries  CountryRepository
	Companies  POSCompanyRepository
	Models     PosModelRepository
	POS        POSRepository
	Services   VirtualServiceRepository
	Goals      MarketingGoalRepository
	Costumers  CostumerRepository
	Contracts  ContractRepository
	Ledger     LedgerRepository
}
