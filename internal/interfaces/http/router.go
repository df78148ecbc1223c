package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/pos-crm-api/internal/application/auth"
	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/pkg/jwt"
	"github.com/jhoicas/pos-crm-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PrincipalUC *usecase.PrincipalUseCase
	Catalog     CatalogUseCases
	CRM         CRMUseCases
	ExportUC    *usecase.ExportUseCase
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)
	current := CurrentPrincipal(deps.AuthUC, log)
	superuser := RequireRole(jwt.RoleSuperuser)

	// Principales
	authHandler := NewAuthHandler(deps.AuthUC, log)
	principalHandler := NewPrincipalHandler(deps.PrincipalUC, log)
	admins := api.Group("/admins")
	admins.Post("/token", authHandler.Token)
	admins.Post("/create", authMW, current, superuser, authHandler.Create)
	admins.Get("/list", authMW, current, superuser, principalHandler.List)
	admins.Get("/me", authMW, current, authHandler.Me)
	admins.Patch("/me", authMW, current, authHandler.UpdateMe)
	admins.Post("/me/changepassword", authMW, current, authHandler.ChangePassword)
	admins.Post("/me/picture", authMW, current, authHandler.UploadPicture)
	admins.Get("/profile/:id", authMW, current, principalHandler.Profile)
	admins.Post("/promote/:id", authMW, current, superuser, principalHandler.Promote)
	admins.Post("/deactive/:id", authMW, current, superuser, principalHandler.Deactivate)
	admins.Put("/:id/staff", authMW, current, superuser, principalHandler.SetStaff)
	admins.Put("/:id/active", authMW, current, superuser, principalHandler.SetActive)
	admins.Delete("/:id", authMW, current, superuser, principalHandler.Delete)

	// CRM (protegido)
	crm := api.Group("/crm", authMW, current)

	catalog := NewCatalogHandler(deps.Catalog, log)
	crm.Get("/countries", catalog.ListCountries)
	crm.Post("/countries", catalog.CreateCountry)
	crm.Delete("/countries/:id", catalog.DeleteCountry)
	crm.Post("/countries/:id/coverage", catalog.ToggleCoverage)
	crm.Put("/countries/:id/coverage", catalog.SetCoverage)
	crm.Get("/is-used/country/:id", catalog.CountryIsUsed)

	crm.Get("/companies", catalog.ListCompanies)
	crm.Post("/companies", catalog.CreateCompany)
	crm.Patch("/companies/:id", catalog.UpdateCompany)
	crm.Delete("/companies/:id", catalog.DeleteCompany)
	crm.Get("/company/:id/models", catalog.CompanyModels)
	crm.Get("/is-used/company/:id", catalog.CompanyIsUsed)

	crm.Get("/posmodels", catalog.ListModels)
	crm.Post("/posmodels", catalog.CreateModel)
	crm.Patch("/posmodels/:id", catalog.UpdateModel)
	crm.Delete("/posmodels/:id", catalog.DeleteModel)
	crm.Get("/is-used/model/:id", catalog.ModelIsUsed)

	crm.Get("/poses", catalog.ListPOS)
	crm.Post("/poses", catalog.CreatePOS)
	crm.Get("/poses/:id", catalog.GetPOS)
	crm.Patch("/poses/:id", catalog.UpdatePOS)
	crm.Delete("/poses/:id", catalog.DeletePOS)
	crm.Post("/pos-active/:id", catalog.TogglePOSActive)
	crm.Put("/poses/:id/active", catalog.SetPOSActive)
	crm.Get("/is-used/pos/:id", catalog.POSIsUsed)

	crm.Get("/services", catalog.ListServices)
	crm.Post("/services", catalog.CreateService)
	crm.Patch("/services/:id", catalog.UpdateService)
	crm.Delete("/services/:id", catalog.DeleteService)
	crm.Post("/services/:id/availability", catalog.ToggleAvailability)
	crm.Put("/services/:id/availability", catalog.SetAvailability)
	crm.Get("/is-used/service/:id", catalog.ServiceIsUsed)

	h := NewCRMHandler(deps.CRM, log)
	crm.Get("/goals", h.ListGoals)
	crm.Post("/goals", h.CreateGoal)
	crm.Get("/goals/:id", h.GetGoal)
	crm.Patch("/goals/:id", h.UpdateGoal)
	crm.Delete("/goals/:id", h.DeleteGoal)

	crm.Post("/customers", h.CreateCostumer)
	crm.Get("/customers/:id", h.GetCostumer)
	crm.Patch("/customers/:id", h.UpdateCostumer)
	crm.Get("/allcustomers", h.ListCostumers)
	crm.Post("/customer/:id/address", h.AddAddresses)
	crm.Get("/customer/:id/files", h.CostumerFiles)
	crm.Put("/customer/:id/files", h.UpdateCostumerFiles)

	crm.Get("/contracts", h.ListContracts)
	crm.Post("/contracts", h.CreateContract)
	crm.Get("/contracts/:id", h.GetContract)
	crm.Patch("/contracts/:id", h.UpdateContract)
	crm.Get("/contract/:id/files", h.ContractFiles)
	crm.Put("/contract/:id/files", h.UpdateContractFiles)
	crm.Post("/contract/:id/solutions", h.AttachSolutions)
	crm.Get("/contracts/:id/pos", h.ListContractPOS)
	crm.Post("/contracts/:id/pos", h.AddContractPOS)
	crm.Get("/contracts/:id/service", h.ListContractServices)
	crm.Post("/contracts/:id/service", h.AddContractService)
	crm.Patch("/contract-pos/:id", h.UpdateContractPOS)
	crm.Patch("/contract-service/:id", h.UpdateContractService)

	crm.Get("/contracts/:id/paperroll", h.ListPaperRolls)
	crm.Post("/contracts/:id/paperroll", h.CreatePaperRoll)
	crm.Delete("/contracts/:id/paperroll/:item", h.DeletePaperRoll)
	crm.Get("/contracts/:id/payment", h.ListPayments)
	crm.Post("/contracts/:id/payment", h.CreatePayment)
	crm.Delete("/contracts/:id/payment/:item", h.DeletePayment)
	crm.Get("/contracts/:id/mid", h.ListMIDRevenues)
	crm.Post("/contracts/:id/mid", h.CreateMIDRevenue)
	crm.Delete("/contracts/:id/mid/:item", h.DeleteMIDRevenue)
	crm.Get("/contracts/:id/revenue", h.Revenue)

	exports := NewExportHandler(deps.ExportUC, log)
	crm.Get("/contracts/:id/summary.pdf", exports.SummaryPDF)
	crm.Get("/contracts/:id/acquirer.xml", exports.AcquirerXML)
	crm.Get("/contracts/:id/documents.zip", exports.DocumentsZip)
}
