package usecase

import (
	"github.com/jhoicas/pos-crm-api/internal/application/dto"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

func toCountryResponse(c *entity.Country) dto.CountryResponse {
	return dto.CountryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Code:         c.Code,
		Abbreviation: c.Abbreviation,
		IsCovered:    c.IsCovered,
	}
}

func toNationality(c *entity.Country) *dto.NationalityResponse {
	if c == nil {
		return nil
	}
	return &dto.NationalityResponse{ID: c.ID, Name: c.Name, Abbreviation: c.Abbreviation}
}

func toPOSCompanyResponse(c *entity.POSCompany, modelCount int) *dto.POSCompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.POSCompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		SerialNumberLength: c.SerialNumberLength,
		ModelCount:         modelCount,
		CreatedBy:          c.CreatedBy,
	}
}

func toPosModelResponse(m *entity.PosModel, company *entity.POSCompany) *dto.PosModelResponse {
	out := &dto.PosModelResponse{
		ID:           m.ID,
		Name:         m.Name,
		HardwareCost: m.HardwareCost,
		SoftwareCost: m.SoftwareCost,
		Price:        m.Price,
		CreatedBy:    m.CreatedBy,
	}
	if company != nil && company.ID != "" {
		out.Company = toPOSCompanyResponse(company, 0)
	}
	return out
}

func toPOSResponse(d *entity.POSDetail) *dto.POSResponse {
	out := &dto.POSResponse{
		ID:           d.ID,
		SerialNumber: d.SerialNumber,
		Type:         d.Type,
		TypeName:     entity.POSTypeName(d.Type),
		Note:         d.Note,
		Ownership:    d.Ownership,
		IsActive:     d.IsActive,
		Status:       d.Status,
		ContractID:   d.ContractID,
		CreatedBy:    d.CreatedBy,
		CreatedAt:    d.CreatedAt,
	}
	if d.Model.ID != "" {
		out.Model = toPosModelResponse(&d.Model, &d.Company)
	}
	return out
}

func toServiceResponse(s *entity.VirtualService) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:           s.ID,
		Name:         s.Name,
		Price:        s.Price,
		Cost:         s.Cost,
		Availability: s.Availability,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

func toGoalResponse(g *entity.MarketingGoal) dto.GoalResponse {
	return dto.GoalResponse{
		ID:             g.ID,
		TradingName:    g.TradingName,
		LegalName:      g.LegalName,
		BusinessField:  g.BusinessField,
		LandLine:       g.LandLine,
		TradingAddress: g.TradingAddress,
		PostalCode:     g.PostalCode,
		DecisionMaker:  g.DecisionMaker,
		Mobile:         g.Mobile,
		Email:          g.Email,
		Website:        g.Website,
		Status:         g.Status,
		StatusName:     entity.GoalStatusName(g.Status),
		Note:           g.Note,
		CreatedBy:      g.CreatedBy,
		LastUpdate:     g.LastUpdateBy,
		CreatedAt:      g.CreatedAt,
		UpdatedAt:      g.UpdatedAt,
	}
}

func goalToRequest(g *entity.MarketingGoal) dto.GoalRequest {
	return dto.GoalRequest{
		TradingName:    g.TradingName,
		LegalName:      g.LegalName,
		BusinessField:  g.BusinessField,
		LandLine:       g.LandLine,
		TradingAddress: g.TradingAddress,
		PostalCode:     g.PostalCode,
		DecisionMaker:  g.DecisionMaker,
		Mobile:         g.Mobile,
		Email:          g.Email,
		Website:        g.Website,
		Status:         g.Status,
		Note:           g.Note,
	}
}

func applyGoalRequest(g *entity.MarketingGoal, in dto.GoalRequest) {
	g.TradingName = in.TradingName
	g.LegalName = in.LegalName
	g.BusinessField = in.BusinessField
	g.LandLine = in.LandLine
	g.TradingAddress = in.TradingAddress
	g.PostalCode = in.PostalCode
	g.DecisionMaker = in.DecisionMaker
	g.Mobile = in.Mobile
	g.Email = in.Email
	g.Website = in.Website
	g.Status = in.Status
	g.Note = in.Note
}

func costumerToRequest(c *entity.Costumer) dto.CostumerRequest {
	return dto.CostumerRequest{
		TradingName:           c.TradingName,
		LegalName:             c.LegalName,
		BusinessType:          c.BusinessType,
		LegalEntity:           c.LegalEntity,
		BusinessDate:          dto.DatePtr(c.BusinessDate),
		RegisteredAddress:     c.RegisteredAddress,
		RegisteredPostalCode:  c.RegisteredPostalCode,
		CountryID:             c.CountryID,
		RegisteredCountryID:   c.RegisteredCountryID,
		BusinessPostalCode:    c.BusinessPostalCode,
		CompanyNumber:         c.CompanyNumber,
		CompanyMobile:         c.CompanyMobile,
		LandLine:              c.LandLine,
		BusinessEmail:         c.BusinessEmail,
		Website:               c.Website,
		DirectorName:          c.DirectorName,
		DirectorPhone:         c.DirectorPhone,
		DirectorEmail:         c.DirectorEmail,
		DirectorAddress:       c.DirectorAddress,
		DirectorPostalCode:    c.DirectorPostalCode,
		DirectorNationalityID: c.DirectorNationalityID,
		DirectorBirthDate:     dto.DatePtr(c.DirectorBirthDate),
		Note:                  c.Note,
		SortCode:              c.SortCode,
		IssuingBank:           c.IssuingBank,
		AccountNumber:         c.AccountNumber,
		BusinessBankName:      c.BusinessBankName,
		PartnerName:           c.PartnerName,
		PartnerAddress:        c.PartnerAddress,
		PartnerNationalityID:  c.PartnerNationalityID,
		Shareholder:           c.Shareholder,
	}
}

func applyCostumerRequest(c *entity.Costumer, in dto.CostumerRequest) {
	c.TradingName = in.TradingName
	c.LegalName = in.LegalName
	c.BusinessType = in.BusinessType
	c.LegalEntity = in.LegalEntity
	c.BusinessDate = in.BusinessDate.TimePtr()
	c.RegisteredAddress = in.RegisteredAddress
	c.RegisteredPostalCode = in.RegisteredPostalCode
	c.CountryID = in.CountryID
	c.RegisteredCountryID = in.RegisteredCountryID
	c.BusinessPostalCode = in.BusinessPostalCode
	c.CompanyNumber = in.CompanyNumber
	c.CompanyMobile = in.CompanyMobile
	c.LandLine = in.LandLine
	c.BusinessEmail = in.BusinessEmail
	c.Website = in.Website
	c.DirectorName = in.DirectorName
	c.DirectorPhone = in.DirectorPhone
	c.DirectorEmail = in.DirectorEmail
	c.DirectorAddress = in.DirectorAddress
	c.DirectorPostalCode = in.DirectorPostalCode
	c.DirectorNationalityID = in.DirectorNationalityID
	c.DirectorBirthDate = in.DirectorBirthDate.TimePtr()
	c.Note = in.Note
	c.SortCode = in.SortCode
	c.IssuingBank = in.IssuingBank
	c.AccountNumber = in.AccountNumber
	c.BusinessBankName = in.BusinessBankName
	c.PartnerName = in.PartnerName
	c.PartnerAddress = in.PartnerAddress
	c.PartnerNationalityID = in.PartnerNationalityID
	c.Shareholder = in.Shareholder
}

func contractToRequest(c *entity.Contract) dto.ContractRequest {
	return dto.ContractRequest{
		CostumerID:            c.CostumerID,
		FaceToFaceSales:       c.FaceToFaceSales,
		ATV:                   c.ATV,
		AnnualCardTurnover:    c.AnnualCardTurnover,
		AnnualTotalTurnover:   c.AnnualTotalTurnover,
		InterchangeVisa:       c.InterchangeVisa,
		InterchangeMasterCard: c.InterchangeMasterCard,
		AuthorizationFee:      c.AuthorizationFee,
		PCIDSS:                c.PCIDSS,
		AmexFee:               c.AmexFee,
		Acquirer:              c.Acquirer,
		MID:                   c.MID,
		ECommerceMID:          c.ECommerceMID,
		AmexMID:               c.AmexMID,
		TID:                   c.TID,
		PCIDueDate:            dto.DatePtr(c.PCIDueDate),
		LiveDate:              dto.NewDate(c.LiveDate),
		EndDate:               dto.NewDate(c.EndDate),
		ECommerceLiveDate:     dto.DatePtr(c.ECommerceLiveDate),
		ECommerceEndDate:      dto.DatePtr(c.ECommerceEndDate),
		TotalCost:             c.TotalCost,
		TotalPrice:            c.TotalPrice,
	}
}

func applyContractRequest(c *entity.Contract, in dto.ContractRequest) {
	c.CostumerID = in.CostumerID
	c.FaceToFaceSales = in.FaceToFaceSales
	c.ATV = in.ATV
	c.AnnualCardTurnover = in.AnnualCardTurnover
	c.AnnualTotalTurnover = in.AnnualTotalTurnover
	c.InterchangeVisa = in.InterchangeVisa
	c.InterchangeMasterCard = in.InterchangeMasterCard
	c.AuthorizationFee = in.AuthorizationFee
	c.PCIDSS = in.PCIDSS
	c.AmexFee = in.AmexFee
	c.Acquirer = in.Acquirer
	c.MID = in.MID
	c.ECommerceMID = in.ECommerceMID
	c.AmexMID = in.AmexMID
	c.TID = in.TID
	c.PCIDueDate = in.PCIDueDate.TimePtr()
	c.LiveDate = in.LiveDate.Time
	c.EndDate = in.EndDate.Time
	c.ECommerceLiveDate = in.ECommerceLiveDate.TimePtr()
	c.ECommerceEndDate = in.ECommerceEndDate.TimePtr()
	c.TotalCost = in.TotalCost
	c.TotalPrice = in.TotalPrice
}

func toContractResponse(c *entity.Contract) *dto.ContractResponse {
	return &dto.ContractResponse{
		ID:                    c.ID,
		CostumerID:            c.CostumerID,
		FaceToFaceSales:       c.FaceToFaceSales,
		ATV:                   c.ATV,
		AnnualCardTurnover:    c.AnnualCardTurnover,
		AnnualTotalTurnover:   c.AnnualTotalTurnover,
		InterchangeVisa:       c.InterchangeVisa,
		InterchangeMasterCard: c.InterchangeMasterCard,
		AuthorizationFee:      c.AuthorizationFee,
		PCIDSS:                c.PCIDSS,
		AmexFee:               c.AmexFee,
		Acquirer:              c.Acquirer,
		AcquirerName:          entity.AcquirerName(c.Acquirer),
		MID:                   c.MID,
		ECommerceMID:          c.ECommerceMID,
		AmexMID:               c.AmexMID,
		TID:                   c.TID,
		PCIDueDate:            dto.DatePtr(c.PCIDueDate),
		LiveDate:              dto.NewDate(c.LiveDate),
		EndDate:               dto.NewDate(c.EndDate),
		ECommerceLiveDate:     dto.DatePtr(c.ECommerceLiveDate),
		ECommerceEndDate:      dto.DatePtr(c.ECommerceEndDate),
		TotalCost:             c.TotalCost,
		TotalPrice:            c.TotalPrice,
		CreatedAt:             c.CreatedAt,
	}
}

func toContractServiceResponse(l *entity.ContractService, serviceName string) dto.ContractServiceResponse {
	return dto.ContractServiceResponse{
		ID:          l.ID,
		ServiceID:   l.ServiceID,
		Price:       l.Price,
		Cost:        l.Cost,
		ServiceName: serviceName,
	}
}

func toContractPOSResponse(l *entity.ContractPOS, detail *entity.POSDetail) dto.ContractPOSResponse {
	out := dto.ContractPOSResponse{
		ID:           l.ID,
		POSID:        l.POSID,
		Price:        l.Price,
		HardwareCost: l.HardwareCost,
		SoftwareCost: l.SoftwareCost,
	}
	if detail != nil {
		out.POSDetail = toPOSResponse(detail)
	}
	return out
}
