// Package acquirer genera el XML de alta de comercio que se envía al
// adquirente (Emerchant Pay o First Data) junto con su digest canónico.
//
// El digest es el SHA-256 hex de la forma canónica C14N del documento; el
// adquirente lo recalcula al recibirlo, por eso el XML no lleva marcas de tiempo
// y dos exportaciones del mismo contrato producen el mismo digest.
package acquirer

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/pos-crm-api/internal/application/usecase"
	"github.com/jhoicas/pos-crm-api/internal/domain/entity"
)

// Namespace del documento de alta.
const Namespace = "urn:poscrm:acquirer:onboarding:1"

const dateLayout = "2006-01-02"

var _ usecase.AcquirerExporter = (*Exporter)(nil)

// Exporter implementa usecase.AcquirerExporter con etree.
type Exporter struct{}

// NewExporter crea el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportOnboarding construye el XML y devuelve sus bytes y el digest canónico.
func (e *Exporter) ExportOnboarding(_ context.Context, doc usecase.ContractDocument) ([]byte, string, error) {
	if doc.Contract == nil || doc.Costumer == nil {
		return nil, "", fmt.Errorf("acquirer: documento incompleto")
	}
	d := etree.NewDocument()
	d.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := d.CreateElement("MerchantOnboarding")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("acquirer", doc.Contract.Acquirer)
	root.CreateAttr("contractId", doc.Contract.ID)

	merchantElement(root, doc.Costumer)
	agreementElement(root, doc.Contract)

	terminals := root.CreateElement("Terminals")
	for _, l := range doc.POS {
		t := terminals.CreateElement("Terminal")
		if l.Detail != nil {
			t.CreateAttr("serial", l.Detail.SerialNumber)
			t.CreateAttr("type", entity.POSTypeName(l.Detail.Type))
			t.CreateAttr("manufacturer", l.Detail.Company.Name)
			t.CreateAttr("model", l.Detail.Model.Name)
		}
		t.CreateAttr("price", l.Link.Price.StringFixed(2))
	}

	services := root.CreateElement("Services")
	for _, l := range doc.Services {
		s := services.CreateElement("Service")
		if l.Service != nil {
			s.CreateAttr("name", l.Service.Name)
		}
		s.CreateAttr("price", l.Link.Price.StringFixed(2))
	}

	d.Indent(2)
	out, err := d.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("acquirer: serializar XML: %w", err)
	}
	digest, err := Digest(out)
	if err != nil {
		return nil, "", err
	}
	return out, digest, nil
}

// Digest calcula el SHA-256 hex de la forma canónica C14N de data.
func Digest(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("acquirer: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func merchantElement(root *etree.Element, c *entity.Costumer) {
	m := root.CreateElement("Merchant")
	m.CreateAttr("id", c.ID)
	text(m, "TradingName", c.TradingName)
	text(m, "LegalName", c.LegalName)
	text(m, "LegalEntity", c.LegalEntity)
	text(m, "BusinessType", c.BusinessType)
	optional(m, "CompanyNumber", c.CompanyNumber)
	optionalDate(m, "BusinessDate", c.BusinessDate)

	addr := m.CreateElement("RegisteredAddress")
	text(addr, "Line", c.RegisteredAddress)
	text(addr, "PostalCode", c.RegisteredPostalCode)

	dir := m.CreateElement("Director")
	text(dir, "Name", c.DirectorName)
	optional(dir, "Email", c.DirectorEmail)
	optional(dir, "Phone", c.DirectorPhone)
	optionalDate(dir, "BirthDate", c.DirectorBirthDate)

	bank := m.CreateElement("Bank")
	text(bank, "Name", c.BusinessBankName)
	text(bank, "SortCode", c.SortCode)
	text(bank, "AccountNumber", c.AccountNumber)

	if c.PartnerName != nil {
		p := m.CreateElement("Partner")
		text(p, "Name", *c.PartnerName)
		if c.Shareholder != nil {
			text(p, "Shareholding", strconv.Itoa(*c.Shareholder))
		}
	}
}

func agreementElement(root *etree.Element, c *entity.Contract) {
	a := root.CreateElement("Agreement")
	text(a, "LiveDate", c.LiveDate.Format(dateLayout))
	text(a, "EndDate", c.EndDate.Format(dateLayout))
	text(a, "FaceToFaceSales", strconv.Itoa(c.FaceToFaceSales))
	text(a, "AverageTransactionValue", c.ATV.StringFixed(2))
	text(a, "AnnualCardTurnover", c.AnnualCardTurnover.StringFixed(2))
	text(a, "AnnualTotalTurnover", c.AnnualTotalTurnover.StringFixed(2))

	ids := a.CreateElement("Identifiers")
	optional(ids, "MID", c.MID)
	optional(ids, "TID", c.TID)
	optional(ids, "ECommerceMID", c.ECommerceMID)
	optional(ids, "AmexMID", c.AmexMID)

	fees := a.CreateElement("Fees")
	text(fees, "Authorization", rate(c.AuthorizationFee))
	text(fees, "PCIDSS", rate(c.PCIDSS))
	optionalRate(fees, "InterchangeVisa", c.InterchangeVisa)
	optionalRate(fees, "InterchangeMasterCard", c.InterchangeMasterCard)
	optionalRate(fees, "Amex", c.AmexFee)
}

func text(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func optional(parent *etree.Element, tag, value string) {
	if value != "" {
		text(parent, tag, value)
	}
}

func optionalDate(parent *etree.Element, tag string, t *time.Time) {
	if t != nil {
		text(parent, tag, t.Format(dateLayout))
	}
}

// rate fija 4 decimales para que el digest no dependa del formateo de float.
func rate(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(4)
}

func optionalRate(parent *etree.Element, tag string, v *float64) {
	if v != nil {
		text(parent, tag, rate(*v))
	}
}
