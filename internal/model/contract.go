package model

import "github.com/tpc/ocean/internal/resource"

type Contract struct {
	ID           uint64   `gorm:"primaryKey" json:"id"`
	CompanyID    uint64   `gorm:"column:empresa_id;not null;index" json:"empresa_id"`
	ContractType string   `gorm:"column:tipo_contrato;size:64;not null" json:"tipo_contrato"`
	StartDate    *Date    `gorm:"column:data_inicio;not null" json:"data_inicio"`
	EndDate      *Date    `gorm:"column:data_fim" json:"data_fim"`
	Amount       *float64 `gorm:"column:valor" json:"valor"`
	Status       string   `gorm:"column:status;size:64;not null" json:"status"`
}

func (Contract) TableName() string { return "contratos" }

func (c *Contract) Overwrite(src *Contract) {
	c.CompanyID = src.CompanyID
	c.ContractType = src.ContractType
	c.StartDate = src.StartDate
	c.EndDate = src.EndDate
	c.Amount = src.Amount
	c.Status = src.Status
}

var ContractKind = resource.Kind[Contract]{
	Name:        "contratos",
	Table:       "contratos",
	Singular:    "Contrato",
	Plural:      "Contratos",
	Description: "Gerenciamento de contratos",
	Fields: []resource.Field[Contract]{
		reference("empresa_id", "Empresa", "empresas", func(c *Contract) any { return c.CompanyID }),
		required("tipo_contrato", "Tipo de contrato", resource.FieldString, func(c *Contract) any { return c.ContractType }),
		required("data_inicio", "Início", resource.FieldDate, func(c *Contract) any { return c.StartDate }),
		optional("data_fim", "Fim", resource.FieldDate, func(c *Contract) any { return c.EndDate }),
		optional("valor", "Valor", resource.FieldNumber, func(c *Contract) any { return c.Amount }),
		required("status", "Status", resource.FieldString, func(c *Contract) any { return c.Status }),
	},
	ID:        func(c *Contract) uint64 { return c.ID },
	SetID:     func(c *Contract, id uint64) { c.ID = id },
	Overwrite: (*Contract).Overwrite,
}
