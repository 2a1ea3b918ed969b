package model

import "github.com/tpc/ocean/internal/resource"

type Company struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:nome;size:255;not null" json:"nome"`
	CNPJ    string `gorm:"column:cnpj;size:32;not null" json:"cnpj"`
	Email   string `gorm:"column:email;size:255" json:"email"`
	Phone   string `gorm:"column:telefone;size:32" json:"telefone"`
	Address string `gorm:"column:endereco;size:255" json:"endereco"`
}

func (Company) TableName() string { return "empresas" }

func (c *Company) Overwrite(src *Company) {
	c.Name = src.Name
	c.CNPJ = src.CNPJ
	c.Email = src.Email
	c.Phone = src.Phone
	c.Address = src.Address
}

var CompanyKind = resource.Kind[Company]{
	Name:        "empresas",
	Table:       "empresas",
	Singular:    "Empresa",
	Plural:      "Empresas",
	Description: "Gerenciamento de empresas",
	Fields: []resource.Field[Company]{
		required("nome", "Nome", resource.FieldString, func(c *Company) any { return c.Name }),
		required("cnpj", "CNPJ", resource.FieldString, func(c *Company) any { return c.CNPJ }),
		optional("email", "E-mail", resource.FieldString, func(c *Company) any { return c.Email }),
		optional("telefone", "Telefone", resource.FieldString, func(c *Company) any { return c.Phone }),
		optional("endereco", "Endereço", resource.FieldString, func(c *Company) any { return c.Address }),
	},
	ID:        func(c *Company) uint64 { return c.ID },
	SetID:     func(c *Company, id uint64) { c.ID = id },
	Overwrite: (*Company).Overwrite,
}

type Institution struct {
	ID      uint64 `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"column:nome;size:255;not null" json:"nome"`
	CNPJ    string `gorm:"column:cnpj;size:32;not null" json:"cnpj"`
	Email   string `gorm:"column:email;size:255" json:"email"`
	Phone   string `gorm:"column:telefone;size:32" json:"telefone"`
	Address string `gorm:"column:endereco;size:255" json:"endereco"`
}

func (Institution) TableName() string { return "instituicoes" }

func (i *Institution) Overwrite(src *Institution) {
	i.Name = src.Name
	i.CNPJ = src.CNPJ
	i.Email = src.Email
	i.Phone = src.Phone
	i.Address = src.Address
}

var InstitutionKind = resource.Kind[Institution]{
	Name:        "instituicoes",
	Table:       "instituicoes",
	Singular:    "Instituição",
	Plural:      "Instituições",
	Description: "Gerenciamento de instituições",
	Fields: []resource.Field[Institution]{
		required("nome", "Nome", resource.FieldString, func(i *Institution) any { return i.Name }),
		required("cnpj", "CNPJ", resource.FieldString, func(i *Institution) any { return i.CNPJ }),
		optional("email", "E-mail", resource.FieldString, func(i *Institution) any { return i.Email }),
		optional("telefone", "Telefone", resource.FieldString, func(i *Institution) any { return i.Phone }),
		optional("endereco", "Endereço", resource.FieldString, func(i *Institution) any { return i.Address }),
	},
	ID:        func(i *Institution) uint64 { return i.ID },
	SetID:     func(i *Institution, id uint64) { i.ID = id },
	Overwrite: (*Institution).Overwrite,
}
