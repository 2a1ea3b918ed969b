package model

import "github.com/tpc/ocean/internal/resource"

// CompanyProfile links a user to a company.
type CompanyProfile struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	UserID    uint64 `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	CompanyID uint64 `gorm:"column:empresa_id;not null;index" json:"empresa_id"`
}

func (CompanyProfile) TableName() string { return "perfis_empresa" }

func (p *CompanyProfile) Overwrite(src *CompanyProfile) {
	p.UserID = src.UserID
	p.CompanyID = src.CompanyID
}

var CompanyProfileKind = resource.Kind[CompanyProfile]{
	Name:        "perfil-empresa",
	Table:       "perfis_empresa",
	Singular:    "Perfil de empresa",
	Plural:      "Perfis de empresas",
	Description: "Gerenciamento de perfis de empresas",
	Fields: []resource.Field[CompanyProfile]{
		reference("usuario_id", "Usuário", "usuarios", func(p *CompanyProfile) any { return p.UserID }),
		reference("empresa_id", "Empresa", "empresas", func(p *CompanyProfile) any { return p.CompanyID }),
	},
	ID:        func(p *CompanyProfile) uint64 { return p.ID },
	SetID:     func(p *CompanyProfile, id uint64) { p.ID = id },
	Overwrite: (*CompanyProfile).Overwrite,
}

// InstitutionProfile links a user to an institution.
type InstitutionProfile struct {
	ID            uint64 `gorm:"primaryKey" json:"id"`
	UserID        uint64 `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	InstitutionID uint64 `gorm:"column:instituicao_id;not null;index" json:"instituicao_id"`
}

func (InstitutionProfile) TableName() string { return "perfis_instituicao" }

func (p *InstitutionProfile) Overwrite(src *InstitutionProfile) {
	p.UserID = src.UserID
	p.InstitutionID = src.InstitutionID
}

var InstitutionProfileKind = resource.Kind[InstitutionProfile]{
	Name:        "perfil-instituicao",
	Table:       "perfis_instituicao",
	Singular:    "Perfil de instituição",
	Plural:      "Perfis de instituições",
	Description: "Gerenciamento de perfis de instituições",
	Fields: []resource.Field[InstitutionProfile]{
		reference("usuario_id", "Usuário", "usuarios", func(p *InstitutionProfile) any { return p.UserID }),
		reference("instituicao_id", "Instituição", "instituicoes", func(p *InstitutionProfile) any { return p.InstitutionID }),
	},
	ID:        func(p *InstitutionProfile) uint64 { return p.ID },
	SetID:     func(p *InstitutionProfile, id uint64) { p.ID = id },
	Overwrite: (*InstitutionProfile).Overwrite,
}
