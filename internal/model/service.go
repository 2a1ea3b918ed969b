package model

import "github.com/tpc/ocean/internal/resource"

// Service is a service rendered by a company. Not to be confused with the
// service layer.
type Service struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	CompanyID   uint64 `gorm:"column:empresa_id;not null;index" json:"empresa_id"`
	Description string `gorm:"column:descricao;type:text;not null" json:"descricao"`
	ServiceDate *Date  `gorm:"column:data_servico" json:"data_servico"`
	Status      string `gorm:"column:status;size:64;not null" json:"status"`
}

func (Service) TableName() string { return "servicos" }

func (s *Service) Overwrite(src *Service) {
	s.CompanyID = src.CompanyID
	s.Description = src.Description
	s.ServiceDate = src.ServiceDate
	s.Status = src.Status
}

var ServiceKind = resource.Kind[Service]{
	Name:        "servicos",
	Table:       "servicos",
	Singular:    "Serviço",
	Plural:      "Serviços",
	Description: "Gerenciamento de serviços",
	Fields: []resource.Field[Service]{
		reference("empresa_id", "Empresa", "empresas", func(s *Service) any { return s.CompanyID }),
		required("descricao", "Descrição", resource.FieldText, func(s *Service) any { return s.Description }),
		optional("data_servico", "Data do serviço", resource.FieldDate, func(s *Service) any { return s.ServiceDate }),
		required("status", "Status", resource.FieldString, func(s *Service) any { return s.Status }),
	},
	ID:        func(s *Service) uint64 { return s.ID },
	SetID:     func(s *Service, id uint64) { s.ID = id },
	Overwrite: (*Service).Overwrite,
}
