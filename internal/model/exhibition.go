package model

import "github.com/tpc/ocean/internal/resource"

type Exhibition struct {
	ID            uint64   `gorm:"primaryKey" json:"id"`
	TransactionID uint64   `gorm:"column:transacao_id;not null;index" json:"transacao_id"`
	Description   string   `gorm:"column:descricao;type:text;not null" json:"descricao"`
	ShownAt       *Date    `gorm:"column:data_exibicao" json:"data_exibicao"`
	Amount        *float64 `gorm:"column:valor" json:"valor"`
}

func (Exhibition) TableName() string { return "exibicoes" }

func (e *Exhibition) Overwrite(src *Exhibition) {
	e.TransactionID = src.TransactionID
	e.Description = src.Description
	e.ShownAt = src.ShownAt
	e.Amount = src.Amount
}

var ExhibitionKind = resource.Kind[Exhibition]{
	Name:        "exibicoes",
	Table:       "exibicoes",
	Singular:    "Exibição",
	Plural:      "Exibições",
	Description: "Gerenciamento de exibições",
	Fields: []resource.Field[Exhibition]{
		reference("transacao_id", "Transação", "transacoes", func(e *Exhibition) any { return e.TransactionID }),
		required("descricao", "Descrição", resource.FieldText, func(e *Exhibition) any { return e.Description }),
		optional("data_exibicao", "Data de exibição", resource.FieldDate, func(e *Exhibition) any { return e.ShownAt }),
		optional("valor", "Valor", resource.FieldNumber, func(e *Exhibition) any { return e.Amount }),
	},
	ID:        func(e *Exhibition) uint64 { return e.ID },
	SetID:     func(e *Exhibition, id uint64) { e.ID = id },
	Overwrite: (*Exhibition).Overwrite,
}
