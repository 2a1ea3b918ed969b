package model

import "github.com/tpc/ocean/internal/resource"

type Transaction struct {
	ID          uint64   `gorm:"primaryKey" json:"id"`
	ContractID  uint64   `gorm:"column:contrato_id;not null;index" json:"contrato_id"`
	Date        *Date    `gorm:"column:data;not null" json:"data"`
	Description string   `gorm:"column:descricao;type:text" json:"descricao"`
	Amount      *float64 `gorm:"column:valor;not null" json:"valor"`
}

func (Transaction) TableName() string { return "transacoes" }

func (t *Transaction) Overwrite(src *Transaction) {
	t.ContractID = src.ContractID
	t.Date = src.Date
	t.Description = src.Description
	t.Amount = src.Amount
}

var TransactionKind = resource.Kind[Transaction]{
	Name:        "transacoes",
	Table:       "transacoes",
	Singular:    "Transação",
	Plural:      "Transações",
	Description: "Gerenciamento de transações",
	Fields: []resource.Field[Transaction]{
		reference("contrato_id", "Contrato", "contratos", func(t *Transaction) any { return t.ContractID }),
		required("data", "Data", resource.FieldDate, func(t *Transaction) any { return t.Date }),
		optional("descricao", "Descrição", resource.FieldText, func(t *Transaction) any { return t.Description }),
		required("valor", "Valor", resource.FieldNumber, func(t *Transaction) any { return t.Amount }),
	},
	ID:        func(t *Transaction) uint64 { return t.ID },
	SetID:     func(t *Transaction, id uint64) { t.ID = id },
	Overwrite: (*Transaction).Overwrite,
}
