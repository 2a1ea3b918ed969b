package model

import (
	"time"

	"github.com/tpc/ocean/internal/resource"
)

// Table is a rendered listing handed to the export generators.
type Table struct {
	Kind        string
	Title       string
	Headers     []string
	Rows        [][]string
	GeneratedAt time.Time
}

// Models lists every persisted type, in dependency order.
func Models() []any {
	return []any{
		&Company{},
		&Institution{},
		&User{},
		&Contract{},
		&Service{},
		&Transaction{},
		&Exhibition{},
		&CompanyProfile{},
		&InstitutionProfile{},
	}
}

// Specs describes every kind served by the API, in route order.
func Specs() []resource.Spec {
	return []resource.Spec{
		CompanyKind.Spec(),
		InstitutionKind.Spec(),
		ContractKind.Spec(),
		ServiceKind.Spec(),
		TransactionKind.Spec(),
		ExhibitionKind.Spec(),
		UserKind.Spec(),
		CompanyProfileKind.Spec(),
		InstitutionProfileKind.Spec(),
	}
}
