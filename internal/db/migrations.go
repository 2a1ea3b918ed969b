package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tpc/ocean/internal/model"
)

// Both postgres and sqlite accept these statements as written.
var migrationStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_contratos_status ON contratos (status);`,
	`CREATE INDEX IF NOT EXISTS idx_servicos_status ON servicos (status);`,
	`CREATE INDEX IF NOT EXISTS idx_transacoes_data ON transacoes (data);`,
	`CREATE INDEX IF NOT EXISTS idx_usuarios_email ON usuarios (email);`,
}

// Migrate creates or updates the tables of every entity kind. Reference
// columns are indexed but carry no foreign key constraint.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
