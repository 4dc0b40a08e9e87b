package migration

import (
	"fmt"

	"gorm.io/gorm"

	"portico/internal/infrastructure/persistence/models"
	"portico/internal/shared/logger"
)

// Manager selects and runs a migration strategy based on the runtime environment.
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager builds a manager for the given environment. Production uses
// versioned SQL scripts; everything else auto-migrates the schema.
func NewManager(environment, scriptsPath string) *Manager {
	var strategy Strategy
	if environment == "production" {
		strategy = NewGolangMigrateStrategy(scriptsPath)
	} else {
		strategy = NewGormAutoMigrateStrategy()
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Run applies pending migrations for every persisted model.
func (m *Manager) Run(db *gorm.DB) error {
	m.logger.Infow("running migrations", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db, allModels()...); err != nil {
		return fmt.Errorf("migration failed (%s): %w", m.strategy.GetName(), err)
	}
	return nil
}

// StrategyName reports which strategy the manager selected.
func (m *Manager) StrategyName() string {
	return m.strategy.GetName()
}

func allModels() []interface{} {
	return []interface{}{
		&models.PermitModel{},
		&models.VisitModel{},
		&models.ResidentModel{},
		&models.OrderModel{},
	}
}
