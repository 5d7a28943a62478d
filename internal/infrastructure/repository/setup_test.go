package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ClientModel{},
		&models.ServiceModel{},
		&models.AllocationModel{},
		&models.MetricModel{},
		&models.TicketModel{},
		&models.QuoteModel{},
		&models.QuoteItemModel{},
		&models.InvoiceModel{},
		&models.TemplateModel{},
		&models.ActivityModel{},
		&models.ProspectModel{},
	)
	require.NoError(t, err)

	return db
}
