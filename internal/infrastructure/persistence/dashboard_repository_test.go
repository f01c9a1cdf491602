package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormDashboardRepository_CountEntities(t *testing.T) {
	t.Run("counts active master data and all documents", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormDashboardRepository(db)

		tenantID := uuid.New()

		countRow := func(n int64) *sqlmock.Rows {
			return sqlmock.NewRows([]string{"count"}).AddRow(n)
		}

		// Deactivated customers, suppliers, products and employees stay
		// out of the dashboard counts
		mock.ExpectQuery(`SELECT count\(\*\) FROM "customers" WHERE tenant_id = \$1 AND is_active = \$2`).
			WithArgs(tenantID, true).
			WillReturnRows(countRow(12))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "suppliers" WHERE tenant_id = \$1 AND is_active = \$2`).
			WithArgs(tenantID, true).
			WillReturnRows(countRow(4))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE tenant_id = \$1 AND is_active = \$2`).
			WithArgs(tenantID, true).
			WillReturnRows(countRow(30))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "employees" WHERE tenant_id = \$1 AND is_active = \$2`).
			WithArgs(tenantID, true).
			WillReturnRows(countRow(7))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "invoices" WHERE tenant_id = \$1`).
			WithArgs(tenantID).
			WillReturnRows(countRow(55))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "purchase_orders" WHERE tenant_id = \$1`).
			WithArgs(tenantID).
			WillReturnRows(countRow(21))

		counts, err := repo.CountEntities(context.Background(), tenantID)

		require.NoError(t, err)
		assert.Equal(t, int64(12), counts.Customers)
		assert.Equal(t, int64(4), counts.Suppliers)
		assert.Equal(t, int64(30), counts.Products)
		assert.Equal(t, int64(7), counts.Employees)
		assert.Equal(t, int64(55), counts.Invoices)
		assert.Equal(t, int64(21), counts.PurchaseOrders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormDashboardRepository_RecentTransactions(t *testing.T) {
	t.Run("orders by creation time so backdated entries surface", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormDashboardRepository(db)

		tenantID := uuid.New()

		rows := sqlmock.NewRows([]string{"transaction_id", "date", "description", "amount", "type", "status"}).
			AddRow(uuid.New(), time.Now().AddDate(0, 0, -30), "Backdated rent entry", "15000.00", "DEBIT", "COMPLETED").
			AddRow(uuid.New(), time.Now(), "Invoice payment", "42000.00", "CREDIT", "COMPLETED")

		mock.ExpectQuery(`SELECT id AS transaction_id, date, description, amount, type, status FROM "transactions" WHERE tenant_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
			WithArgs(tenantID, 10).
			WillReturnRows(rows)

		transactions, err := repo.RecentTransactions(context.Background(), tenantID, 10)

		require.NoError(t, err)
		require.Len(t, transactions, 2)
		assert.Equal(t, "Backdated rent entry", transactions[0].Description)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
