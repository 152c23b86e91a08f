package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockFarmRepository creates a GormFarmRepository with a mocked SQL connection
func newMockFarmRepository(t *testing.T) (*GormFarmRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormFarmRepository(gormDB), mock, mockDB
}

func TestGormFarmRepository_FindByID(t *testing.T) {
	t.Run("finds existing farm", func(t *testing.T) {
		repo, mock, mockDB := newMockFarmRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "owner_id", "code", "name", "version"}).
			AddRow(farmID, ownerID, "FARM-AB12CD34", "Green Acres", 1)

		mock.ExpectQuery(`SELECT \* FROM "farms" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(farmID, 1).
			WillReturnRows(rows)

		f, err := repo.FindByID(context.Background(), farmID)

		assert.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, farmID, f.ID)
		assert.Equal(t, "Green Acres", f.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing farm", func(t *testing.T) {
		repo, mock, mockDB := newMockFarmRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "farms" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(farmID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		f, err := repo.FindByID(context.Background(), farmID)

		assert.Nil(t, f)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFarmRepository_FindByNameAndOwner(t *testing.T) {
	t.Run("finds farm by name within owner scope", func(t *testing.T) {
		repo, mock, mockDB := newMockFarmRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()
		ownerID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "owner_id", "code", "name", "version"}).
			AddRow(farmID, ownerID, "FARM-AB12CD34", "Green Acres", 1)

		mock.ExpectQuery(`SELECT \* FROM "farms" WHERE owner_id = \$1 AND name = \$2 ORDER BY .* LIMIT .*`).
			WithArgs(ownerID, "Green Acres", 1).
			WillReturnRows(rows)

		f, err := repo.FindByNameAndOwner(context.Background(), ownerID, "Green Acres")

		assert.NoError(t, err)
		require.NotNil(t, f)
		assert.Equal(t, ownerID, f.OwnerID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormFarmRepository_Delete(t *testing.T) {
	t.Run("returns not found for missing farm", func(t *testing.T) {
		repo, mock, mockDB := newMockFarmRepository(t)
		defer mockDB.Close()

		farmID := uuid.New()

		mock.ExpectExec(`DELETE FROM "farms" WHERE id = \$1`).
			WithArgs(farmID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), farmID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
