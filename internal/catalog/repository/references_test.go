package repository

import (
	"errors"
	"os"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("catalog-test", false)
	os.Exit(m.Run())
}

func newMockChecker(t *testing.T) (*GormReferenceChecker, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	return NewGormReferenceChecker(db), mock
}

func expectHasTable(mock sqlmock.Sqlmock, exists bool) {
	count := 0
	if exists {
		count = 1
	}
	mock.ExpectQuery(`information_schema\.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func expectRefCount(mock sqlmock.Sqlmock, table string, count int64) {
	mock.ExpectQuery(`SELECT count\(\*\) FROM "` + table + `"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestCheckReferencesSkipsAbsentTables(t *testing.T) {
	checker, mock := newMockChecker(t)

	// cart_items does not exist in this deployment; its count is never queried.
	expectHasTable(mock, true)
	expectRefCount(mock, "order_details", 2)
	expectHasTable(mock, false)
	expectHasTable(mock, true)
	expectRefCount(mock, "inventory_logs", 0)

	blocking := checker.CheckReferences(1)

	assert.Equal(t, []domain.BlockingTable{
		{Table: "order_details", Count: 2, Description: "order records"},
	}, blocking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckReferencesTreatsCountErrorAsZero(t *testing.T) {
	checker, mock := newMockChecker(t)

	expectHasTable(mock, true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "order_details"`).
		WillReturnError(errors.New("permission denied for table order_details"))
	expectHasTable(mock, true)
	expectRefCount(mock, "cart_items", 1)
	expectHasTable(mock, true)
	expectRefCount(mock, "inventory_logs", 0)

	blocking := checker.CheckReferences(1)

	assert.Equal(t, []domain.BlockingTable{
		{Table: "cart_items", Count: 1, Description: "shopping cart items"},
	}, blocking)
	assert.NoError(t, mock.ExpectationsWereMet())
}
