package product_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
	productrepo "github.com/muhammadheryan/stock-ledger/repository/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (productrepo.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return productrepo.NewProductRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestSQL_GetByColorAndName(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE color = ? AND product_name = ?")).
		WithArgs("red", "Chair").
		WillReturnRows(sqlmock.NewRows([]string{"product_code", "color", "product_name"}).AddRow("P-100", "red", "Chair"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE color = ? AND product_name = ?")).
		WithArgs("blue", "Chair").
		WillReturnRows(sqlmock.NewRows([]string{"product_code", "color", "product_name"}))

	got, err := repo.GetByColorAndName(context.Background(), "red", "Chair")
	require.NoError(t, err)
	assert.Equal(t, &model.Product{ProductCode: "P-100", Color: "red", ProductName: "Chair"}, got)

	got, err = repo.GetByColorAndName(context.Background(), "blue", "Chair")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_List(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM products")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs(5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"product_code", "color", "product_name"}).
			AddRow("P-106", "red", "Chair").
			AddRow("P-107", "oak", "Table"))

	items, total, err := repo.List(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Len(t, items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
