package reservation_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
	reservationrepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (reservationrepo.ReservationRepository, sqlmock.Sqlmock, *sqlx.Tx) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	conn := sqlx.NewDb(db, "sqlmock")
	mock.ExpectBegin()
	tx, err := conn.Beginx()
	require.NoError(t, err)

	return reservationrepo.NewReservationRepository(conn), mock, tx
}

func TestSQL_GetForUpdateTx(t *testing.T) {
	repo, mock, tx := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE order_number = ? AND product_code = ? FOR UPDATE")).
		WithArgs("SO-1", "P-100").
		WillReturnRows(sqlmock.NewRows([]string{"order_number", "product_code", "reservation_warehouse", "reservation_location", "pcs"}))

	got, err := repo.GetForUpdateTx(context.Background(), tx, "SO-1", "P-100")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_AddPcsTx(t *testing.T) {
	repo, mock, tx := setup(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET pcs = pcs + ?")).
		WithArgs(3, "SO-1", "P-100").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT pcs FROM reservations")).
		WithArgs("SO-1", "P-100").
		WillReturnRows(sqlmock.NewRows([]string{"pcs"}).AddRow(10))

	got, err := repo.AddPcsTx(context.Background(), tx, "SO-1", "P-100", 3)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_InsertTx(t *testing.T) {
	repo, mock, tx := setup(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reservations")).
		WithArgs("SO-1", "P-100", "W1", "DOCK-1", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InsertTx(context.Background(), tx, &model.Reservation{
		OrderNumber:          "SO-1",
		ProductCode:          "P-100",
		ReservationWarehouse: "W1",
		ReservationLocation:  "DOCK-1",
		Pcs:                  4,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_FulfilmentByOrderTx(t *testing.T) {
	repo, mock, tx := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN reservations r")).
		WithArgs("SO-1").
		WillReturnRows(sqlmock.NewRows([]string{"order_number", "product_code", "color", "product_name", "company", "order_pcs", "reserved_pcs"}).
			AddRow("SO-1", "P-100", "red", "Chair", "ACME", 6, 5).
			AddRow("SO-1", "P-200", "oak", "Table", "ACME", 4, 0))

	got, err := repo.FulfilmentByOrderTx(context.Background(), tx, "SO-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 5, got[0].ReservedPcs)
	assert.Equal(t, 0, got[1].ReservedPcs)
	assert.Equal(t, 4, got[1].OrderPcs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
