package reservation

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
)

type ReservationRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.Reservation, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, reservation *model.Reservation) error
	// AddPcsTx increments an existing reservation and returns the new total.
	AddPcsTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string, pcs int) (int, error)
	// FulfilmentByOrderTx joins every line of the order with its reservation.
	// Lines without a reservation report zero reserved pcs.
	FulfilmentByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) ([]model.FulfilmentRow, error)
	DeleteByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) (int64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewReservationRepository(conn *sqlx.DB) ReservationRepository {
	return &SQL{conn: conn}
}

const (
	getForUpdateQuery = `SELECT order_number, product_code, reservation_warehouse, reservation_location, pcs FROM reservations WHERE order_number = ? AND product_code = ? FOR UPDATE`
	insertQuery       = `INSERT INTO reservations (order_number, product_code, reservation_warehouse, reservation_location, pcs) VALUES (?, ?, ?, ?, ?)`
	addPcsQuery       = `UPDATE reservations SET pcs = pcs + ? WHERE order_number = ? AND product_code = ?`
	selectPcsQuery    = `SELECT pcs FROM reservations WHERE order_number = ? AND product_code = ?`
	deleteByOrder     = `DELETE FROM reservations WHERE order_number = ?`

	fulfilmentQuery = `SELECT so.order_number, so.product_code, so.color, so.product_name, so.company,
	so.pcs AS order_pcs, COALESCE(r.pcs, 0) AS reserved_pcs
FROM sales_orders so
LEFT JOIN reservations r ON so.order_number = r.order_number AND so.product_code = r.product_code
WHERE so.order_number = ?
ORDER BY so.product_code`
)

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.Reservation, error) {
	var res model.Reservation
	if err := tx.GetContext(ctx, &res, getForUpdateQuery, orderNumber, productCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, res *model.Reservation) error {
	_, err := tx.ExecContext(ctx, insertQuery, res.OrderNumber, res.ProductCode, res.ReservationWarehouse, res.ReservationLocation, res.Pcs)
	return err
}

func (r *SQL) AddPcsTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string, pcs int) (int, error) {
	if _, err := tx.ExecContext(ctx, addPcsQuery, pcs, orderNumber, productCode); err != nil {
		return 0, err
	}
	var total int
	if err := tx.GetContext(ctx, &total, selectPcsQuery, orderNumber, productCode); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) FulfilmentByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) ([]model.FulfilmentRow, error) {
	rows, err := tx.QueryxContext(ctx, fulfilmentQuery, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.FulfilmentRow, 0)
	for rows.Next() {
		var row model.FulfilmentRow
		if err := rows.StructScan(&row); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *SQL) DeleteByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteByOrder, orderNumber)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
