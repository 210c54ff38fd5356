package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/model"
)

type SQL struct {
	conn *sqlx.DB
}

// OrderRepository is the order book: demand per (order_number, product_code).
type OrderRepository interface {
	InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.OrderLine) error
	// GetLineTx reads an order line from the transaction snapshot. It returns nil
	// when the order does not demand the product.
	GetLineTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.OrderLine, error)
	// GetLineForUpdateTx is GetLineTx with a row lock, which serializes every
	// reservation commit for the same order line.
	GetLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.OrderLine, error)
	ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) ([]model.OrderLine, error)
	ListByOrder(ctx context.Context, orderNumber string) ([]model.OrderLine, error)
	List(ctx context.Context) ([]model.OrderLine, error)
	DeleteByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) (int64, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	lineColumns = `order_number, product_code, color, product_name, pcs, company`

	insertLineQuery = `INSERT INTO sales_orders (order_number, product_code, color, product_name, pcs, company) VALUES (?, ?, ?, ?, ?, ?)`
	getLineQuery    = `SELECT ` + lineColumns + ` FROM sales_orders WHERE order_number = ? AND product_code = ?`
	listByOrder     = `SELECT ` + lineColumns + ` FROM sales_orders WHERE order_number = ? ORDER BY product_code`
	listLines       = `SELECT ` + lineColumns + ` FROM sales_orders ORDER BY order_number, product_code`
	deleteByOrder   = `DELETE FROM sales_orders WHERE order_number = ?`
)

func (r *SQL) InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.OrderLine) error {
	for _, l := range lines {
		if _, err := tx.ExecContext(ctx, insertLineQuery, l.OrderNumber, l.ProductCode, l.Color, l.ProductName, l.Pcs, l.Company); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetLineTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.OrderLine, error) {
	return r.getLine(ctx, tx, getLineQuery, orderNumber, productCode)
}

func (r *SQL) GetLineForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderNumber, productCode string) (*model.OrderLine, error) {
	return r.getLine(ctx, tx, getLineQuery+" FOR UPDATE", orderNumber, productCode)
}

func (r *SQL) getLine(ctx context.Context, tx *sqlx.Tx, query, orderNumber, productCode string) (*model.OrderLine, error) {
	var line model.OrderLine
	if err := tx.QueryRowxContext(ctx, query, orderNumber, productCode).StructScan(&line); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *SQL) ListByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	if err := tx.SelectContext(ctx, &lines, listByOrder, orderNumber); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQL) ListByOrder(ctx context.Context, orderNumber string) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	if err := r.conn.SelectContext(ctx, &lines, listByOrder, orderNumber); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQL) List(ctx context.Context) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	if err := r.conn.SelectContext(ctx, &lines, listLines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *SQL) DeleteByOrderTx(ctx context.Context, tx *sqlx.Tx, orderNumber string) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteByOrder, orderNumber)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
