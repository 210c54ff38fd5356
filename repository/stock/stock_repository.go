package stock

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
)

type StockRepository interface {
	// MergeAddTx adds pcs to the record at key, creating it with attrs when absent,
	// and returns the new on-hand quantity.
	MergeAddTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey, attrs model.StockAttrs, pcs int) (int, error)
	// GetForUpdateTx locks the record at key. It returns nil when there is none.
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey) (*model.StockRecord, error)
	// SubtractTx takes pcs from a record locked by GetForUpdateTx and deletes the
	// record once it is empty. The remaining quantity is 0 after a delete.
	SubtractTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey, pcs int) (int, error)
	ListByProductTx(ctx context.Context, tx *sqlx.Tx, productCode string) ([]model.StockRecord, error)
	ListByProduct(ctx context.Context, productCode string) ([]model.StockRecord, error)
	ListByProductName(ctx context.Context, productName string) ([]model.StockRecord, error)
	List(ctx context.Context) ([]model.StockRecord, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const (
	stockColumns = `product_code, color, product_name, warehouse, location, pcs`

	mergeAddQuery = `INSERT INTO stock_records (product_code, color, product_name, warehouse, location, pcs) VALUES (?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE pcs = pcs + VALUES(pcs)`

	selectPcsQuery       = `SELECT pcs FROM stock_records WHERE product_code = ? AND warehouse = ? AND location = ?`
	selectForUpdateQuery = `SELECT ` + stockColumns + ` FROM stock_records WHERE product_code = ? AND warehouse = ? AND location = ? FOR UPDATE`
	subtractQuery        = `UPDATE stock_records SET pcs = pcs - ? WHERE product_code = ? AND warehouse = ? AND location = ? AND pcs >= ?`
	deleteEmptyQuery     = `DELETE FROM stock_records WHERE product_code = ? AND warehouse = ? AND location = ? AND pcs <= 0`

	listByProductQuery     = `SELECT ` + stockColumns + ` FROM stock_records WHERE product_code = ?`
	listByProductNameQuery = `SELECT ` + stockColumns + ` FROM stock_records WHERE product_name = ? ORDER BY product_code, warehouse, location`
	listQuery              = `SELECT ` + stockColumns + ` FROM stock_records ORDER BY product_code, warehouse, location`
)

func (s *SQL) MergeAddTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey, attrs model.StockAttrs, pcs int) (int, error) {
	if _, err := tx.ExecContext(ctx, mergeAddQuery, key.ProductCode, attrs.Color, attrs.ProductName, key.Warehouse, key.Location, pcs); err != nil {
		return 0, err
	}

	var total int
	if err := tx.GetContext(ctx, &total, selectPcsQuery, key.ProductCode, key.Warehouse, key.Location); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey) (*model.StockRecord, error) {
	var rec model.StockRecord
	if err := tx.QueryRowxContext(ctx, selectForUpdateQuery, key.ProductCode, key.Warehouse, key.Location).StructScan(&rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (s *SQL) SubtractTx(ctx context.Context, tx *sqlx.Tx, key model.StockKey, pcs int) (int, error) {
	res, err := tx.ExecContext(ctx, subtractQuery, pcs, key.ProductCode, key.Warehouse, key.Location, pcs)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, cerr.SetCustomError(constant.ErrInsufficientStock)
	}

	var remaining int
	if err := tx.GetContext(ctx, &remaining, selectPcsQuery, key.ProductCode, key.Warehouse, key.Location); err != nil {
		return 0, err
	}
	if remaining > 0 {
		return remaining, nil
	}

	// empty locations are never kept
	if _, err := tx.ExecContext(ctx, deleteEmptyQuery, key.ProductCode, key.Warehouse, key.Location); err != nil {
		return 0, err
	}
	return 0, nil
}

func (s *SQL) ListByProductTx(ctx context.Context, tx *sqlx.Tx, productCode string) ([]model.StockRecord, error) {
	rows, err := tx.QueryxContext(ctx, listByProductQuery, productCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]model.StockRecord, 0)
	for rows.Next() {
		var rec model.StockRecord
		if err := rows.StructScan(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQL) ListByProduct(ctx context.Context, productCode string) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	if err := s.conn.SelectContext(ctx, &records, listByProductQuery+" ORDER BY warehouse, location", productCode); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQL) ListByProductName(ctx context.Context, productName string) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	if err := s.conn.SelectContext(ctx, &records, listByProductNameQuery, productName); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQL) List(ctx context.Context) ([]model.StockRecord, error) {
	records := make([]model.StockRecord, 0)
	if err := s.conn.SelectContext(ctx, &records, listQuery); err != nil {
		return nil, err
	}
	return records, nil
}
