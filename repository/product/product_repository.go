package product

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

// ProductRepository reads the product catalog.
type ProductRepository interface {
	GetByColorAndName(ctx context.Context, color, productName string) (*model.Product, error)
	List(ctx context.Context, page, perPage int) ([]model.Product, int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	getByColorAndName = `SELECT product_code, color, product_name FROM products WHERE color = ? AND product_name = ?`
	listProducts      = `SELECT product_code, color, product_name FROM products ORDER BY product_code LIMIT ? OFFSET ?`
	countProducts     = `SELECT COUNT(*) FROM products`
)

// GetByColorAndName returns nil when the catalog has no such product.
func (s *SQL) GetByColorAndName(ctx context.Context, color, productName string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, getByColorAndName, color, productName).StructScan(&p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) List(ctx context.Context, page, perPage int) ([]model.Product, int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countProducts); err != nil {
		return nil, 0, err
	}

	rows, err := s.conn.QueryxContext(ctx, listProducts, perPage, (page-1)*perPage)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
