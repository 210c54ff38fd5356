package stock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	appstock "github.com/muhammadheryan/stock-ledger/application/stock"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	productmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/product"
	stockmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/stock"
	txmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Ledger: config.LedgerConfig{
			MaxRetries:     2,
			RetryBaseDelay: time.Millisecond,
			RetryMaxDelay:  2 * time.Millisecond,
		},
	}
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestStockApp_MergeAdd(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		stockRepo   *stockmocks.StockRepository
		productRepo *productmocks.ProductRepository
	}
	key := model.StockKey{ProductCode: "P-100", Warehouse: "W1", Location: "A-01"}
	attrs := model.StockAttrs{Color: "red", ProductName: "Chair"}

	tests := []struct {
		name     string
		req      *model.MergeAddRequest
		mockCall func(f fields)
		want     *model.MergeAddResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: add to location",
			req:  &model.MergeAddRequest{ProductCode: "P-100", Color: "red", ProductName: "Chair", Warehouse: "W1", Location: "A-01", Pcs: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("MergeAddTx", mock.Anything, tx, key, attrs, 4).Return(9, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.MergeAddResponse{StockKey: key, Pcs: 9},
		},
		{
			name: "success: product code resolved from catalog",
			req:  &model.MergeAddRequest{Color: "red", ProductName: "Chair", Warehouse: "W1", Location: "A-01", Pcs: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.productRepo.On("GetByColorAndName", mock.Anything, "red", "Chair").Return(&model.Product{ProductCode: "P-100", Color: "red", ProductName: "Chair"}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("MergeAddTx", mock.Anything, tx, key, attrs, 4).Return(4, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.MergeAddResponse{StockKey: key, Pcs: 4},
		},
		{
			name: "success: retried after deadlock",
			req:  &model.MergeAddRequest{ProductCode: "P-100", Color: "red", ProductName: "Chair", Warehouse: "W1", Location: "A-01", Pcs: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Twice()
				f.stockRepo.On("MergeAddTx", mock.Anything, tx, key, attrs, 4).Return(0, &mysql.MySQLError{Number: 1213}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.stockRepo.On("MergeAddTx", mock.Anything, tx, key, attrs, 4).Return(4, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.MergeAddResponse{StockKey: key, Pcs: 4},
		},
		{
			name:    "error: zero pcs",
			req:     &model.MergeAddRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 0},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:    "error: pcs above limit",
			req:     &model.MergeAddRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 10001},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: product not in catalog",
			req:  &model.MergeAddRequest{Color: "blue", ProductName: "Desk", Warehouse: "W1", Location: "A-01", Pcs: 1},
			mockCall: func(f fields) {
				f.productRepo.On("GetByColorAndName", mock.Anything, "blue", "Desk").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: MergeAddTx returns error",
			req:  &model.MergeAddRequest{ProductCode: "P-100", Color: "red", ProductName: "Chair", Warehouse: "W1", Location: "A-01", Pcs: 4},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("MergeAddTx", mock.Anything, tx, key, attrs, 4).Return(0, errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appstock.NewStockApp(testConfig(), f.txRepo, f.stockRepo, f.productRepo, nil)

			got, err := app.MergeAdd(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MergeAdd() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStockApp_Subtract(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		stockRepo   *stockmocks.StockRepository
		productRepo *productmocks.ProductRepository
	}
	key := model.StockKey{ProductCode: "P-100", Warehouse: "W1", Location: "A-01"}
	record := &model.StockRecord{ProductCode: "P-100", Color: "red", ProductName: "Chair", Warehouse: "W1", Location: "A-01", Pcs: 5}

	tests := []struct {
		name     string
		req      *model.SubtractRequest
		mockCall func(f fields)
		want     *model.SubtractResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: partial removal",
			req:  &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 2},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, key).Return(record, nil).Once()
				f.stockRepo.On("SubtractTx", mock.Anything, tx, key, 2).Return(3, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.SubtractResponse{StockKey: key, Remaining: 3},
		},
		{
			name: "success: location emptied",
			req:  &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 5},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, key).Return(record, nil).Once()
				f.stockRepo.On("SubtractTx", mock.Anything, tx, key, 5).Return(0, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.SubtractResponse{StockKey: key, Remaining: 0, Removed: true},
		},
		{
			name: "error: location has no record",
			req:  &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, key).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insufficient stock",
			req:  &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 10},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, key).Return(record, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: lock wait timeout exhausts retries",
			req:  &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 1},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Times(3)
				f.stockRepo.On("GetForUpdateTx", mock.Anything, tx, key).Return(nil, &mysql.MySQLError{Number: 1205}).Times(3)
				f.txRepo.On("RollbackTx", tx).Return(nil).Times(3)
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name:    "error: negative pcs",
			req:     &model.SubtractRequest{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: -1},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appstock.NewStockApp(testConfig(), f.txRepo, f.stockRepo, f.productRepo, nil)

			got, err := app.Subtract(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Subtract() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStockApp_Lookup(t *testing.T) {
	stockRepo := stockmocks.NewStockRepository(t)
	records := []model.StockRecord{
		{ProductCode: "P-100", Warehouse: "W1", Location: "A-01", Pcs: 5},
		{ProductCode: "P-100", Warehouse: "W1", Location: "B-01", Pcs: 3},
	}
	stockRepo.On("ListByProduct", mock.Anything, "P-100").Return(records, nil).Once()
	stockRepo.On("ListByProduct", mock.Anything, "P-404").Return(nil, errors.New("db error")).Once()

	app := appstock.NewStockApp(testConfig(), txmocks.NewTxRepository(t), stockRepo, productmocks.NewProductRepository(t), nil)

	got, err := app.Lookup(context.Background(), "P-100")
	assert.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = app.Lookup(context.Background(), "P-404")
	assertErrCode(t, err, constant.ErrInternal)
}
