package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	apporder "github.com/muhammadheryan/stock-ledger/application/order"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	ordermocks "github.com/muhammadheryan/stock-ledger/mocks/repository/order"
	redismocks "github.com/muhammadheryan/stock-ledger/mocks/repository/redis"
	reservationmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/reservation"
	txmocks "github.com/muhammadheryan/stock-ledger/mocks/repository/tx"
	"github.com/muhammadheryan/stock-ledger/model"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo          *txmocks.TxRepository
	orderRepo       *ordermocks.OrderRepository
	reservationRepo *reservationmocks.ReservationRepository
	cache           *redismocks.Repository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:          txmocks.NewTxRepository(t),
		orderRepo:       ordermocks.NewOrderRepository(t),
		reservationRepo: reservationmocks.NewReservationRepository(t),
		cache:           redismocks.NewRepository(t),
	}
}

func (f fields) app() apporder.OrderApp {
	cfg := &config.Config{Ledger: config.LedgerConfig{MaxRetries: 1, RetryBaseDelay: time.Millisecond, RetryMaxDelay: time.Millisecond}}
	return apporder.NewOrderApp(cfg, f.txRepo, f.orderRepo, f.reservationRepo, f.cache)
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

func TestOrderApp_InsertSalesOrder(t *testing.T) {
	lines := []model.OrderLine{
		{OrderNumber: "SO-1", ProductCode: "P-100", Color: "red", ProductName: "Chair", Pcs: 6, Company: "ACME"},
		{OrderNumber: "SO-1", ProductCode: "P-200", Color: "oak", ProductName: "Table", Pcs: 1, Company: "ACME"},
	}

	tests := []struct {
		name     string
		lines    []model.OrderLine
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success: insert lines",
			lines: lines,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertLinesTx", mock.Anything, tx, lines).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.cache.On("Delete", mock.Anything, "fulfilment:SO-1").Return(nil).Once()
			},
		},
		{
			name:    "error: empty batch",
			lines:   nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: duplicate line in batch",
			lines:   []model.OrderLine{lines[0], lines[0]},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: zero pcs",
			lines:   []model.OrderLine{{OrderNumber: "SO-1", ProductCode: "P-100", Pcs: 0}},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name:  "error: line already exists",
			lines: lines,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("InsertLinesTx", mock.Anything, tx, lines).Return(&mysql.MySQLError{Number: 1062}).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			err := f.app().InsertSalesOrder(context.Background(), tt.lines)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InsertSalesOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_DemandFor(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		want     int
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: demanded pcs",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginReadOnlyTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetLineTx", mock.Anything, tx, "SO-1", "P-100").Return(&model.OrderLine{OrderNumber: "SO-1", ProductCode: "P-100", Pcs: 6}, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			want: 6,
		},
		{
			name: "error: order does not demand product",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginReadOnlyTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("GetLineTx", mock.Anything, tx, "SO-1", "P-100").Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: BeginReadOnlyTx returns error",
			mockCall: func(f fields) {
				f.txRepo.On("BeginReadOnlyTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := f.app().DemandFor(context.Background(), "SO-1", "P-100")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DemandFor() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderApp_DeleteOrder(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: lines and reservations removed",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(2), nil).Once()
				f.reservationRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(1), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.cache.On("Delete", mock.Anything, "fulfilment:SO-1").Return(nil).Once()
			},
		},
		{
			name: "success: cache failure is not fatal",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(2), nil).Once()
				f.reservationRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(0), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.cache.On("Delete", mock.Anything, "fulfilment:SO-1").Return(errors.New("redis down")).Once()
			},
		},
		{
			name: "error: unknown order",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(0), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: reservation delete fails, nothing committed",
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.orderRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(2), nil).Once()
				f.reservationRepo.On("DeleteByOrderTx", mock.Anything, tx, "SO-1").Return(int64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := f.app().DeleteOrder(context.Background(), "SO-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestOrderApp_GetOrder(t *testing.T) {
	f := newFields(t)
	lines := []model.OrderLine{{OrderNumber: "SO-1", ProductCode: "P-100", Pcs: 6}}
	f.orderRepo.On("ListByOrder", mock.Anything, "SO-1").Return(lines, nil).Once()
	f.orderRepo.On("ListByOrder", mock.Anything, "SO-2").Return([]model.OrderLine{}, nil).Once()

	got, err := f.app().GetOrder(context.Background(), "SO-1")
	assert.NoError(t, err)
	assert.Equal(t, lines, got)

	_, err = f.app().GetOrder(context.Background(), "SO-2")
	assertErrCode(t, err, constant.ErrNotFound)
}
