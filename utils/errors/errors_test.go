package errors_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/stock-ledger/constant"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrOverReservation)

	assert.Equal(t, "reservation exceeds order demand", err.Error())
	assert.Equal(t, "0007", err.ErrorCode())
	assert.Equal(t, 422, err.ErrorHTTPCode())
	assert.Equal(t, constant.ErrOverReservation, err.Type())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("commit: %w", cerr.SetCustomError(constant.ErrInsufficientStock))

	assert.True(t, cerr.Is(wrapped, constant.ErrInsufficientStock))
	assert.False(t, cerr.Is(wrapped, constant.ErrNotFound))
	assert.False(t, cerr.Is(sql.ErrNoRows, constant.ErrNotFound))
	assert.False(t, cerr.Is(nil, constant.ErrInternal))
}

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "conflict custom error", err: cerr.SetCustomError(constant.ErrConflict), want: true},
		{name: "business error", err: cerr.SetCustomError(constant.ErrOverReservation), want: false},
		{name: "deadlock", err: &mysql.MySQLError{Number: 1213, Message: "Deadlock found"}, want: true},
		{name: "lock wait timeout", err: fmt.Errorf("select: %w", &mysql.MySQLError{Number: 1205}), want: true},
		{name: "duplicate key", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "attempt deadline", err: context.DeadlineExceeded, want: true},
		{name: "canceled", err: context.Canceled, want: false},
		{name: "no rows", err: sql.ErrNoRows, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cerr.IsConflict(tt.err))
		})
	}
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constant.ErrorType
	}{
		{name: "custom error passes through", err: cerr.SetCustomError(constant.ErrInsufficientStock), want: constant.ErrInsufficientStock},
		{name: "deadlock", err: &mysql.MySQLError{Number: 1213}, want: constant.ErrConflict},
		{name: "attempt deadline", err: fmt.Errorf("get stock: %w", context.DeadlineExceeded), want: constant.ErrConflict},
		{name: "driver error", err: sql.ErrConnDone, want: constant.ErrInternal},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cerr.FromStore(tt.err).Type())
		})
	}
}
