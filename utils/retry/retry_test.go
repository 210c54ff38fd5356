package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/stock-ledger/constant"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/retry"
	"github.com/stretchr/testify/assert"
)

var policy = retry.Policy{
	MaxRetries:     2,
	BaseDelay:      time.Millisecond,
	MaxDelay:       2 * time.Millisecond,
	AttemptTimeout: time.Second,
}

func TestOnConflict(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   error
		wantType  constant.ErrorType
	}{
		{
			name:      "success: first attempt",
			errs:      []error{nil},
			wantCalls: 1,
		},
		{
			name:      "success: deadlock then success",
			errs:      []error{&mysql.MySQLError{Number: 1213}, nil},
			wantCalls: 2,
		},
		{
			name:      "error: business error is not retried",
			errs:      []error{cerr.SetCustomError(constant.ErrOverReservation)},
			wantCalls: 1,
			wantType:  constant.ErrOverReservation,
		},
		{
			name: "error: conflict budget spent",
			errs: []error{
				cerr.SetCustomError(constant.ErrConflict),
				cerr.SetCustomError(constant.ErrConflict),
				cerr.SetCustomError(constant.ErrConflict),
			},
			wantCalls: 3,
			wantType:  constant.ErrConflict,
		},
		{
			name:      "error: plain error is not retried",
			errs:      []error{errors.New("connection refused")},
			wantCalls: 1,
			wantErr:   errors.New("connection refused"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := retry.OnConflict(context.Background(), policy, "test", func(ctx context.Context) error {
				e := tt.errs[calls]
				calls++
				return e
			})

			assert.Equal(t, tt.wantCalls, calls)
			switch {
			case tt.wantType != 0:
				assert.True(t, cerr.Is(err, tt.wantType), "got %v", err)
			case tt.wantErr != nil:
				assert.EqualError(t, err, tt.wantErr.Error())
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnConflict_AttemptTimeout(t *testing.T) {
	p := policy
	p.MaxRetries = 1
	p.AttemptTimeout = 5 * time.Millisecond

	calls := 0
	err := retry.OnConflict(context.Background(), p, "test", func(ctx context.Context) error {
		calls++
		<-ctx.Done()
		return ctx.Err()
	})

	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOnConflict_ParentCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := retry.OnConflict(ctx, policy, "test", func(ctx context.Context) error {
		calls++
		cancel()
		return cerr.SetCustomError(constant.ErrConflict)
	})

	assert.Equal(t, 1, calls)
	assert.Error(t, err)
}
