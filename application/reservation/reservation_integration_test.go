package reservation_test

import (
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	appreservation "github.com/muhammadheryan/stock-ledger/application/reservation"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	orderrepo "github.com/muhammadheryan/stock-ledger/repository/order"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	reservationrepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openLedgerDB connects to the MySQL named by LEDGER_TEST_MYSQL_DSN and applies
// the schema. Tests using it are skipped when the variable is unset.
func openLedgerDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("LEDGER_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("LEDGER_TEST_MYSQL_DSN not set")
	}

	db, err := sqlx.Connect("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../schema/ledger.sql")
	require.NoError(t, err)
	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

func seed(t *testing.T, db *sqlx.DB, productCode, orderNumber string, onHand, demand int) {
	t.Helper()
	db.MustExec(`INSERT INTO stock_records (product_code, color, product_name, warehouse, location, pcs) VALUES (?, 'red', 'Chair', 'W1', 'A-01', ?)`, productCode, onHand)
	db.MustExec(`INSERT INTO sales_orders (order_number, product_code, color, product_name, pcs, company) VALUES (?, ?, 'red', 'Chair', ?, 'ACME')`, orderNumber, productCode, demand)
	t.Cleanup(func() {
		db.MustExec(`DELETE FROM stock_records WHERE product_code = ?`, productCode)
		db.MustExec(`DELETE FROM sales_orders WHERE order_number = ?`, orderNumber)
		db.MustExec(`DELETE FROM reservations WHERE order_number = ?`, orderNumber)
	})
}

func ledgerApp(db *sqlx.DB) appreservation.ReservationApp {
	cfg := &config.Config{
		Ledger: config.LedgerConfig{
			MaxRetries:     8,
			RetryBaseDelay: 5 * time.Millisecond,
			RetryMaxDelay:  100 * time.Millisecond,
			AttemptTimeout: 5 * time.Second,
		},
	}
	return appreservation.NewReservationApp(cfg,
		txrepo.NewTxRepository(db),
		stockrepo.NewStockRepository(db),
		orderrepo.NewOrderRepository(db),
		reservationrepo.NewReservationRepository(db),
		redisrepo.NewRepository(nil),
		nil)
}

func commitConcurrently(app appreservation.ReservationApp, reqs []*model.CommitReservationRequest) []error {
	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req *model.CommitReservationRequest) {
			defer wg.Done()
			<-start
			_, errs[i] = app.CommitReservation(context.Background(), req)
		}(i, req)
	}
	close(start)
	wg.Wait()
	return errs
}

func commitRequest(orderNumber, productCode string, pcs int) *model.CommitReservationRequest {
	return &model.CommitReservationRequest{
		OrderNumber:          orderNumber,
		ProductCode:          productCode,
		SourceWarehouse:      "W1",
		SourceLocation:       "A-01",
		ReservationWarehouse: "W1",
		ReservationLocation:  "DOCK-1",
		Pcs:                  pcs,
	}
}

func TestCommitReservation_ConcurrentDemandCeiling(t *testing.T) {
	db := openLedgerDB(t)
	productCode, orderNumber := "P-"+uuid.NewString()[:8], "SO-"+uuid.NewString()[:8]
	seed(t, db, productCode, orderNumber, 20, 10)

	errs := commitConcurrently(ledgerApp(db), []*model.CommitReservationRequest{
		commitRequest(orderNumber, productCode, 6),
		commitRequest(orderNumber, productCode, 6),
	})

	succeeded, over := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case cerr.Is(err, constant.ErrOverReservation):
			over++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, over)

	var reserved, onHand int
	require.NoError(t, db.Get(&reserved, `SELECT pcs FROM reservations WHERE order_number = ? AND product_code = ?`, orderNumber, productCode))
	require.NoError(t, db.Get(&onHand, `SELECT pcs FROM stock_records WHERE product_code = ?`, productCode))
	assert.Equal(t, 6, reserved)
	assert.Equal(t, 14, onHand)
}

func TestCommitReservation_ConcurrentDrainEvictsLocation(t *testing.T) {
	db := openLedgerDB(t)
	productCode, orderNumber := "P-"+uuid.NewString()[:8], "SO-"+uuid.NewString()[:8]
	seed(t, db, productCode, orderNumber, 5, 100)

	reqs := make([]*model.CommitReservationRequest, 0, 10)
	for i := 0; i < 10; i++ {
		reqs = append(reqs, commitRequest(orderNumber, productCode, 1))
	}
	errs := commitConcurrently(ledgerApp(db), reqs)

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		require.True(t, cerr.Is(err, constant.ErrInsufficientStock), "unexpected error: %v", err)
	}
	assert.Equal(t, 5, succeeded)

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM stock_records WHERE product_code = ?`, productCode))
	assert.Equal(t, 0, rows, "empty location must be removed")

	var reserved int
	require.NoError(t, db.Get(&reserved, `SELECT pcs FROM reservations WHERE order_number = ? AND product_code = ?`, orderNumber, productCode))
	assert.Equal(t, 5, reserved)
}
