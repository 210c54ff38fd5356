package metrics

import (
	"github.com/muhammadheryan/stock-ledger/constant"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StockMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_stock_mutations_total",
		Help: "Stock ledger mutations by operation and result",
	}, []string{"operation", "result"})

	ReservationCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_reservation_commits_total",
		Help: "Reservation commit attempts by result",
	}, []string{"result"})

	ConflictRetries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_conflict_retries_total",
		Help: "Transactions retried after lock contention",
	}, []string{"operation"})

	LocationsDepleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_locations_depleted_total",
		Help: "Stock records removed because they reached zero pcs",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{"method", "route", "status"})
)

var resultLabels = map[constant.ErrorType]string{
	constant.ErrInternal:            "internal",
	constant.ErrNotFound:            "not_found",
	constant.ErrInvalidRequest:      "invalid_request",
	constant.ErrInvalidQuantity:     "invalid_quantity",
	constant.ErrInsufficientStock:   "insufficient_stock",
	constant.ErrUnknownOrderProduct: "unknown_order_product",
	constant.ErrOverReservation:     "over_reservation",
	constant.ErrConflict:            "conflict",
}

// Result turns an operation outcome into a metric label.
func Result(err error) string {
	if err == nil {
		return "success"
	}
	for errType, label := range resultLabels {
		if cerr.Is(err, errType) {
			return label
		}
	}
	return "internal"
}
