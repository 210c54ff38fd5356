package constant

type contextKey string

const RequestIDKey contextKey = "request_id"

// Quantity bounds accepted at the service boundary.
const (
	MinPcs = 1
	MaxPcs = 10000
)

// MySQL error numbers treated as lock contention.
const (
	MySQLLockWaitTimeout uint16 = 1205
	MySQLDeadlock        uint16 = 1213
)

const (
	EventExchange             = "stock_ledger_events"
	EventReservationCommitted = "reservation.committed"
	EventStockDepleted        = "stock.depleted"

	StockReceiptQueue = "stock_receipt_queue"
)

const FulfilmentCacheKeyPrefix = "fulfilment:"

const MySQLDuplicateEntry uint16 = 1062
