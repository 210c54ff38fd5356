package reservation

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	orderrepo "github.com/muhammadheryan/stock-ledger/repository/order"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	reservationrepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	"github.com/muhammadheryan/stock-ledger/utils/retry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReservationApp interface {
	// CommitReservation moves pcs from a source location into the reservation of
	// an order line. Either every check passes and both ledgers change, or
	// nothing changes.
	CommitReservation(ctx context.Context, req *model.CommitReservationRequest) (*model.CommitReservationResponse, error)
	FulfilmentFor(ctx context.Context, orderNumber string) ([]model.FulfilmentRow, error)
	DeleteReservations(ctx context.Context, orderNumber string) (int64, error)
}

type reservationAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	stockRepo       stockrepo.StockRepository
	orderRepo       orderrepo.OrderRepository
	reservationRepo reservationrepo.ReservationRepository
	cache           redisrepo.Repository
	publisher       *rabbitmq.Publisher
}

func NewReservationApp(config *config.Config, txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, orderRepo orderrepo.OrderRepository,
	reservationRepo reservationrepo.ReservationRepository, cache redisrepo.Repository, publisher *rabbitmq.Publisher) ReservationApp {
	return &reservationAppImpl{
		config:          config,
		txRepo:          txRepo,
		stockRepo:       stockRepo,
		orderRepo:       orderRepo,
		reservationRepo: reservationRepo,
		cache:           cache,
		publisher:       publisher,
	}
}

func (s *reservationAppImpl) CommitReservation(ctx context.Context, req *model.CommitReservationRequest) (res *model.CommitReservationResponse, err error) {
	defer func() { metrics.ReservationCommits.WithLabelValues(metrics.Result(err)).Inc() }()

	if req.Pcs < constant.MinPcs || req.Pcs > constant.MaxPcs {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	err = retry.OnConflict(ctx, s.config.Ledger.RetryPolicy(), "commit_reservation", func(ctx context.Context) error {
		var err error
		res, err = s.commitOnce(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[CommitReservation] reserved",
		zap.String("order_number", req.OrderNumber),
		zap.String("product_code", req.ProductCode),
		zap.String("source_warehouse", req.SourceWarehouse),
		zap.String("source_location", req.SourceLocation),
		zap.Int("pcs", req.Pcs),
		zap.Int("reserved", res.ReservedPcs),
		zap.Int("source_remaining", res.SourceRemaining))

	s.invalidate(ctx, req.OrderNumber)
	s.publishCommitted(ctx, req, res)
	return res, nil
}

// commitOnce is one attempt of the commit. Rows are locked stock first, then the
// order line, then the reservation; every writer follows the same order.
func (s *reservationAppImpl) commitOnce(ctx context.Context, req *model.CommitReservationRequest) (*model.CommitReservationResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CommitReservation] begin tx", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	source := req.SourceKey()
	stock, err := s.stockRepo.GetForUpdateTx(ctx, tx, source)
	if err != nil {
		logger.Error("[CommitReservation] lock source stock", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	if stock == nil || stock.Pcs < req.Pcs {
		available := 0
		if stock != nil {
			available = stock.Pcs
		}
		logger.Info("[CommitReservation] insufficient stock", zap.String("product_code", req.ProductCode), zap.Int("need", req.Pcs), zap.Int("available", available))
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}

	line, err := s.orderRepo.GetLineForUpdateTx(ctx, tx, req.OrderNumber, req.ProductCode)
	if err != nil {
		logger.Error("[CommitReservation] lock order line", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	if line == nil {
		return nil, errors.SetCustomError(constant.ErrUnknownOrderProduct)
	}

	existing, err := s.reservationRepo.GetForUpdateTx(ctx, tx, req.OrderNumber, req.ProductCode)
	if err != nil {
		logger.Error("[CommitReservation] lock reservation", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	already := 0
	if existing != nil {
		already = existing.Pcs
	}
	if already+req.Pcs > line.Pcs {
		logger.Info("[CommitReservation] over reservation", zap.String("order_number", req.OrderNumber), zap.Int("reserved", already), zap.Int("pcs", req.Pcs), zap.Int("demand", line.Pcs))
		return nil, errors.SetCustomError(constant.ErrOverReservation)
	}

	remaining, err := s.stockRepo.SubtractTx(ctx, tx, source, req.Pcs)
	if err != nil {
		logger.Error("[CommitReservation] subtract source", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}

	reserved := req.Pcs
	if existing != nil {
		reserved, err = s.reservationRepo.AddPcsTx(ctx, tx, req.OrderNumber, req.ProductCode, req.Pcs)
		if err != nil {
			logger.Error("[CommitReservation] add to reservation", zap.String("error", err.Error()))
			return nil, errors.FromStore(err)
		}
	} else {
		err = s.reservationRepo.InsertTx(ctx, tx, &model.Reservation{
			OrderNumber:          req.OrderNumber,
			ProductCode:          req.ProductCode,
			ReservationWarehouse: req.ReservationWarehouse,
			ReservationLocation:  req.ReservationLocation,
			Pcs:                  req.Pcs,
		})
		if err != nil {
			logger.Error("[CommitReservation] insert reservation", zap.String("error", err.Error()))
			return nil, errors.FromStore(err)
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CommitReservation] commit tx", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	committed = true

	return &model.CommitReservationResponse{
		OrderNumber:     req.OrderNumber,
		ProductCode:     req.ProductCode,
		ReservedPcs:     reserved,
		OrderPcs:        line.Pcs,
		SourceRemaining: remaining,
	}, nil
}

func (s *reservationAppImpl) publishCommitted(ctx context.Context, req *model.CommitReservationRequest, res *model.CommitReservationResponse) {
	if res.SourceRemaining == 0 {
		metrics.LocationsDepleted.Inc()
	}
	if s.publisher == nil {
		return
	}

	msg := rabbitmq.ReservationCommittedMessage{
		OrderNumber:          req.OrderNumber,
		ProductCode:          req.ProductCode,
		SourceWarehouse:      req.SourceWarehouse,
		SourceLocation:       req.SourceLocation,
		ReservationWarehouse: req.ReservationWarehouse,
		ReservationLocation:  req.ReservationLocation,
		Pcs:                  req.Pcs,
		ReservedPcs:          res.ReservedPcs,
	}
	if err := s.publisher.PublishReservationCommitted(ctx, msg); err != nil {
		logger.Error("[CommitReservation] publish reservation committed", zap.String("error", err.Error()))
	}

	if res.SourceRemaining == 0 {
		depleted := rabbitmq.StockDepletedMessage{ProductCode: req.ProductCode, Warehouse: req.SourceWarehouse, Location: req.SourceLocation}
		if err := s.publisher.PublishStockDepleted(ctx, depleted); err != nil {
			logger.Error("[CommitReservation] publish stock depleted", zap.String("error", err.Error()))
		}
	}
}

// FulfilmentFor reports, per order line, how much of the demand is reserved.
// Reports are cached until the next change to the order or its reservations.
func (s *reservationAppImpl) FulfilmentFor(ctx context.Context, orderNumber string) ([]model.FulfilmentRow, error) {
	key := constant.FulfilmentCacheKeyPrefix + orderNumber

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("[FulfilmentFor] read cache", zap.String("error", err.Error()))
	}
	if cached != "" {
		var rows []model.FulfilmentRow
		if err := json.Unmarshal([]byte(cached), &rows); err == nil {
			return rows, nil
		}
	}

	tx, err := s.txRepo.BeginReadOnlyTx(ctx)
	if err != nil {
		logger.Error("[FulfilmentFor] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	rows, err := s.reservationRepo.FulfilmentByOrderTx(ctx, tx, orderNumber)
	if err != nil {
		logger.Error("[FulfilmentFor] fulfilment by order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(rows) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	for i := range rows {
		rows[i].FulfilmentPercent = FulfilmentPercent(rows[i].ReservedPcs, rows[i].OrderPcs)
	}

	if body, err := json.Marshal(rows); err == nil {
		if err := s.cache.SetWithTTL(ctx, key, string(body), s.config.Ledger.ReportCacheTTL); err != nil {
			logger.Warn("[FulfilmentFor] write cache", zap.String("error", err.Error()))
		}
	}
	return rows, nil
}

// FulfilmentPercent is reserved/demanded as a percentage rounded half away from
// zero to two places. Zero demand reports 0.
func FulfilmentPercent(reserved, demanded int) float64 {
	if demanded <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(reserved)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(demanded))).
		Round(2).
		InexactFloat64()
}

func (s *reservationAppImpl) DeleteReservations(ctx context.Context, orderNumber string) (int64, error) {
	var removed int64
	err := retry.OnConflict(ctx, s.config.Ledger.RetryPolicy(), "delete_reservations", func(ctx context.Context) error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[DeleteReservations] begin tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		removed, err = s.reservationRepo.DeleteByOrderTx(ctx, tx, orderNumber)
		if err != nil {
			logger.Error("[DeleteReservations] delete", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[DeleteReservations] commit tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed = true
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidate(ctx, orderNumber)
	logger.Info("[DeleteReservations] reservations removed", zap.String("order_number", orderNumber), zap.Int64("removed", removed))
	return removed, nil
}

func (s *reservationAppImpl) invalidate(ctx context.Context, orderNumber string) {
	if err := s.cache.Delete(ctx, constant.FulfilmentCacheKeyPrefix+orderNumber); err != nil {
		logger.Warn("[reservation] invalidate fulfilment cache", zap.String("error", err.Error()))
	}
}
