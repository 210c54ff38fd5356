package order

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	orderrepo "github.com/muhammadheryan/stock-ledger/repository/order"
	redisrepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	reservationrepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/retry"
	"go.uber.org/zap"
)

type OrderApp interface {
	InsertSalesOrder(ctx context.Context, lines []model.OrderLine) error
	List(ctx context.Context) ([]model.OrderLine, error)
	GetOrder(ctx context.Context, orderNumber string) ([]model.OrderLine, error)
	DeleteOrder(ctx context.Context, orderNumber string) error
	DemandFor(ctx context.Context, orderNumber, productCode string) (int, error)
}

type orderAppImpl struct {
	config          *config.Config
	txRepo          txrepo.TxRepository
	orderRepo       orderrepo.OrderRepository
	reservationRepo reservationrepo.ReservationRepository
	cache           redisrepo.Repository
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, reservationRepo reservationrepo.ReservationRepository, cache redisrepo.Repository) OrderApp {
	return &orderAppImpl{config: config, txRepo: txRepo, orderRepo: orderRepo, reservationRepo: reservationRepo, cache: cache}
}

func (s *orderAppImpl) InsertSalesOrder(ctx context.Context, lines []model.OrderLine) error {
	if len(lines) == 0 {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}

	type lineKey struct{ order, product string }
	seen := make(map[lineKey]struct{}, len(lines))
	orders := make([]string, 0, 1)
	for _, l := range lines {
		if l.Pcs < constant.MinPcs || l.Pcs > constant.MaxPcs {
			return errors.SetCustomError(constant.ErrInvalidQuantity)
		}
		k := lineKey{l.OrderNumber, l.ProductCode}
		if _, dup := seen[k]; dup {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		seen[k] = struct{}{}
		orders = appendUnique(orders, l.OrderNumber)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[InsertSalesOrder] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.orderRepo.InsertLinesTx(ctx, tx, lines); err != nil {
		if errors.IsDuplicateKey(err) {
			return errors.SetCustomError(constant.ErrInvalidRequest)
		}
		logger.Error("[InsertSalesOrder] insert lines", zap.String("error", err.Error()))
		return errors.FromStore(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[InsertSalesOrder] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.invalidate(ctx, orders...)
	logger.Info("[InsertSalesOrder] lines inserted", zap.Int("lines", len(lines)), zap.Strings("orders", orders))
	return nil
}

func (s *orderAppImpl) List(ctx context.Context) ([]model.OrderLine, error) {
	lines, err := s.orderRepo.List(ctx)
	if err != nil {
		logger.Error("[List] list lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return lines, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderNumber string) ([]model.OrderLine, error) {
	lines, err := s.orderRepo.ListByOrder(ctx, orderNumber)
	if err != nil {
		logger.Error("[GetOrder] list by order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return lines, nil
}

// DeleteOrder removes the order lines and every reservation held against them.
// Lines go first so the lock order matches a reservation commit.
func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderNumber string) error {
	var released int64
	err := retry.OnConflict(ctx, s.config.Ledger.RetryPolicy(), "delete_order", func(ctx context.Context) error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[DeleteOrder] begin tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		n, err := s.orderRepo.DeleteByOrderTx(ctx, tx, orderNumber)
		if err != nil {
			logger.Error("[DeleteOrder] delete lines", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		if n == 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}

		released, err = s.reservationRepo.DeleteByOrderTx(ctx, tx, orderNumber)
		if err != nil {
			logger.Error("[DeleteOrder] delete reservations", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[DeleteOrder] commit tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed = true
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, orderNumber)
	logger.Info("[DeleteOrder] order deleted", zap.String("order_number", orderNumber), zap.Int64("reservations", released))
	return nil
}

func (s *orderAppImpl) DemandFor(ctx context.Context, orderNumber, productCode string) (int, error) {
	tx, err := s.txRepo.BeginReadOnlyTx(ctx)
	if err != nil {
		logger.Error("[DemandFor] begin tx", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	line, err := s.orderRepo.GetLineTx(ctx, tx, orderNumber, productCode)
	if err != nil {
		logger.Error("[DemandFor] get line", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	if line == nil {
		return 0, errors.SetCustomError(constant.ErrNotFound)
	}
	return line.Pcs, nil
}

func (s *orderAppImpl) invalidate(ctx context.Context, orderNumbers ...string) {
	keys := make([]string, 0, len(orderNumbers))
	for _, o := range orderNumbers {
		keys = append(keys, constant.FulfilmentCacheKeyPrefix+o)
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("[order] invalidate fulfilment cache", zap.String("error", err.Error()))
	}
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
