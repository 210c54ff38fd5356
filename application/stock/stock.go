package stock

import (
	"context"

	"github.com/muhammadheryan/stock-ledger/cmd/config"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	productrepo "github.com/muhammadheryan/stock-ledger/repository/product"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	"github.com/muhammadheryan/stock-ledger/utils/retry"
	"go.uber.org/zap"
)

type StockApp interface {
	MergeAdd(ctx context.Context, req *model.MergeAddRequest) (*model.MergeAddResponse, error)
	Subtract(ctx context.Context, req *model.SubtractRequest) (*model.SubtractResponse, error)
	Lookup(ctx context.Context, productCode string) ([]model.StockRecord, error)
	ListByName(ctx context.Context, productName string) ([]model.StockRecord, error)
	List(ctx context.Context) ([]model.StockRecord, error)
}

type stockAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	stockRepo   stockrepo.StockRepository
	productRepo productrepo.ProductRepository
	publisher   *rabbitmq.Publisher
}

func NewStockApp(config *config.Config, txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, productRepo productrepo.ProductRepository, publisher *rabbitmq.Publisher) StockApp {
	return &stockAppImpl{config: config, txRepo: txRepo, stockRepo: stockRepo, productRepo: productRepo, publisher: publisher}
}

func validPcs(pcs int) bool {
	return pcs >= constant.MinPcs && pcs <= constant.MaxPcs
}

func (s *stockAppImpl) MergeAdd(ctx context.Context, req *model.MergeAddRequest) (res *model.MergeAddResponse, err error) {
	defer func() { metrics.StockMutations.WithLabelValues("merge_add", metrics.Result(err)).Inc() }()

	if !validPcs(req.Pcs) {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	productCode, err := s.resolveProductCode(ctx, "MergeAdd", req.ProductCode, req.Color, req.ProductName)
	if err != nil {
		return nil, err
	}

	key := model.StockKey{ProductCode: productCode, Warehouse: req.Warehouse, Location: req.Location}
	attrs := model.StockAttrs{Color: req.Color, ProductName: req.ProductName}

	var total int
	err = retry.OnConflict(ctx, s.config.Ledger.RetryPolicy(), "merge_add", func(ctx context.Context) error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[MergeAdd] begin tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		total, err = s.stockRepo.MergeAddTx(ctx, tx, key, attrs, req.Pcs)
		if err != nil {
			logger.Error("[MergeAdd] merge add", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[MergeAdd] commit tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[MergeAdd] stock added",
		zap.String("product_code", key.ProductCode),
		zap.String("warehouse", key.Warehouse),
		zap.String("location", key.Location),
		zap.Int("added", req.Pcs),
		zap.Int("pcs", total))

	return &model.MergeAddResponse{StockKey: key, Pcs: total}, nil
}

func (s *stockAppImpl) Subtract(ctx context.Context, req *model.SubtractRequest) (res *model.SubtractResponse, err error) {
	defer func() { metrics.StockMutations.WithLabelValues("subtract", metrics.Result(err)).Inc() }()

	if !validPcs(req.Pcs) {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	productCode, err := s.resolveProductCode(ctx, "Subtract", req.ProductCode, req.Color, req.ProductName)
	if err != nil {
		return nil, err
	}
	key := model.StockKey{ProductCode: productCode, Warehouse: req.Warehouse, Location: req.Location}

	var remaining int
	err = retry.OnConflict(ctx, s.config.Ledger.RetryPolicy(), "subtract", func(ctx context.Context) error {
		tx, err := s.txRepo.BeginTx(ctx)
		if err != nil {
			logger.Error("[Subtract] begin tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed := false
		defer func() {
			if !committed {
				_ = s.txRepo.RollbackTx(tx)
			}
		}()

		rec, err := s.stockRepo.GetForUpdateTx(ctx, tx, key)
		if err != nil {
			logger.Error("[Subtract] lock stock", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		if rec == nil {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		if rec.Pcs < req.Pcs {
			logger.Info("[Subtract] insufficient stock", zap.String("product_code", key.ProductCode), zap.Int("need", req.Pcs), zap.Int("available", rec.Pcs))
			return errors.SetCustomError(constant.ErrInsufficientStock)
		}

		remaining, err = s.stockRepo.SubtractTx(ctx, tx, key, req.Pcs)
		if err != nil {
			logger.Error("[Subtract] subtract", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}

		if err := s.txRepo.CommitTx(tx); err != nil {
			logger.Error("[Subtract] commit tx", zap.String("error", err.Error()))
			return errors.FromStore(err)
		}
		committed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("[Subtract] stock removed",
		zap.String("product_code", key.ProductCode),
		zap.String("warehouse", key.Warehouse),
		zap.String("location", key.Location),
		zap.Int("removed", req.Pcs),
		zap.Int("remaining", remaining))

	if remaining == 0 {
		metrics.LocationsDepleted.Inc()
		if s.publisher != nil {
			msg := rabbitmq.StockDepletedMessage{ProductCode: key.ProductCode, Warehouse: key.Warehouse, Location: key.Location}
			if err := s.publisher.PublishStockDepleted(ctx, msg); err != nil {
				logger.Error("[Subtract] publish stock depleted", zap.String("error", err.Error()))
			}
		}
	}

	return &model.SubtractResponse{StockKey: key, Remaining: remaining, Removed: remaining == 0}, nil
}

// resolveProductCode looks the code up in the catalog when the caller only knows
// the color and name of the product.
func (s *stockAppImpl) resolveProductCode(ctx context.Context, fn, productCode, color, productName string) (string, error) {
	if productCode != "" {
		return productCode, nil
	}
	if color == "" || productName == "" {
		return "", errors.SetCustomError(constant.ErrInvalidRequest)
	}

	p, err := s.productRepo.GetByColorAndName(ctx, color, productName)
	if err != nil {
		logger.Error("["+fn+"] get product", zap.String("error", err.Error()))
		return "", errors.FromStore(err)
	}
	if p == nil {
		return "", errors.SetCustomError(constant.ErrNotFound)
	}
	return p.ProductCode, nil
}

func (s *stockAppImpl) Lookup(ctx context.Context, productCode string) ([]model.StockRecord, error) {
	records, err := s.stockRepo.ListByProduct(ctx, productCode)
	if err != nil {
		logger.Error("[Lookup] list by product", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	return records, nil
}

func (s *stockAppImpl) ListByName(ctx context.Context, productName string) ([]model.StockRecord, error) {
	records, err := s.stockRepo.ListByProductName(ctx, productName)
	if err != nil {
		logger.Error("[ListByName] list by product name", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	return records, nil
}

func (s *stockAppImpl) List(ctx context.Context) ([]model.StockRecord, error) {
	records, err := s.stockRepo.List(ctx)
	if err != nil {
		logger.Error("[List] list stock", zap.String("error", err.Error()))
		return nil, errors.FromStore(err)
	}
	return records, nil
}
