package allocation

import (
	"cmp"
	"context"
	"slices"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	orderrepo "github.com/muhammadheryan/stock-ledger/repository/order"
	stockrepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txrepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"go.uber.org/zap"
)

// AllocationApp previews how the stock on hand could cover an order. It only
// reads; reservations are made through the reservation commit.
type AllocationApp interface {
	PlanAllocation(ctx context.Context, orderNumber, productCode string) ([]model.AllocationRow, error)
	PlanOrder(ctx context.Context, orderNumber string) ([]model.AllocationRow, error)
}

type allocationAppImpl struct {
	txRepo    txrepo.TxRepository
	stockRepo stockrepo.StockRepository
	orderRepo orderrepo.OrderRepository
}

func NewAllocationApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, orderRepo orderrepo.OrderRepository) AllocationApp {
	return &allocationAppImpl{txRepo: txRepo, stockRepo: stockRepo, orderRepo: orderRepo}
}

func (s *allocationAppImpl) PlanAllocation(ctx context.Context, orderNumber, productCode string) ([]model.AllocationRow, error) {
	tx, err := s.txRepo.BeginReadOnlyTx(ctx)
	if err != nil {
		logger.Error("[PlanAllocation] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	records, err := s.stockRepo.ListByProductTx(ctx, tx, productCode)
	if err != nil {
		logger.Error("[PlanAllocation] list stock", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// an order that does not demand the product plans with zero demand
	demand := 0
	line, err := s.orderRepo.GetLineTx(ctx, tx, orderNumber, productCode)
	if err != nil {
		logger.Error("[PlanAllocation] get line", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if line != nil {
		demand = line.Pcs
	}

	return Plan(records, demand), nil
}

func (s *allocationAppImpl) PlanOrder(ctx context.Context, orderNumber string) ([]model.AllocationRow, error) {
	tx, err := s.txRepo.BeginReadOnlyTx(ctx)
	if err != nil {
		logger.Error("[PlanOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	defer func() { _ = s.txRepo.RollbackTx(tx) }()

	lines, err := s.orderRepo.ListByOrderTx(ctx, tx, orderNumber)
	if err != nil {
		logger.Error("[PlanOrder] list lines", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	rows := make([]model.AllocationRow, 0)
	for _, l := range lines {
		records, err := s.stockRepo.ListByProductTx(ctx, tx, l.ProductCode)
		if err != nil {
			logger.Error("[PlanOrder] list stock", zap.String("product_code", l.ProductCode), zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		rows = append(rows, Plan(records, l.Pcs)...)
	}
	return rows, nil
}

// Plan walks the locations from the smallest pile up, deducting demand until it
// is covered. Ties on pcs are ordered by warehouse then location so the same
// stock always yields the same plan. records is not modified.
func Plan(records []model.StockRecord, demand int) []model.AllocationRow {
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, func(a, b model.StockRecord) int {
		if c := cmp.Compare(a.Pcs, b.Pcs); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Warehouse, b.Warehouse); c != 0 {
			return c
		}
		return cmp.Compare(a.Location, b.Location)
	})

	rows := make([]model.AllocationRow, 0, len(sorted))
	consumed := 0
	for _, r := range sorted {
		deducted := min(r.Pcs, max(demand-consumed, 0))
		consumed += deducted
		rows = append(rows, model.AllocationRow{
			ProductCode: r.ProductCode,
			Color:       r.Color,
			ProductName: r.ProductName,
			Warehouse:   r.Warehouse,
			Location:    r.Location,
			OnHand:      r.Pcs,
			OrderPcs:    demand,
			Deducted:    deducted,
			Leftover:    r.Pcs - deducted,
		})
	}
	return rows
}
