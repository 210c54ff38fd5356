package model

// Reservation is the quantity committed against an order line. The reservation
// location is the bin chosen by the operator and may differ from the bin the pcs
// were taken from.
type Reservation struct {
	OrderNumber          string `db:"order_number" json:"order_number"`
	ProductCode          string `db:"product_code" json:"product_code"`
	ReservationWarehouse string `db:"reservation_warehouse" json:"reservation_warehouse"`
	ReservationLocation  string `db:"reservation_location" json:"reservation_location"`
	Pcs                  int    `db:"pcs" json:"pcs"`
}

type CommitReservationRequest struct {
	OrderNumber          string `json:"order_number" validate:"required"`
	ProductCode          string `json:"product_code" validate:"required"`
	SourceWarehouse      string `json:"source_warehouse" validate:"required"`
	SourceLocation       string `json:"source_location" validate:"required"`
	ReservationWarehouse string `json:"reservation_warehouse" validate:"required"`
	ReservationLocation  string `json:"reservation_location" validate:"required"`
	Pcs                  int    `json:"pcs" validate:"required,min=1,max=10000"`
}

func (r *CommitReservationRequest) SourceKey() StockKey {
	return StockKey{ProductCode: r.ProductCode, Warehouse: r.SourceWarehouse, Location: r.SourceLocation}
}

type CommitReservationResponse struct {
	OrderNumber     string `json:"order_number"`
	ProductCode     string `json:"product_code"`
	ReservedPcs     int    `json:"reserved_pcs"`
	OrderPcs        int    `json:"order_pcs"`
	SourceRemaining int    `json:"source_remaining"`
}
