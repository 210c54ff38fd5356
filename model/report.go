package model

// AllocationRow is one line of the allocation preview. Nothing is deducted for real.
type AllocationRow struct {
	ProductCode string `json:"product_code"`
	Color       string `json:"color"`
	ProductName string `json:"product_name"`
	Warehouse   string `json:"warehouse"`
	Location    string `json:"location"`
	OnHand      int    `json:"warehouse_pcs"`
	OrderPcs    int    `json:"order_pcs"`
	Deducted    int    `json:"deducted_pcs"`
	Leftover    int    `json:"leftover_pcs"`
}

type FulfilmentRow struct {
	OrderNumber       string  `db:"order_number" json:"order_number"`
	ProductCode       string  `db:"product_code" json:"product_code"`
	Color             string  `db:"color" json:"color"`
	ProductName       string  `db:"product_name" json:"product_name"`
	Company           string  `db:"company" json:"company"`
	OrderPcs          int     `db:"order_pcs" json:"order_pcs"`
	ReservedPcs       int     `db:"reserved_pcs" json:"reserved_pcs"`
	FulfilmentPercent float64 `db:"-" json:"fulfilment_perc"`
}
