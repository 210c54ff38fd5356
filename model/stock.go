package model

// StockKey identifies one product held in one warehouse bin.
type StockKey struct {
	ProductCode string `db:"product_code" json:"product_code"`
	Warehouse   string `db:"warehouse" json:"warehouse"`
	Location    string `db:"location" json:"location"`
}

// StockRecord is the on-hand quantity of a product at a location. A record is
// never stored with zero pcs.
type StockRecord struct {
	ProductCode string `db:"product_code" json:"product_code"`
	Color       string `db:"color" json:"color"`
	ProductName string `db:"product_name" json:"product_name"`
	Warehouse   string `db:"warehouse" json:"warehouse"`
	Location    string `db:"location" json:"location"`
	Pcs         int    `db:"pcs" json:"pcs"`
}

func (r StockRecord) Key() StockKey {
	return StockKey{ProductCode: r.ProductCode, Warehouse: r.Warehouse, Location: r.Location}
}

type StockAttrs struct {
	Color       string
	ProductName string
}

// MergeAddRequest adds pcs to a location. ProductCode may be left empty, it is then
// resolved from the product catalog by color and product name.
type MergeAddRequest struct {
	ProductCode string `json:"product_code"`
	Color       string `json:"color" validate:"required"`
	ProductName string `json:"product_name" validate:"required"`
	Warehouse   string `json:"warehouse" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Pcs         int    `json:"pcs" validate:"required,min=1,max=10000"`
}

type MergeAddResponse struct {
	StockKey
	Pcs int `json:"pcs"`
}

type SubtractRequest struct {
	ProductCode string `json:"product_code" validate:"required_without=ProductName"`
	Color       string `json:"color" validate:"required_without=ProductCode"`
	ProductName string `json:"product_name" validate:"required_without=ProductCode"`
	Warehouse   string `json:"warehouse" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Pcs         int    `json:"pcs" validate:"required,min=1,max=10000"`
}

type SubtractResponse struct {
	StockKey
	Remaining int  `json:"remaining"`
	Removed   bool `json:"removed"`
}
