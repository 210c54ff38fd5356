package model

// OrderLine is the demand of a sales order for one product.
type OrderLine struct {
	OrderNumber string `db:"order_number" json:"order_number" validate:"required"`
	ProductCode string `db:"product_code" json:"product_code" validate:"required"`
	Color       string `db:"color" json:"color" validate:"required"`
	ProductName string `db:"product_name" json:"product_name" validate:"required"`
	Pcs         int    `db:"pcs" json:"pcs" validate:"required,min=1,max=10000"`
	Company     string `db:"company" json:"company" validate:"required"`
}

type InsertSalesOrderRequest struct {
	Lines []OrderLine `validate:"required,min=1,dive"`
}

type DemandResponse struct {
	OrderNumber string `json:"order_number"`
	ProductCode string `json:"product_code"`
	Pcs         int    `json:"pcs"`
}
