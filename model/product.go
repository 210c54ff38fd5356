package model

type Product struct {
	ProductCode string `db:"product_code" json:"product_code"`
	Color       string `db:"color" json:"color"`
	ProductName string `db:"product_name" json:"product_name"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	PerPage    int       `json:"per_page"`
}
