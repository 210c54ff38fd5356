package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrInvalidQuantity
	ErrInsufficientStock
	ErrUnknownOrderProduct
	ErrOverReservation
	ErrConflict
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrInvalidQuantity:     "quantity must be between 1 and 10000",
	ErrInsufficientStock:   "not enough pcs at the source location",
	ErrUnknownOrderProduct: "order does not demand this product",
	ErrOverReservation:     "reservation exceeds order demand",
	ErrConflict:            "stock record is busy, retry later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrInvalidQuantity:     http.StatusBadRequest,
	ErrInsufficientStock:   http.StatusUnprocessableEntity,
	ErrUnknownOrderProduct: http.StatusNotFound,
	ErrOverReservation:     http.StatusUnprocessableEntity,
	ErrConflict:            http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrInvalidQuantity:     "0004",
	ErrInsufficientStock:   "0005",
	ErrUnknownOrderProduct: "0006",
	ErrOverReservation:     "0007",
	ErrConflict:            "0008",
}
