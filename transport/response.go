package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"go.uber.org/zap"
)

// Response is the envelope of every API response.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{Code: ce.ErrorCode(), Message: ce.Error()})
}

// writeValidationError answers a request that failed struct validation. A bad
// pcs value is reported as InvalidQuantity, anything else as InvalidRequest.
func writeValidationError(w http.ResponseWriter, err error) {
	ce := errors.SetCustomError(constant.ErrInvalidRequest)
	if validatorx.Failed(err, "Pcs") {
		ce = errors.SetCustomError(constant.ErrInvalidQuantity)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{Code: ce.ErrorCode(), Message: ce.Error(), Errors: validatorx.Messages(err)})
}
