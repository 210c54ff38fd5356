package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	allocationapp "github.com/muhammadheryan/stock-ledger/application/allocation"
	orderapp "github.com/muhammadheryan/stock-ledger/application/order"
	productapp "github.com/muhammadheryan/stock-ledger/application/product"
	reservationapp "github.com/muhammadheryan/stock-ledger/application/reservation"
	stockapp "github.com/muhammadheryan/stock-ledger/application/stock"
	"github.com/muhammadheryan/stock-ledger/constant"
	"github.com/muhammadheryan/stock-ledger/model"
	"github.com/muhammadheryan/stock-ledger/utils/errors"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	StockApp       stockapp.StockApp
	OrderApp       orderapp.OrderApp
	AllocationApp  allocationapp.AllocationApp
	ReservationApp reservationapp.ReservationApp
	ProductApp     productapp.ProductApp
}

func NewTransport(StockApp stockapp.StockApp, OrderApp orderapp.OrderApp, AllocationApp allocationapp.AllocationApp, ReservationApp reservationapp.ReservationApp, ProductApp productapp.ProductApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		StockApp:       StockApp,
		OrderApp:       OrderApp,
		AllocationApp:  AllocationApp,
		ReservationApp: ReservationApp,
		ProductApp:     ProductApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	mux.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// catalog
	mux.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)

	// stock ledger
	mux.HandleFunc("/stock", rh.ListStock).Methods(http.MethodGet)
	mux.HandleFunc("/stock/add", rh.AddStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/remove", rh.RemoveStock).Methods(http.MethodPost)
	mux.HandleFunc("/stock/by-name/{product_name}", rh.GetStockByName).Methods(http.MethodGet)
	mux.HandleFunc("/stock/{product_code}", rh.GetStock).Methods(http.MethodGet)

	// order book
	mux.HandleFunc("/sales-orders", rh.InsertSalesOrder).Methods(http.MethodPost)
	mux.HandleFunc("/sales-orders", rh.ListSalesOrders).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{order_number}", rh.GetSalesOrder).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{order_number}", rh.DeleteSalesOrder).Methods(http.MethodDelete)
	mux.HandleFunc("/sales-orders/{order_number}/demand/{product_code}", rh.GetDemand).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{order_number}/allocation", rh.GetAllocation).Methods(http.MethodGet)
	mux.HandleFunc("/sales-orders/{order_number}/fulfilment", rh.GetFulfilment).Methods(http.MethodGet)

	// reservations
	mux.HandleFunc("/reservations", rh.CommitReservation).Methods(http.MethodPost)
	mux.HandleFunc("/reservations/{order_number}", rh.DeleteReservations).Methods(http.MethodDelete)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// ListProducts handler
// @Summary List products
// @Description Product catalog, paginated
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} Response{data=model.ProductListResponse}
// @Failure 500 {object} Response
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	res, err := s.ProductApp.ListProducts(r.Context(), page, perPage)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ListStock handler
// @Summary List stock
// @Description List every stock record
// @Tags Stock
// @Produce json
// @Success 200 {object} Response{data=[]model.StockRecord}
// @Failure 500 {object} Response
// @Router /stock [get]
func (s *RestHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStock handler
// @Summary Stock of a product
// @Description Every location holding the product
// @Tags Stock
// @Produce json
// @Param product_code path string true "Product code"
// @Success 200 {object} Response{data=[]model.StockRecord}
// @Failure 500 {object} Response
// @Router /stock/{product_code} [get]
func (s *RestHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.Lookup(r.Context(), mux.Vars(r)["product_code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetStockByName handler
// @Summary Stock by product name
// @Tags Stock
// @Produce json
// @Param product_name path string true "Product name"
// @Success 200 {object} Response{data=[]model.StockRecord}
// @Failure 500 {object} Response
// @Router /stock/by-name/{product_name} [get]
func (s *RestHandler) GetStockByName(w http.ResponseWriter, r *http.Request) {
	res, err := s.StockApp.ListByName(r.Context(), mux.Vars(r)["product_name"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// AddStock handler
// @Summary Add stock
// @Description Add pcs to a location, creating the stock record when needed
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.MergeAddRequest true "Stock to add"
// @Success 200 {object} Response{data=model.MergeAddResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /stock/add [post]
func (s *RestHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req model.MergeAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.StockApp.MergeAdd(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RemoveStock handler
// @Summary Remove stock
// @Description Take pcs from a location. The record is removed once empty
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.SubtractRequest true "Stock to remove"
// @Success 200 {object} Response{data=model.SubtractResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /stock/remove [post]
func (s *RestHandler) RemoveStock(w http.ResponseWriter, r *http.Request) {
	var req model.SubtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.StockApp.Subtract(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// InsertSalesOrder handler
// @Summary Insert sales order lines
// @Tags Sales Orders
// @Accept json
// @Produce json
// @Param request body []model.OrderLine true "Order lines"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Router /sales-orders [post]
func (s *RestHandler) InsertSalesOrder(w http.ResponseWriter, r *http.Request) {
	var req model.InsertSalesOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req.Lines); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	if err := s.OrderApp.InsertSalesOrder(r.Context(), req.Lines); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// ListSalesOrders handler
// @Summary List sales order lines
// @Tags Sales Orders
// @Produce json
// @Success 200 {object} Response{data=[]model.OrderLine}
// @Router /sales-orders [get]
func (s *RestHandler) ListSalesOrders(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetSalesOrder handler
// @Summary Lines of a sales order
// @Tags Sales Orders
// @Produce json
// @Param order_number path string true "Order number"
// @Success 200 {object} Response{data=[]model.OrderLine}
// @Failure 404 {object} Response
// @Router /sales-orders/{order_number} [get]
func (s *RestHandler) GetSalesOrder(w http.ResponseWriter, r *http.Request) {
	res, err := s.OrderApp.GetOrder(r.Context(), mux.Vars(r)["order_number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteSalesOrder handler
// @Summary Delete a sales order
// @Description Removes the order lines together with their reservations
// @Tags Sales Orders
// @Produce json
// @Param order_number path string true "Order number"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /sales-orders/{order_number} [delete]
func (s *RestHandler) DeleteSalesOrder(w http.ResponseWriter, r *http.Request) {
	if err := s.OrderApp.DeleteOrder(r.Context(), mux.Vars(r)["order_number"]); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

// GetDemand handler
// @Summary Demand of an order for a product
// @Tags Sales Orders
// @Produce json
// @Param order_number path string true "Order number"
// @Param product_code path string true "Product code"
// @Success 200 {object} Response{data=model.DemandResponse}
// @Failure 404 {object} Response
// @Router /sales-orders/{order_number}/demand/{product_code} [get]
func (s *RestHandler) GetDemand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pcs, err := s.OrderApp.DemandFor(r.Context(), vars["order_number"], vars["product_code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, model.DemandResponse{OrderNumber: vars["order_number"], ProductCode: vars["product_code"], Pcs: pcs})
}

// GetAllocation handler
// @Summary Allocation preview
// @Description Ranks the locations holding stock and shows how the demand would be covered. Nothing is reserved.
// @Tags Sales Orders
// @Produce json
// @Param order_number path string true "Order number"
// @Param product_code query string false "Limit the preview to one product"
// @Success 200 {object} Response{data=[]model.AllocationRow}
// @Failure 404 {object} Response
// @Router /sales-orders/{order_number}/allocation [get]
func (s *RestHandler) GetAllocation(w http.ResponseWriter, r *http.Request) {
	orderNumber := mux.Vars(r)["order_number"]

	var (
		res []model.AllocationRow
		err error
	)
	if productCode := r.URL.Query().Get("product_code"); productCode != "" {
		res, err = s.AllocationApp.PlanAllocation(r.Context(), orderNumber, productCode)
	} else {
		res, err = s.AllocationApp.PlanOrder(r.Context(), orderNumber)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// GetFulfilment handler
// @Summary Fulfilment of an order
// @Tags Sales Orders
// @Produce json
// @Param order_number path string true "Order number"
// @Success 200 {object} Response{data=[]model.FulfilmentRow}
// @Failure 404 {object} Response
// @Router /sales-orders/{order_number}/fulfilment [get]
func (s *RestHandler) GetFulfilment(w http.ResponseWriter, r *http.Request) {
	res, err := s.ReservationApp.FulfilmentFor(r.Context(), mux.Vars(r)["order_number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CommitReservation handler
// @Summary Commit a reservation
// @Description Takes pcs from the source location and reserves them for the order line
// @Tags Reservations
// @Accept json
// @Produce json
// @Param request body model.CommitReservationRequest true "Reservation"
// @Success 200 {object} Response{data=model.CommitReservationResponse}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Failure 422 {object} Response
// @Router /reservations [post]
func (s *RestHandler) CommitReservation(w http.ResponseWriter, r *http.Request) {
	var req model.CommitReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	res, err := s.ReservationApp.CommitReservation(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// DeleteReservations handler
// @Summary Remove the reservations of an order
// @Tags Reservations
// @Produce json
// @Param order_number path string true "Order number"
// @Success 200 {object} Response
// @Router /reservations/{order_number} [delete]
func (s *RestHandler) DeleteReservations(w http.ResponseWriter, r *http.Request) {
	n, err := s.ReservationApp.DeleteReservations(r.Context(), mux.Vars(r)["order_number"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]int64{"removed": n})
}
