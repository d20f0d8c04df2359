package handler

import (
	"encoding/json"
	"net/http"

	"github.com/roselab/warehouse/internal/api/dto"
	"github.com/roselab/warehouse/internal/errs"
	"github.com/roselab/warehouse/internal/model"
	"github.com/roselab/warehouse/internal/service"
)

type OrderHandler struct {
	orderService service.IOrderService
}

func NewOrderHandler(orderService service.IOrderService) *OrderHandler {
	if orderService == nil {
		panic("orderService cannot be nil")
	}
	return &OrderHandler{
		orderService: orderService,
	}
}

// @Summary create order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderDTO true "order to create"
// @Success 201 {object} dto.OrderDTO "created"
// @Failure 400 {object} handler.ErrorResponse "product not found or insufficient stock"
// @Failure 422 {object} handler.ErrorResponse "validation failed"
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var createDTO dto.CreateOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&createDTO); err != nil {
		writeBadBody(w)
		return
	}
	if fieldErrs := createDTO.Validate(); len(fieldErrs) > 0 {
		writeValidationError(w, fieldErrs)
		return
	}

	ctx := r.Context()

	order, err := h.orderService.CreateOrder(ctx, createDTO.StatusOrDefault(), createDTO.ToItemRequests())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, convertOrderModelToDTO(order))
}

// @Summary list orders
// @Tags orders
// @Produce json
// @Param skip query int false "offset"
// @Param limit query int false "page size"
// @Success 200 {array} dto.OrderDTO "orders"
// @Router /orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	orders, err := h.orderService.GetOrders(r.Context(), skip, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	result := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		result = append(result, *convertOrderModelToDTO(&orders[i]))
	}
	writeJSON(w, http.StatusOK, result)
}

// @Summary get order by id
// @Tags orders
// @Produce json
// @Param id path int true "order id"
// @Success 200 {object} dto.OrderDTO "order"
// @Failure 404 {object} handler.ErrorResponse "not found"
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, errs.New(errs.NotFoundCode, "Order not found."))
		return
	}

	order, err := h.orderService.GetOrderByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertOrderModelToDTO(order))
}

// @Summary set order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "order id"
// @Param status body dto.UpdateOrderStatusDTO true "new status"
// @Success 200 {object} dto.OrderDTO "updated"
// @Failure 404 {object} handler.ErrorResponse "not found"
// @Failure 422 {object} handler.ErrorResponse "invalid status value"
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(r, "id")
	if !ok {
		writeError(w, errs.New(errs.NotFoundCode, "Order not found."))
		return
	}

	var statusDTO dto.UpdateOrderStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&statusDTO); err != nil {
		writeBadBody(w)
		return
	}
	if fieldErrs := statusDTO.Validate(); len(fieldErrs) > 0 {
		writeValidationError(w, fieldErrs)
		return
	}

	order, err := h.orderService.UpdateOrderStatus(r.Context(), id, model.OrderStatus(*statusDTO.Status))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, convertOrderModelToDTO(order))
}

// convertOrderModelToDTO 將 OrderModel 轉換為 OrderDTO
func convertOrderModelToDTO(m *model.OrderModel) *dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, dto.OrderItemDTO{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &dto.OrderDTO{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		Status:    string(m.Status),
		Items:     items,
	}
}
