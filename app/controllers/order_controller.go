package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/middleware"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// OrderController serves order placement.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// PlaceOrderRequest is the checkout payload. PaymentID is whatever the
// client reports after paying the gateway; it may be absent for
// cash-on-delivery.
type PlaceOrderRequest struct {
	Items         []models.OrderItem     `json:"items" validate:"required,min=1,dive"`
	Total         float64                `json:"total" validate:"required,gt=0"`
	Shipping      models.ShippingAddress `json:"shipping" validate:"required"`
	PaymentMethod string                 `json:"paymentMethod"`
	PaymentID     *string                `json:"paymentId"`
}

// Place persists the order for the authenticated user and reports the new
// order id. The confirmation email is best-effort: its failure never turns
// a persisted order into an error response.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "Items, total and shipping details are required")
		return
	}

	result, err := c.service.PlaceOrder(r.Context(), middleware.CurrentUserID(r.Context()), services.PlaceOrderInput{
		Items:         req.Items,
		Total:         req.Total,
		Shipping:      req.Shipping,
		PaymentMethod: req.PaymentMethod,
		PaymentID:     req.PaymentID,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{
		"message": "Order placed successfully",
		"orderId": result.OrderID,
	})
}
