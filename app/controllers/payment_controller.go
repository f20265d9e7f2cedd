package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// PaymentController creates gateway payment orders for authenticated
// checkouts.
type PaymentController struct {
	service *services.PaymentService
}

func NewPaymentController(service *services.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

// CreateOrderRequest carries the amount in paise.
type CreateOrderRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreateOrder asks the gateway for a pending payment order and hands its
// handle back to the client, which completes payment out-of-band.
func (c *PaymentController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, "Amount is required")
		return
	}

	order, err := c.service.CreateOrder(r.Context(), req.Amount)
	if err != nil {
		handleError(w, r, err)
		return
	}

	response.OK(w, response.M{"order": order})
}
