package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/razorpay"
)

// PaymentGateway creates a pending payment order with the processor. The
// browser completes the payment against the gateway directly; this backend
// never verifies the outcome.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, receipt string) (razorpay.Order, error)
}

// PaymentService wraps gateway order creation for authenticated checkouts.
type PaymentService struct {
	log     *slog.Logger
	gateway PaymentGateway
}

func NewPaymentService(log *slog.Logger, gateway PaymentGateway) *PaymentService {
	return &PaymentService{log: log, gateway: gateway}
}

// CreateOrder creates a pending gateway order for the given amount in
// paise and returns the gateway's handle for the client to pay against.
func (s *PaymentService) CreateOrder(ctx context.Context, amount int64) (razorpay.Order, error) {
	receipt := "rcpt_" + uuid.NewString()

	order, err := s.gateway.CreateOrder(ctx, amount, receipt)
	if err != nil {
		return razorpay.Order{}, err
	}

	logger.WithCtx(ctx).Info("gateway order created",
		"gateway_order_id", order.ID,
		"amount", order.Amount,
		"currency", order.Currency,
	)
	return order, nil
}
