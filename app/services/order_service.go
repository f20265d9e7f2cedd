package services

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/mail"
)

// NotificationStatus is the outcome of the confirmation-email attempt.
type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped" // no shipping email supplied
)

// NotificationOutcome records what happened to the confirmation email.
// The email is advisory: a Failed outcome never fails the placement.
type NotificationOutcome struct {
	Status NotificationStatus
	Reason string // set when Status is Failed
}

// PlacementResult is the two-step outcome of PlaceOrder: the persisted
// order id, plus what became of the notification.
type PlacementResult struct {
	OrderID      string
	Notification NotificationOutcome
}

// PlaceOrderInput is the checkout payload after boundary validation.
type PlaceOrderInput struct {
	Items         []models.OrderItem
	Total         float64
	Shipping      models.ShippingAddress
	PaymentMethod string
	PaymentID     *string
}

// OrderService sequences the checkout effects: persist the order, then
// attempt the confirmation email. Persistence failures fail the request;
// email failures are logged and swallowed.
type OrderService struct {
	log    *slog.Logger
	orders repositories.OrderStorage
	mailer mail.Mailer
}

func NewOrderService(log *slog.Logger, orders repositories.OrderStorage, mailer mail.Mailer) *OrderService {
	return &OrderService{log: log, orders: orders, mailer: mailer}
}

// PlaceOrder validates presence of the checkout fields, persists the order
// under the verified user id, and then sends the confirmation email when a
// shipping email was supplied. The order is the source of truth: once
// persisted, the placement succeeds regardless of the email outcome.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, input PlaceOrderInput) (PlacementResult, error) {
	if len(input.Items) == 0 {
		return PlacementResult{}, &ValidationError{Message: "Order items are required"}
	}
	if input.Total <= 0 {
		return PlacementResult{}, &ValidationError{Message: "Order total is required"}
	}
	if input.Shipping == (models.ShippingAddress{}) {
		return PlacementResult{}, &ValidationError{Message: "Shipping details are required"}
	}

	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return PlacementResult{}, &ValidationError{Message: "Invalid user reference"}
	}

	order, err := s.orders.Create(ctx, &models.Order{
		UserID:        uid,
		Items:         input.Items,
		Total:         input.Total,
		Shipping:      input.Shipping,
		PaymentMethod: input.PaymentMethod,
		PaymentID:     input.PaymentID,
	})
	if err != nil {
		return PlacementResult{}, err
	}

	log := logger.WithCtx(ctx)
	log.Info("order placed", "order_id", order.ID.Hex(), "user_id", userID, "total", order.Total)

	return PlacementResult{
		OrderID:      order.ID.Hex(),
		Notification: s.notify(ctx, order),
	}, nil
}

// notify sends the confirmation email, best-effort.
func (s *OrderService) notify(ctx context.Context, order *models.Order) NotificationOutcome {
	if order.Shipping.Email == "" {
		return NotificationOutcome{Status: NotificationSkipped}
	}

	body, err := renderConfirmation(order)
	if err != nil {
		logger.WithCtx(ctx).Warn("confirmation email not rendered", "order_id", order.ID.Hex(), "error", err)
		return NotificationOutcome{Status: NotificationFailed, Reason: err.Error()}
	}

	err = s.mailer.Send(mail.Message{
		To:      []string{order.Shipping.Email},
		Subject: "Your Vastra order is confirmed",
		Body:    body,
		HTML:    true,
	})
	if err != nil {
		logger.WithCtx(ctx).Warn("confirmation email failed", "order_id", order.ID.Hex(), "error", err)
		return NotificationOutcome{Status: NotificationFailed, Reason: err.Error()}
	}

	logger.WithCtx(ctx).Info("confirmation email sent", "order_id", order.ID.Hex(), "to", order.Shipping.Email)
	return NotificationOutcome{Status: NotificationSent}
}
