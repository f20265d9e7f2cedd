package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/razorpay"
)

type fakeGateway struct {
	lastAmount  int64
	lastReceipt string
	err         error
}

var _ services.PaymentGateway = (*fakeGateway)(nil)

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, receipt string) (razorpay.Order, error) {
	if f.err != nil {
		return razorpay.Order{}, f.err
	}
	f.lastAmount, f.lastReceipt = amount, receipt
	return razorpay.Order{ID: "order_test", Amount: amount, Currency: razorpay.Currency, Receipt: receipt, Status: "created"}, nil
}

func TestCreateOrder_DelegatesToGateway(t *testing.T) {
	gw := &fakeGateway{}
	svc := services.NewPaymentService(discardLogger(), gw)

	order, err := svc.CreateOrder(context.Background(), 124900)
	require.NoError(t, err)

	assert.Equal(t, "order_test", order.ID)
	assert.Equal(t, int64(124900), gw.lastAmount)
	assert.NotEmpty(t, gw.lastReceipt, "a receipt must be generated per order")
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("gateway down")}
	svc := services.NewPaymentService(discardLogger(), gw)

	_, err := svc.CreateOrder(context.Background(), 100)
	assert.Error(t, err)
}
