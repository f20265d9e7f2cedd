package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/controllers"
	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/app/routes"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/auth"
	"github.com/shashiranjanraj/vastra/pkg/mail"
	"github.com/shashiranjanraj/vastra/pkg/razorpay"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

type fakeUserRepo struct{ users map[string]*models.User }

var _ repositories.UserStorage = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if _, ok := f.users[u.Email]; ok {
		return nil, repositories.ErrDuplicateEmail
	}
	u.ID = primitive.NewObjectID()
	f.users[u.Email] = u
	return u, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeProductRepo struct{ products []models.Product }

var _ repositories.ProductStorage = (*fakeProductRepo)(nil)

func (f *fakeProductRepo) All(context.Context) ([]models.Product, error) {
	return f.products, nil
}

type fakeOrderRepo struct{ orders map[string]*models.Order }

var _ repositories.OrderStorage = (*fakeOrderRepo)(nil)

func (f *fakeOrderRepo) Create(_ context.Context, o *models.Order) (*models.Order, error) {
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now()
	f.orders[o.ID.Hex()] = o
	return o, nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, repositories.ErrNotFound
}

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeGateway struct{ err error }

func (f *fakeGateway) CreateOrder(_ context.Context, amount int64, receipt string) (razorpay.Order, error) {
	if f.err != nil {
		return razorpay.Order{}, f.err
	}
	return razorpay.Order{ID: "order_fake", Amount: amount, Currency: razorpay.Currency, Receipt: receipt, Status: "created"}, nil
}

// ─── Harness ──────────────────────────────────────────────────────────────────

type api struct {
	handler http.Handler
	users   *fakeUserRepo
	orders  *fakeOrderRepo
	mailer  *fakeMailer
	gateway *fakeGateway
	tokens  *auth.TokenService
}

func newAPI(t *testing.T) *api {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<!doctype html><title>Vastra</title>"), 0o644))

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := &fakeUserRepo{users: make(map[string]*models.User)}
	orders := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	products := &fakeProductRepo{products: []models.Product{
		{ID: 1, Name: "Kanjivaram Silk Saree", Price: 12499, Category: "silk", Material: "Pure Silk"},
	}}
	mailer := &fakeMailer{}
	gateway := &fakeGateway{}
	tokens := auth.NewTokenService("test-secret", time.Hour)

	handler := routes.New(routes.Deps{
		Log:       log,
		Tokens:    tokens,
		Auth:      controllers.NewAuthController(services.NewAuthService(log, users, tokens)),
		Products:  controllers.NewProductController(services.NewCatalogService(log, products)),
		Payments:  controllers.NewPaymentController(services.NewPaymentService(log, gateway)),
		Orders:    controllers.NewOrderController(services.NewOrderService(log, orders, mailer)),
		StaticDir: staticDir,
	})

	return &api{handler: handler, users: users, orders: orders, mailer: mailer, gateway: gateway, tokens: tokens}
}

func (a *api) do(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)

	var decoded map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &decoded)
	return rec, decoded
}

func (a *api) signup(t *testing.T) string {
	t.Helper()
	rec, body := a.do(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p1", "contact": "123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func orderPayload() map[string]any {
	return map[string]any{
		"items": []map[string]any{
			{"name": "Kanjivaram Silk Saree", "price": 12499, "quantity": 1},
		},
		"total": 12499,
		"shipping": map[string]any{
			"name": "A", "email": "a@x.com", "address": "12 MG Road",
			"city": "Bengaluru", "state": "KA", "postalCode": "560001",
		},
		"paymentMethod": "razorpay",
	}
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	a := newAPI(t)
	rec, body := a.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestListProducts(t *testing.T) {
	a := newAPI(t)
	rec, body := a.do(t, http.MethodGet, "/api/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	products, ok := body["products"].([]any)
	require.True(t, ok)
	assert.Len(t, products, 1)
}

func TestSignupThenMe(t *testing.T) {
	a := newAPI(t)
	token := a.signup(t)

	rec, body := a.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "A", user["name"])
	assert.Equal(t, "a@x.com", user["email"])
	assert.Equal(t, "123", user["phone"])
	assert.NotContains(t, user, "password")
}

func TestSignup_MissingFields(t *testing.T) {
	a := newAPI(t)
	rec, body := a.do(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "A", "email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, body["success"])
}

func TestSignup_DuplicateEmail(t *testing.T) {
	a := newAPI(t)
	a.signup(t)

	rec, body := a.do(t, http.MethodPost, "/api/signup", "", map[string]string{
		"name": "B", "email": "a@x.com", "password": "other", "contact": "456",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already registered", body["message"])
}

func TestLogin(t *testing.T) {
	a := newAPI(t)
	a.signup(t)

	t.Run("success", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "a@x.com", "password": "p1"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, body["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "a@x.com", "password": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown email", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/login", "", map[string]string{"email": "b@x.com", "password": "p1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User not found", body["message"])
	})
}

func TestPlaceOrder_RequiresAuth(t *testing.T) {
	a := newAPI(t)
	rec, body := a.do(t, http.MethodPost, "/api/orders", "", orderPayload())
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Empty(t, a.orders.orders, "no order may be persisted on a rejected request")
}

func TestPlaceOrder(t *testing.T) {
	a := newAPI(t)
	token := a.signup(t)

	rec, body := a.do(t, http.MethodPost, "/api/orders", token, orderPayload())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["success"])

	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, orderID)

	persisted, err := a.orders.FindByID(context.Background(), orderID)
	require.NoError(t, err)
	user, _ := a.users.FindByEmail(context.Background(), "a@x.com")
	assert.Equal(t, user.ID, persisted.UserID)

	require.Len(t, a.mailer.sent, 1)
	assert.Equal(t, []string{"a@x.com"}, a.mailer.sent[0].To)
}

func TestPlaceOrder_MailFailureStillSucceeds(t *testing.T) {
	a := newAPI(t)
	token := a.signup(t)
	a.mailer.err = errors.New("550 mailbox unavailable")

	rec, body := a.do(t, http.MethodPost, "/api/orders", token, orderPayload())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])

	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, orderID)
	_, err := a.orders.FindByID(context.Background(), orderID)
	assert.NoError(t, err, "order must be persisted despite the mail failure")
}

func TestPlaceOrder_Validation(t *testing.T) {
	a := newAPI(t)
	token := a.signup(t)

	for name, mutate := range map[string]func(map[string]any){
		"empty items":   func(p map[string]any) { p["items"] = []any{} },
		"no total":      func(p map[string]any) { delete(p, "total") },
		"no shipping":   func(p map[string]any) { delete(p, "shipping") },
	} {
		t.Run(name, func(t *testing.T) {
			payload := orderPayload()
			mutate(payload)
			rec, body := a.do(t, http.MethodPost, "/api/orders", token, payload)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Empty(t, a.orders.orders)
		})
	}
}

func TestRazorpayOrder(t *testing.T) {
	a := newAPI(t)
	token := a.signup(t)

	t.Run("requires auth", func(t *testing.T) {
		rec, _ := a.do(t, http.MethodPost, "/api/razorpay/order", "", map[string]any{"amount": 124900})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing amount", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/razorpay/order", token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Amount is required", body["message"])
	})

	t.Run("creates gateway order", func(t *testing.T) {
		rec, body := a.do(t, http.MethodPost, "/api/razorpay/order", token, map[string]any{"amount": 124900})
		require.Equal(t, http.StatusOK, rec.Code)
		order, ok := body["order"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "order_fake", order["id"])
		assert.Equal(t, float64(124900), order["amount"])
		assert.Equal(t, "INR", order["currency"])
	})

	t.Run("gateway failure maps to 500", func(t *testing.T) {
		a.gateway.err = errors.New("upstream timeout")
		defer func() { a.gateway.err = nil }()

		rec, body := a.do(t, http.MethodPost, "/api/razorpay/order", token, map[string]any{"amount": 100})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "Something went wrong", body["message"])
	})
}

func TestExpiredTokenRejected(t *testing.T) {
	a := newAPI(t)
	a.signup(t)

	expired := auth.NewTokenService("test-secret", -time.Minute)
	user, _ := a.users.FindByEmail(context.Background(), "a@x.com")
	token, err := expired.GenerateToken(user.ID.Hex())
	require.NoError(t, err)

	rec, _ := a.do(t, http.MethodGet, "/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStaticFallback(t *testing.T) {
	a := newAPI(t)
	rec, _ := a.do(t, http.MethodGet, "/checkout", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vastra")
}
