package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/btorralba/SEIS739Project/internal/models"
	"github.com/btorralba/SEIS739Project/internal/repo"
	"github.com/btorralba/SEIS739Project/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	H  *Handler
	DB *gorm.DB
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.Shipping{},
		&models.Payment{},
	))

	return &testEnv{
		T:  t,
		E:  echo.New(),
		DB: db,
		H:  &Handler{Svc: service.New(repo.New(db))},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func requireHTTPError(t *testing.T, err error, status int) {
	t.Helper()
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	require.Equal(t, status, he.Code)
}

func TestLoginHandler(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{CustomerID: 123, UserID: "user1", UserPass: "pass"})

	rec, c := env.doJSONRequest(http.MethodPost, "/api/login", map[string]string{
		"userID":   "user1",
		"userPass": "pass",
	})
	require.NoError(t, env.H.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "123", resp.Message)
}

func TestLoginHandler_BadPassword(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.User{CustomerID: 123, UserID: "user1", UserPass: "pass"})

	_, c := env.doJSONRequest(http.MethodPost, "/api/login", map[string]string{
		"userID":   "user1",
		"userPass": "wrong",
	})
	requireHTTPError(t, env.H.Login(c), http.StatusUnauthorized)
}

func TestGetProductHandler(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.Product{SKU: 100, ProductName: "Widget", Price: 5})

	rec, c := env.doJSONRequest(http.MethodGet, "/api/product?sku=100", nil)
	require.NoError(t, env.H.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 100, resp.SKU)
	require.Equal(t, "Widget", resp.ProductName)
}

func TestGetProductHandler_NotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/product?sku=999", nil)
	requireHTTPError(t, env.H.GetProduct(c), http.StatusNotFound)
}

func TestGetProductHandler_MissingParams(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/product", nil)
	requireHTTPError(t, env.H.GetProduct(c), http.StatusBadRequest)
}

func TestAddProductHandler(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/add/product", models.Product{
		SKU:         100,
		ProductName: "Widget",
		Price:       5,
		Quantity:    3,
	})
	require.NoError(t, env.H.AddProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Message)
}

func TestAddShippingHandler_EchoesGeneratedID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/add/shipping", models.Shipping{
		AddressLine1: "1 Main St",
		City:         "St Paul",
		StateAbbr:    "MN",
		CustomerID:   7,
	})
	require.NoError(t, env.H.AddShipping(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "1", resp.Message)
}

func TestGetOrdersHandler_Precedence(t *testing.T) {
	env := newTestEnv(t)

	env.DB.Create(&models.Order{SKU: 200, Status: "NEW", CustomerID: 5})
	env.DB.Create(&models.Order{SKU: 200, Status: "NEW", CustomerID: 6})

	rec, c := env.doJSONRequest(http.MethodGet, "/api/ordersByParam?customerId=5&sku=200", nil)
	require.NoError(t, env.H.GetOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, 5, resp[0].CustomerID)
}

func TestUpdateProductHandler_MissingSKU(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodPost, "/api/update/product", models.Product{
		SKU:      999,
		Price:    9.99,
		Quantity: 5,
	})
	requireHTTPError(t, env.H.UpdateProduct(c), http.StatusNotFound)
}

func TestGetShippingAddressHandler_NoRecord(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/api/shippingAddressByCustomerId?customerID=7", nil)
	requireHTTPError(t, env.H.GetShippingAddress(c), http.StatusNotFound)
}

func TestAddPaymentHandler_DropsCVV(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodPost, "/api/add/payment", map[string]interface{}{
		"customerId": 7,
		"cardNumber": "4111111111111111",
		"expiration": "01/30",
		"cvv":        "123",
	})
	require.NoError(t, env.H.AddPayment(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp service.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "success", resp.Message)

	var saved models.Payment
	require.NoError(t, env.DB.First(&saved).Error)
	require.Equal(t, "4111111111111111", saved.CardNumber)
}
