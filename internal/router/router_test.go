package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guilhermemendeslima/clickcell-system/internal/config"
	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/infra"
	"github.com/guilhermemendeslima/clickcell-system/internal/seed"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:               8000,
		Env:                "development",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		DemoPassword:       "123456",
		LoginDelayMS:       0,
	}
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	require.NoError(t, seed.Run(db))

	r, err := New(cfg, db)
	require.NoError(t, err)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", dto.LoginRequest{Email: email, Password: "123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealthIsPublic(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"db":"connected"`)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/v1/customers", "/v1/products", "/v1/sales", "/v1/service-orders", "/v1/dashboard"} {
		w := doJSON(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", dto.LoginRequest{Email: "admin@clickcelulares.com", Password: "senha"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Credenciais invalidas")
}

func TestLoginThenBrowseCustomers(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "vendas@clickcelulares.com")

	w := doJSON(t, r, http.MethodGet, "/v1/customers", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var customers []dto.CustomerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &customers))
	assert.Len(t, customers, 8)
}

func TestLogoutInvalidatesTheToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "vendas@clickcelulares.com")

	w := doJSON(t, r, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The JWT is still within its expiry window but the session is gone.
	w = doJSON(t, r, http.MethodGet, "/v1/customers", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestEmployeeRoutesAreAdminOnly(t *testing.T) {
	r := newTestRouter(t)

	seller := login(t, r, "vendas@clickcelulares.com")
	w := doJSON(t, r, http.MethodGet, "/v1/employees", seller, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := login(t, r, "admin@clickcelulares.com")
	w = doJSON(t, r, http.MethodGet, "/v1/employees", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var employees []dto.EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &employees))
	assert.Len(t, employees, 5)
}

func TestRegisterSaleTakesTheSellerFromTheToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "vendas@clickcelulares.com")

	w := doJSON(t, r, http.MethodPost, "/v1/sales", token, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "8", Quantity: 2}},
		PaymentMethod: "cash",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var sale dto.SaleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sale))
	assert.Equal(t, "2", sale.EmployeeID)
	assert.Equal(t, "Marina Souza", sale.EmployeeName)
	assert.Equal(t, "179.98", sale.Total.String())
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "admin@clickcelulares.com")

	w := doJSON(t, r, http.MethodGet, "/v1/dashboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum dto.DashboardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, "23669.9", sum.TotalSales.String())
	assert.EqualValues(t, 8, sum.Customers)
	assert.Equal(t, 3, sum.PendingOrders)
	assert.Len(t, sum.RecentSales, 5)
}

func TestDeleteAdminEmployeeAsksForThePasswordAgain(t *testing.T) {
	r := newTestRouter(t)
	admin := login(t, r, "admin@clickcelulares.com")

	w := doJSON(t, r, http.MethodDelete, "/v1/employees/1", admin, dto.DeleteEmployeeRequest{Password: "errada"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Senha incorreta")

	w = doJSON(t, r, http.MethodDelete, "/v1/employees/1", admin, dto.DeleteEmployeeRequest{Password: "123456"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestValidationErrorsReturn422(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r, "vendas@clickcelulares.com")

	w := doJSON(t, r, http.MethodPost, "/v1/customers", token, map[string]string{"name": "Sem Contato"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Erro de validacao")
}
