package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

func newSaleFixture(t *testing.T) (SaleService, ProductService, CustomerService) {
	t.Helper()
	db := newTestDB(t)
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	return NewSaleService(saleRepo, productRepo, customerRepo),
		NewProductService(productRepo),
		NewCustomerService(customerRepo)
}

func TestSaleRegisterTotalIsTheSumOfLineSubtotals(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	customerID := "4"
	resp, err := svc.Register(context.Background(), dto.RegisterSaleRequest{
		CustomerID: &customerID,
		Items: []dto.SaleItemRequest{
			{ProductID: "4", Quantity: 2}, // Carregador USB-C 20W, 129.99
			{ProductID: "8", Quantity: 1}, // Capa Protetora iPhone 14, 89.99
		},
		PaymentMethod: "pix",
	}, "2", "Marina Souza")
	require.NoError(t, err)

	assert.True(t, resp.Total.Equal(decimal.RequireFromString("349.97")), resp.Total.String())
	require.Len(t, resp.Items, 2)
	assert.True(t, resp.Items[0].Subtotal.Equal(decimal.RequireFromString("259.98")))
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, "Marina Souza", resp.EmployeeName)
}

func TestSaleRegisterGeneratesSequentialYearScopedIDs(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	resp, err := svc.Register(context.Background(), dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "8", Quantity: 1}},
		PaymentMethod: "cash",
	}, "4", "Juliana Alves")
	require.NoError(t, err)

	// Five seeded sales, so the next receives sequence 006.
	assert.Equal(t, fmt.Sprintf("V-%d-006", time.Now().Year()), resp.ID)
}

func TestSaleRegisterBumpsTheCustomerCounters(t *testing.T) {
	svc, _, customers := newSaleFixture(t)

	before, err := customers.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, 5, before.Purchases)

	customerID := "1"
	_, err = svc.Register(context.Background(), dto.RegisterSaleRequest{
		CustomerID:    &customerID,
		Items:         []dto.SaleItemRequest{{ProductID: "3", Quantity: 1}},
		PaymentMethod: "credit_card",
	}, "2", "Marina Souza")
	require.NoError(t, err)

	after, err := customers.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 6, after.Purchases)
	require.NotNil(t, after.LastPurchase)
	assert.Equal(t, time.Now().Format("2006-01-02"), *after.LastPurchase)
}

func TestSaleRegisterDoesNotTouchStock(t *testing.T) {
	svc, products, _ := newSaleFixture(t)

	_, err := svc.Register(context.Background(), dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "7", Quantity: 100}},
		PaymentMethod: "cash",
	}, "2", "Marina Souza")
	require.NoError(t, err)

	// On-hand quantity is display data only; selling never decrements it,
	// which is also why a quantity above stock goes through.
	p, err := products.GetByID(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity)
}

func TestSaleRegisterWalkInCustomer(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	resp, err := svc.Register(context.Background(), dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "8", Quantity: 2}},
		PaymentMethod: "cash",
	}, "4", "Juliana Alves")
	require.NoError(t, err)
	assert.Nil(t, resp.CustomerID)
	assert.Nil(t, resp.CustomerName)
}

func TestSaleRegisterUnknownProduct(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	_, err := svc.Register(context.Background(), dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{{ProductID: "999", Quantity: 1}},
		PaymentMethod: "cash",
	}, "2", "Marina Souza")
	assert.Error(t, err)
}

func TestSaleUpdateReplacesTheItemList(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	customerID := "2"
	resp, err := svc.Update(context.Background(), "V-2023-002", dto.UpdateSaleRequest{
		CustomerID:    &customerID,
		Items:         []dto.SaleItemRequest{{ProductID: "2", Quantity: 1}},
		PaymentMethod: "pix",
		Status:        "completed",
	})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("4499.99")), resp.Total.String())
	// The registering employee and the sale date survive edits.
	assert.Equal(t, "Juliana Alves", resp.EmployeeName)
	assert.Equal(t, "2023-10-15T10:15:00Z", resp.Date)

	fetched, err := svc.GetByID(context.Background(), "V-2023-002")
	require.NoError(t, err)
	assert.Len(t, fetched.Items, 1)
}

func TestSaleUpdateCanCancel(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	customerID := "1"
	resp, err := svc.Update(context.Background(), "V-2023-001", dto.UpdateSaleRequest{
		CustomerID: &customerID,
		Items: []dto.SaleItemRequest{
			{ProductID: "1", Quantity: 1},
			{ProductID: "3", Quantity: 1},
		},
		PaymentMethod: "credit_card",
		Status:        "canceled",
	})
	require.NoError(t, err)
	assert.Equal(t, "canceled", resp.Status)
}

func TestSaleListFilterMatchesIDCustomerOrPaymentMethod(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	all, err := svc.List(context.Background(), dto.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	byID, err := svc.List(context.Background(), dto.SaleFilter{Q: "v-2023-003"})
	require.NoError(t, err)
	require.Len(t, byID, 1)
	assert.Equal(t, "V-2023-003", byID[0].ID)

	byMethod, err := svc.List(context.Background(), dto.SaleFilter{Q: "pix"})
	require.NoError(t, err)
	require.Len(t, byMethod, 1)
	assert.Equal(t, "V-2023-002", byMethod[0].ID)
}

func TestSaleDeleteRemovesTheRecord(t *testing.T) {
	svc, _, _ := newSaleFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "V-2023-005"))
	_, err := svc.GetByID(context.Background(), "V-2023-005")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := svc.List(context.Background(), dto.SaleFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
}
