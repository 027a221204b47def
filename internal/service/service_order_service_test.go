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

func newOrderFixture(t *testing.T) ServiceOrderService {
	t.Helper()
	db := newTestDB(t)
	return NewServiceOrderService(
		repository.NewServiceOrderRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewEmployeeRepository(db),
	)
}

func TestOrderCreateStartsPendingWithDenormalizedNames(t *testing.T) {
	svc := newOrderFixture(t)

	budget := decimal.RequireFromString("499.99")
	techID := "3"
	resp, err := svc.Create(context.Background(), dto.CreateServiceOrderRequest{
		CustomerID:     "5",
		DeviceType:     "Smartphone",
		DeviceModel:    "iPhone XR",
		Defect:         "Alto-falante sem som",
		IMEI:           "351234567890123",
		DevicePassword: "2580",
		Budget:         &budget,
		TechnicianID:   &techID,
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("OS-%d-006", time.Now().Year()), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Juliana Lima", resp.CustomerName)
	require.NotNil(t, resp.TechnicianName)
	assert.Equal(t, "Ricardo Costa", *resp.TechnicianName)
}

func TestOrderCreateUnknownCustomer(t *testing.T) {
	svc := newOrderFixture(t)

	_, err := svc.Create(context.Background(), dto.CreateServiceOrderRequest{
		CustomerID:  "999",
		DeviceType:  "Smartphone",
		DeviceModel: "iPhone XR",
		Defect:      "Nao liga",
	})
	assert.Error(t, err)
}

func TestOrderUpdateAllowsAnyStatusTransition(t *testing.T) {
	svc := newOrderFixture(t)

	// OS-2023-005 is already delivered; pushing it back to pending works
	// because transitions are unconstrained.
	before, err := svc.GetByID(context.Background(), "OS-2023-005")
	require.NoError(t, err)
	require.Equal(t, "delivered", before.Status)

	resp, err := svc.Update(context.Background(), "OS-2023-005", dto.UpdateServiceOrderRequest{
		DeviceType:     before.DeviceType,
		DeviceModel:    before.DeviceModel,
		Defect:         before.Defect,
		IMEI:           before.IMEI,
		DevicePassword: before.DevicePassword,
		Budget:         before.Budget,
		Notes:          before.Notes,
		Status:         "pending",
		TechnicianID:   before.TechnicianID,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)
	assert.NotEqual(t, before.UpdatedAt, resp.UpdatedAt)
}

func TestOrderUpdateCanUnassignTheTechnician(t *testing.T) {
	svc := newOrderFixture(t)

	before, err := svc.GetByID(context.Background(), "OS-2023-001")
	require.NoError(t, err)
	require.NotNil(t, before.TechnicianID)

	resp, err := svc.Update(context.Background(), "OS-2023-001", dto.UpdateServiceOrderRequest{
		DeviceType:     before.DeviceType,
		DeviceModel:    before.DeviceModel,
		Defect:         before.Defect,
		IMEI:           before.IMEI,
		DevicePassword: before.DevicePassword,
		Budget:         before.Budget,
		Notes:          before.Notes,
		Status:         before.Status,
		TechnicianID:   nil,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.TechnicianID)
	assert.Nil(t, resp.TechnicianName)
}

func TestOrderListStatusNarrowsBeforeText(t *testing.T) {
	svc := newOrderFixture(t)

	all, err := svc.List(context.Background(), dto.ServiceOrderFilter{Status: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 5)

	diagnosing, err := svc.List(context.Background(), dto.ServiceOrderFilter{Status: "diagnosing"})
	require.NoError(t, err)
	require.Len(t, diagnosing, 1)
	assert.Equal(t, "OS-2023-002", diagnosing[0].ID)

	delivered, err := svc.List(context.Background(), dto.ServiceOrderFilter{Q: "moto", Status: "delivered"})
	require.NoError(t, err)
	require.Len(t, delivered, 1)
	assert.Equal(t, "OS-2023-005", delivered[0].ID)
}

func TestOrderDelete(t *testing.T) {
	svc := newOrderFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "OS-2023-004"))
	_, err := svc.GetByID(context.Background(), "OS-2023-004")
	assert.ErrorIs(t, err, ErrNotFound)
}
