package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guilhermemendeslima/clickcell-system/internal/dto"
	"github.com/guilhermemendeslima/clickcell-system/internal/repository"
)

func newCustomerFixture(t *testing.T) CustomerService {
	t.Helper()
	return NewCustomerService(repository.NewCustomerRepository(newTestDB(t)))
}

func TestCustomerListReturnsTheWholeSet(t *testing.T) {
	svc := newCustomerFixture(t)

	customers, err := svc.List(context.Background(), dto.CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, customers, 8)
}

func TestCustomerListFilterMatchesNamePhoneOrEmail(t *testing.T) {
	svc := newCustomerFixture(t)

	byName, err := svc.List(context.Background(), dto.CustomerFilter{Q: "ana"})
	require.NoError(t, err)
	// "ana" hits Ana Silva and Mariana Costa by name, Juliana Lima by email.
	assert.Len(t, byName, 3)
	for _, c := range byName {
		match := strings.Contains(strings.ToLower(c.Name), "ana") ||
			strings.Contains(strings.ToLower(c.Email), "ana")
		assert.True(t, match, c.Name)
	}

	byPhone, err := svc.List(context.Background(), dto.CustomerFilter{Q: "91098"})
	require.NoError(t, err)
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Rodrigo Alves", byPhone[0].Name)
}

func TestCustomerListNoMatchesIsEmptyNotError(t *testing.T) {
	svc := newCustomerFixture(t)

	customers, err := svc.List(context.Background(), dto.CustomerFilter{Q: "zzz-no-such-customer"})
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomerCreateAppendsToTheList(t *testing.T) {
	svc := newCustomerFixture(t)

	created, err := svc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:     "Bruno Rocha",
		Phone:    "(31) 90000-0000",
		Email:    "bruno.rocha@email.com",
		Address:  "Rua Nova, 10, Centro, Belo Horizonte, MG",
		Birthday: "1991-01-01",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "C-"))
	assert.Zero(t, created.Purchases)
	assert.Nil(t, created.LastPurchase)

	customers, err := svc.List(context.Background(), dto.CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, customers, 9)
}

func TestCustomerUpdateKeepsPurchaseHistory(t *testing.T) {
	svc := newCustomerFixture(t)

	updated, err := svc.Update(context.Background(), "1", dto.UpdateCustomerRequest{
		Name:     "Ana Silva Pereira",
		Phone:    "(31) 98765-4321",
		Email:    "ana.silva@email.com",
		Address:  "Rua dos Tupis, 123, Centro, Belo Horizonte, MG",
		Birthday: "1990-05-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva Pereira", updated.Name)
	assert.Equal(t, 5, updated.Purchases)
}

func TestCustomerDelete(t *testing.T) {
	svc := newCustomerFixture(t)

	require.NoError(t, svc.Delete(context.Background(), "8"))

	_, err := svc.GetByID(context.Background(), "8")
	assert.ErrorIs(t, err, ErrNotFound)

	customers, err := svc.List(context.Background(), dto.CustomerFilter{})
	require.NoError(t, err)
	assert.Len(t, customers, 7)
}

func TestCustomerNotFound(t *testing.T) {
	svc := newCustomerFixture(t)

	_, err := svc.GetByID(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), "999")
	assert.ErrorIs(t, err, ErrNotFound)
}
