package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-integration/internal/integration-service/domain"
)

func TestCorrelator_Resolve(t *testing.T) {
	t.Run("first owned entry wins", func(t *testing.T) {
		orders := &fakeOrders{preexisting: []domain.ListedOrder{
			{ID: "o-a", CustomerID: "other"},
			{ID: "o-b", CustomerID: "cust"},
			{ID: "o-c", CustomerID: "cust"},
		}}

		id, err := NewCorrelator(orders, 100, 1).Resolve(context.Background(), "cust")
		require.NoError(t, err)
		assert.Equal(t, "o-b", id)
		assert.Equal(t, 1, orders.listCalls)
	})

	t.Run("no owned entry is a miss", func(t *testing.T) {
		orders := &fakeOrders{preexisting: []domain.ListedOrder{{ID: "o-a", CustomerID: "other"}}}

		_, err := NewCorrelator(orders, 100, 1).Resolve(context.Background(), "cust")
		require.ErrorIs(t, err, domain.ErrCorrelationMiss)
	})

	t.Run("empty listing is a miss", func(t *testing.T) {
		_, err := NewCorrelator(&fakeOrders{}, 100, 1).Resolve(context.Background(), "cust")
		require.ErrorIs(t, err, domain.ErrCorrelationMiss)
	})

	t.Run("entry beyond the first page is missed by default", func(t *testing.T) {
		orders := &fakeOrders{}
		for i := 0; i < 3; i++ {
			orders.preexisting = append(orders.preexisting, domain.ListedOrder{ID: fmt.Sprintf("o-%d", i), CustomerID: "other"})
		}
		orders.preexisting = append(orders.preexisting, domain.ListedOrder{ID: "mine", CustomerID: "cust"})

		_, err := NewCorrelator(orders, 2, 1).Resolve(context.Background(), "cust")
		require.ErrorIs(t, err, domain.ErrCorrelationMiss)
		assert.Equal(t, 1, orders.listCalls)
	})

	t.Run("more pages reach later entries", func(t *testing.T) {
		orders := &fakeOrders{}
		for i := 0; i < 3; i++ {
			orders.preexisting = append(orders.preexisting, domain.ListedOrder{ID: fmt.Sprintf("o-%d", i), CustomerID: "other"})
		}
		orders.preexisting = append(orders.preexisting, domain.ListedOrder{ID: "mine", CustomerID: "cust"})

		id, err := NewCorrelator(orders, 2, 5).Resolve(context.Background(), "cust")
		require.NoError(t, err)
		assert.Equal(t, "mine", id)
		assert.Equal(t, 2, orders.listCalls)
	})

	t.Run("stops at the last page", func(t *testing.T) {
		orders := &fakeOrders{preexisting: []domain.ListedOrder{{ID: "o-a", CustomerID: "other"}}}

		_, err := NewCorrelator(orders, 2, 10).Resolve(context.Background(), "cust")
		require.ErrorIs(t, err, domain.ErrCorrelationMiss)
		assert.Equal(t, 1, orders.listCalls)
	})

	t.Run("listing failure is returned as is", func(t *testing.T) {
		orders := &fakeOrders{listFails: 1}

		_, err := NewCorrelator(orders, 100, 1).Resolve(context.Background(), "cust")
		require.ErrorIs(t, err, errUnavailable)
		assert.False(t, domain.IsPermanent(err))
	})
}
