package service

import (
	"context"
	"testing"
	"time"

	"github.com/greenbowl/greenbowl-backend/internal/app/model"
	"github.com/greenbowl/greenbowl-backend/internal/app/repository"
	"github.com/greenbowl/greenbowl-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCheckoutServiceTest(t *testing.T) (CheckoutService, repository.CartRepository, *model.User, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(user).Error)

	category := &model.Category{Name: "Beverages"}
	require.NoError(t, testDB.Create(category).Error)
	product := &model.Product{Name: "Latte", Price: 89.00, CategoryID: category.ID, IsAvailable: true}
	require.NoError(t, testDB.Create(product).Error)

	cartRepo := repository.NewCartRepository(testDB)
	return NewCheckoutService(cartRepo, 0), cartRepo, user, product
}

func TestCheckoutService_PrepareOrder(t *testing.T) {
	checkoutService, cartRepo, user, product := setupCheckoutServiceTest(t)

	t.Run("Empty cart rejected", func(t *testing.T) {
		cart, err := checkoutService.PrepareOrder(user.ID)
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, cart)
	})

	t.Run("Summary with total", func(t *testing.T) {
		require.NoError(t, cartRepo.Upsert(&model.CartItem{
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  3,
		}))

		cart, err := checkoutService.PrepareOrder(user.ID)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.InDelta(t, 3*89.00, cart.Total, 0.001)
	})
}

func TestCheckoutService_ProcessPayment(t *testing.T) {
	checkoutService, cartRepo, user, product := setupCheckoutServiceTest(t)
	ctx := context.Background()

	t.Run("Empty cart still succeeds", func(t *testing.T) {
		err := checkoutService.ProcessPayment(ctx, user.ID)
		require.NoError(t, err)

		count, err := cartRepo.CountByUserID(user.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("Cart cleared on success", func(t *testing.T) {
		require.NoError(t, cartRepo.Upsert(&model.CartItem{
			UserID:    user.ID,
			ProductID: product.ID,
			Quantity:  2,
		}))

		err := checkoutService.ProcessPayment(ctx, user.ID)
		require.NoError(t, err)

		count, err := cartRepo.CountByUserID(user.ID)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestCheckoutService_ProcessPayment_ContextCancelled(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	user := &model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, testDB.Create(user).Error)
	category := &model.Category{Name: "Beverages"}
	require.NoError(t, testDB.Create(category).Error)
	product := &model.Product{Name: "Cola", Price: 49.00, CategoryID: category.ID, IsAvailable: true}
	require.NoError(t, testDB.Create(product).Error)

	cartRepo := repository.NewCartRepository(testDB)
	checkoutService := NewCheckoutService(cartRepo, time.Minute)

	require.NoError(t, cartRepo.Upsert(&model.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  1,
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = checkoutService.ProcessPayment(ctx, user.ID)
	assert.ErrorIs(t, err, context.Canceled)

	// The cart survives a failed payment.
	count, err := cartRepo.CountByUserID(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
