package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oakFloor = ProductInfo{
	Slug:       "vinylova-podlaha-dub-prirodni",
	Title:      "Vinylová podlaha Dub přírodní",
	Image:      "/img/dub-prirodni.jpg",
	Link:       "/podlahy/vinylova-podlaha-dub-prirodni",
	PriceNet:   549,
	PriceGross: 664,
	Currency:   "CZK",
}

func newTestStore() *Store {
	return NewStore(NewMemoryPersistence())
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
	require.NoError(t, err)
	item, err := s.AddItem(ctx, "cart-1", oakFloor, 3, false)
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	items, err := s.Items(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddSampleIsSingleton(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	sample := oakFloor
	sample.PriceNet = 0
	sample.PriceGross = 0

	first, err := s.AddItem(ctx, "cart-1", sample, 1, true)
	require.NoError(t, err)
	second, err := s.AddItem(ctx, "cart-1", sample, 4, true)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, second.Quantity)

	items, err := s.Items(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsSample)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSampleAndPurchaseCoexist(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "cart-1", oakFloor, 1, true)
	require.NoError(t, err)

	items, err := s.Items(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestUpdateQuantityFloorRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -1} {
		s := newTestStore()
		ctx := context.Background()

		item, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
		require.NoError(t, err)

		require.NoError(t, s.UpdateQuantity(ctx, "cart-1", item.ID, qty))

		items, err := s.Items(ctx, "cart-1")
		require.NoError(t, err)
		assert.Empty(t, items)
	}
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	item, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
	require.NoError(t, err)

	require.NoError(t, s.UpdateQuantity(ctx, "cart-1", item.ID, 7))

	items, err := s.Items(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)
}

func TestRemoveAbsentItemIsNoop(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.RemoveItem(context.Background(), "cart-1", "nothing-here"))
}

func TestPersistenceRoundTrip(t *testing.T) {
	persist := NewMemoryPersistence()
	ctx := context.Background()

	s := NewStore(persist)
	_, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "cart-1", oakFloor, 1, true)
	require.NoError(t, err)

	before, err := s.Summary(ctx, "cart-1")
	require.NoError(t, err)

	// A fresh store over the same adapter simulates a reload.
	rehydrated := NewStore(persist)
	after, err := rehydrated.Summary(ctx, "cart-1")
	require.NoError(t, err)

	assert.ElementsMatch(t, before.Items, after.Items)
	assert.Equal(t, before.TotalItems, after.TotalItems)
	assert.Equal(t, before.TotalPrice, after.TotalPrice)
}

func TestClearCartEmptiesUnconditionally(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "cart-1", oakFloor, 3, false)
	require.NoError(t, err)

	require.NoError(t, s.ClearCart(ctx, "cart-1"))
	require.NoError(t, s.ClearCart(ctx, "cart-1")) // already empty, still fine

	sum, err := s.Summary(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, sum.Items)
	assert.Zero(t, sum.TotalItems)
	assert.Zero(t, sum.TotalPrice)
}

func TestSummaryTotals(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.AddItem(ctx, "cart-1", oakFloor, 2, false)
	require.NoError(t, err)

	sum, err := s.Summary(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 2, sum.TotalItems)
	assert.Equal(t, int64(2*664), sum.TotalPrice)
	assert.Equal(t, "CZK", sum.Currency)
}
