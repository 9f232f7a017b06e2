package usecase

import (
	"testing"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func splitOrderFixture() *domain.AggregateOrder {
	return &domain.AggregateOrder{
		ID:       "order-1",
		Code:     "ORD-1",
		Currency: "EUR",
		Lines: []*domain.OrderLine{
			{ID: "line-1", ProductVariantID: "var-1", Quantity: 1, TotalWithTax: 1000, SellerChannelID: "ch-a", ShippingLineID: "ship-a"},
			{ID: "line-2", ProductVariantID: "var-2", Quantity: 2, TotalWithTax: 2000, SellerChannelID: "ch-b", ShippingLineID: "ship-b"},
			{ID: "line-3", ProductVariantID: "var-3", Quantity: 1, TotalWithTax: 500, SellerChannelID: "ch-a", ShippingLineID: "ship-a"},
		},
		ShippingLines: []*domain.ShippingLine{
			{ID: "ship-a", Method: "standard", PriceWithTax: 300},
			{ID: "ship-b", Method: "express", PriceWithTax: 700},
		},
	}
}

func TestSplitOrder_OneSubOrderPerChannel(t *testing.T) {
	subOrders := SplitOrder(splitOrderFixture())

	require.Len(t, subOrders, 2)
	// first-appearance order of the channels among the lines
	assert.Equal(t, "ch-a", subOrders[0].ChannelID)
	assert.Equal(t, "ch-b", subOrders[1].ChannelID)
}

func TestSplitOrder_LinesArePartitioned(t *testing.T) {
	order := splitOrderFixture()
	subOrders := SplitOrder(order)

	var total int
	seen := make(map[string]bool)
	for _, subOrder := range subOrders {
		for _, line := range subOrder.Lines {
			assert.False(t, seen[line.ID], "line %s appears twice", line.ID)
			seen[line.ID] = true
			assert.Equal(t, subOrder.ChannelID, line.SellerChannelID)
			total++
		}
	}
	assert.Equal(t, len(order.Lines), total)
}

func TestSplitOrder_ShippingLineAttachedOncePerSubOrder(t *testing.T) {
	subOrders := SplitOrder(splitOrderFixture())

	require.Len(t, subOrders[0].ShippingLines, 1)
	assert.Equal(t, "ship-a", subOrders[0].ShippingLines[0].ID)
	// lines 1 and 3 plus one shipping line
	assert.Equal(t, int64(1000+500+300), subOrders[0].TotalWithTax)

	require.Len(t, subOrders[1].ShippingLines, 1)
	assert.Equal(t, "ship-b", subOrders[1].ShippingLines[0].ID)
	assert.Equal(t, int64(2000+700), subOrders[1].TotalWithTax)
}

func TestSplitOrder_SharedShippingLineAppearsInBothSubOrders(t *testing.T) {
	order := splitOrderFixture()
	for _, line := range order.Lines {
		line.ShippingLineID = "ship-a"
	}

	subOrders := SplitOrder(order)

	require.Len(t, subOrders, 2)
	for _, subOrder := range subOrders {
		require.Len(t, subOrder.ShippingLines, 1)
		assert.Equal(t, "ship-a", subOrder.ShippingLines[0].ID)
	}
}

func TestSplitOrder_UnresolvedLinesAreExcluded(t *testing.T) {
	order := splitOrderFixture()
	order.Lines = append(order.Lines, &domain.OrderLine{ID: "line-orphan", TotalWithTax: 999})

	subOrders := SplitOrder(order)

	require.Len(t, subOrders, 2)
	for _, subOrder := range subOrders {
		for _, line := range subOrder.Lines {
			assert.NotEqual(t, "line-orphan", line.ID)
		}
	}
}

func TestSplitOrder_EmptyOrder(t *testing.T) {
	subOrders := SplitOrder(&domain.AggregateOrder{ID: "order-empty"})

	assert.Empty(t, subOrders)
}

func TestSplitOrder_SubOrdersCarryAggregateReference(t *testing.T) {
	subOrders := SplitOrder(splitOrderFixture())

	ids := make(map[string]bool)
	for _, subOrder := range subOrders {
		assert.Equal(t, "order-1", subOrder.AggregateOrderID)
		assert.NotEmpty(t, subOrder.ID)
		assert.False(t, ids[subOrder.ID])
		ids[subOrder.ID] = true
	}
}
