package domain

import (
	"context"
	"time"
)

type OrderLine struct {
	ID               string
	ProductVariantID string
	Quantity         int32
	TotalWithTax     int64
	ShippingLineID   string

	// Assigned at checkout; empty means channel resolution failed.
	SellerChannelID string
}

type ShippingLine struct {
	ID           string
	Method       string
	PriceWithTax int64
}

type AggregateOrder struct {
	ID            string
	Code          string
	CustomerID    string
	Currency      string
	Lines         []*OrderLine
	ShippingLines []*ShippingLine
}

// SubOrder is the per-vendor partition of an aggregate order.
type SubOrder struct {
	ID               string
	AggregateOrderID string
	ChannelID        string
	Lines            []*OrderLine
	ShippingLines    []*ShippingLine
	TotalWithTax     int64

	Scenario              Scenario
	ServicingPartyID      string
	ServiceAgentAvailable bool

	Surcharge *SellerSurcharge
	CreatedAt time.Time
}

// SellerSurcharge materializes one fee split for a finalized sub-order.
// The three amounts always sum exactly to the sub-order total-with-tax.
type SellerSurcharge struct {
	ID               string
	SubOrderID       string
	Scenario         Scenario
	PlatformAmount   int64
	VendorAmount     int64
	ServicingAmount  int64
	ServicingPartyID string
}

type SubOrderRepository interface {
	// SaveSubOrders persists sub-orders and their surcharges atomically.
	SaveSubOrders(ctx context.Context, subOrders []*SubOrder) error
	GetSubOrdersByAggregateOrderID(ctx context.Context, aggregateOrderID string) ([]*SubOrder, error)
}
