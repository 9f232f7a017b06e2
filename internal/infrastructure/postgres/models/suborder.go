package models

import "time"

type SubOrderModel struct {
	ID                    string `gorm:"primaryKey;type:uuid"`
	AggregateOrderID      string `gorm:"index:idx_aggregate_order"`
	ChannelID             string `gorm:"index:idx_channel"`
	TotalWithTax          int64
	Scenario              string
	ServicingPartyID      string
	ServiceAgentAvailable bool
	Position              int32
	CreatedAt             time.Time
	UpdatedAt             time.Time

	Lines         []SubOrderLineModel   `gorm:"foreignKey:SubOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ShippingLines []ShippingLineModel   `gorm:"foreignKey:SubOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Surcharge     *SellerSurchargeModel `gorm:"foreignKey:SubOrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

type SubOrderLineModel struct {
	ID               string `gorm:"primaryKey"`
	SubOrderID       string `gorm:"type:uuid;index"`
	ProductVariantID string
	Quantity         int32
	TotalWithTax     int64
	ShippingLineID   string
	SellerChannelID  string
	Position         int32
}

// A shipping line may be referenced from several sub-orders of the same
// aggregate order, hence the composite key.
type ShippingLineModel struct {
	ID           string `gorm:"primaryKey"`
	SubOrderID   string `gorm:"primaryKey;type:uuid"`
	Method       string
	PriceWithTax int64
}

type SellerSurchargeModel struct {
	ID               string `gorm:"primaryKey"`
	SubOrderID       string `gorm:"type:uuid;uniqueIndex"`
	Scenario         string
	PlatformAmount   int64
	VendorAmount     int64
	ServicingAmount  int64
	ServicingPartyID string
	CreatedAt        time.Time
}
