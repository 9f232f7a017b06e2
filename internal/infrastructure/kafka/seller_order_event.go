package kafka

type SellerOrderEvent struct {
	SubOrderID       string `json:"sub_order_id"`
	AggregateOrderID string `json:"aggregate_order_id"`
	ChannelID        string `json:"channel_id"`
	Scenario         string `json:"scenario"`
	Currency         string `json:"currency"`
	TotalWithTax     int64  `json:"total_with_tax"`
	PlatformAmount   int64  `json:"platform_amount"`
	VendorAmount     int64  `json:"vendor_amount"`
	ServicingAmount  int64  `json:"servicing_amount"`
}
