package request

type OrderLine struct {
	ID               string `json:"id"`
	ProductVariantID string `json:"productVariantId"`
	Quantity         int32  `json:"quantity"`
	TotalWithTax     int64  `json:"totalWithTax"`
	ShippingLineID   string `json:"shippingLineId"`
	SellerChannelID  string `json:"sellerChannelId"`
}

type ShippingLine struct {
	ID           string `json:"id"`
	Method       string `json:"method"`
	PriceWithTax int64  `json:"priceWithTax"`
}

type AggregateOrder struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	CustomerID    string         `json:"customerId"`
	Currency      string         `json:"currency"`
	Lines         []OrderLine    `json:"lines"`
	ShippingLines []ShippingLine `json:"shippingLines"`
}

type SplitOrderRequest struct {
	Order AggregateOrder `json:"order"`
}

type FinalizeOrderRequest struct {
	Order AggregateOrder `json:"order"`
}

type ResolveChannelRequest struct {
	Line       OrderLine `json:"line"`
	CustomerID string    `json:"customerId"`
	Locale     string    `json:"locale"`
}
