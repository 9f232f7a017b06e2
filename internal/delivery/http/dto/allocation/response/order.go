package response

type SurchargeResponse struct {
	ID               string `json:"id"`
	Scenario         string `json:"scenario"`
	PlatformAmount   int64  `json:"platformAmount"`
	VendorAmount     int64  `json:"vendorAmount"`
	ServicingAmount  int64  `json:"servicingAmount,omitempty"`
	ServicingPartyID string `json:"servicingPartyId,omitempty"`
}

type SubOrderResponse struct {
	ID                    string             `json:"id"`
	AggregateOrderID      string             `json:"aggregateOrderId"`
	ChannelID             string             `json:"channelId"`
	LineIDs               []string           `json:"lineIds"`
	ShippingLineIDs       []string           `json:"shippingLineIds"`
	TotalWithTax          int64              `json:"totalWithTax"`
	Scenario              string             `json:"scenario,omitempty"`
	ServicingPartyID      string             `json:"servicingPartyId,omitempty"`
	ServiceAgentAvailable bool               `json:"serviceAgentAvailable"`
	Surcharge             *SurchargeResponse `json:"surcharge,omitempty"`
}

type SplitOrderResponse struct {
	SubOrders []SubOrderResponse `json:"subOrders"`
}

type FinalizeOrderResponse struct {
	SubOrders       []SubOrderResponse `json:"subOrders"`
	BlockedChannels []string           `json:"blockedChannels,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
