package allocationdto

type SellerOutput struct {
	SellerID   string `json:"sellerId"`
	Name       string `json:"name"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	VendorType string `json:"vendorType"`
}

type VendorOutput struct {
	ChannelToken  string        `json:"channelToken"`
	ChannelCode   string        `json:"channelCode"`
	SellerID      string        `json:"sellerId"`
	Price         int64         `json:"priceWithTax"`
	InStock       bool          `json:"inStock"`
	DefaultLocale string        `json:"defaultLocale,omitempty"`
	Seller        *SellerOutput `json:"seller,omitempty"`
}

type ServiceLocationOutput struct {
	ServiceDealer         *VendorOutput `json:"serviceDealer"`
	ServiceAgentAvailable bool          `json:"serviceAgentAvailable"`
	Scenario              string        `json:"scenario"`
}

type ResolveChannelOutput struct {
	LineID    string `json:"lineId"`
	ChannelID string `json:"channelId"`
	Fallback  bool   `json:"fallback"`
}
