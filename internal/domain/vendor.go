package domain

import "context"

// Vendor pairs a sales channel with its operating seller, annotated with
// price and stock for one product. Vendors are rebuilt per selection call
// and never persisted.
type Vendor struct {
	ChannelToken  string
	ChannelCode   string
	Locales       []string
	DefaultLocale string
	SellerID      string
	Seller        *SellerProfile
	Price         int64
	InStock       bool

	// Resolved lazily during one selection call.
	Coordinate *Coordinate
}

func (v *Vendor) SupportsLocale(locale string) bool {
	for _, l := range v.Locales {
		if l == locale {
			return true
		}
	}
	return false
}

type CatalogService interface {
	ListVendorsForProduct(ctx context.Context, productID string) ([]*Vendor, error)
}

// RequestContext carries the caller identity for one selection call.
// An empty CustomerID means the caller is anonymous.
type RequestContext struct {
	CustomerID string
	Locale     string
}

func (rc RequestContext) Authenticated() bool {
	return rc.CustomerID != ""
}

type CustomerLocation struct {
	PostalCode        string
	Country           string
	PreferredSellerID string
}

type CustomerDirectory interface {
	// GetCustomerLocation returns nil when the customer has no stored location.
	GetCustomerLocation(ctx context.Context, customerID string) (*CustomerLocation, error)
}
