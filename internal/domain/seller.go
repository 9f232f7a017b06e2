package domain

// VendorType classifies the commercial role of the seller behind a channel.
type VendorType string

const (
	VendorTypePlatformOperator VendorType = "PLATFORM_OPERATOR"
	VendorTypeManufacturer     VendorType = "MANUFACTURER"
	VendorTypePhysicalStore    VendorType = "PHYSICAL_STORE_OR_SERVICE_DEALER"
	VendorTypeAgent            VendorType = "AGENT"
)

type SellerProfile struct {
	SellerID   string
	Name       string
	Email      string
	Phone      string
	PostalCode string
	Country    string
	VendorType VendorType

	// Delegation links: dealers authorized to service the brand and
	// an optional distributor/agent reference.
	Dealers     []DealerRef
	Distributor *DealerRef
}

// DealerRef is a lightweight reference to a downstream servicing party.
type DealerRef struct {
	ID      string
	Name    string
	Profile *SellerProfile
}

// FirstDealer returns the first brand-authorized dealer link, if any.
func (p *SellerProfile) FirstDealer() *DealerRef {
	if p == nil || len(p.Dealers) == 0 {
		return nil
	}
	return &p.Dealers[0]
}
