package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"golang.org/x/sync/errgroup"
)

// HTTPCatalogClient talks to the catalog/inventory service. Listing vendors
// is a two-step call: one request for the channels selling the product, then
// a per-channel availability request fanned out concurrently.
type HTTPCatalogClient struct {
	Address string
	client  *http.Client
}

func NewHTTPCatalogClient(address string) *HTTPCatalogClient {
	return &HTTPCatalogClient{
		Address: address,
		client:  &http.Client{},
	}
}

type sellerPayload struct {
	SellerID   string `json:"sellerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	VendorType string `json:"vendorType"`

	Dealers []struct {
		ID      string         `json:"id"`
		Name    string         `json:"name"`
		Profile *sellerPayload `json:"profile,omitempty"`
	} `json:"dealers,omitempty"`
	Distributor *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"distributor,omitempty"`
}

type vendorPayload struct {
	ChannelToken  string        `json:"channelToken"`
	ChannelCode   string        `json:"channelCode"`
	Locales       []string      `json:"locales"`
	DefaultLocale string        `json:"defaultLocale"`
	SellerID      string        `json:"sellerId"`
	Seller        sellerPayload `json:"seller"`
}

type availabilityPayload struct {
	PriceWithTax        int64 `json:"priceWithTax"`
	StockOnHand         int64 `json:"stockOnHand"`
	StockAllocated      int64 `json:"stockAllocated"`
	OutOfStockThreshold int64 `json:"outOfStockThreshold"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (c *HTTPCatalogClient) ListVendorsForProduct(ctx context.Context, productID string) ([]*domain.Vendor, error) {
	var payloads []vendorPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/v1/products/%s/vendors", c.Address, productID), &payloads); err != nil {
		return nil, err
	}

	vendors := make([]*domain.Vendor, len(payloads))
	for i, payload := range payloads {
		vendors[i] = toDomainVendor(payload)
	}

	// Price and stock are fetched per channel; fan the calls out, bounded
	// by the channel count.
	g, gctx := errgroup.WithContext(ctx)
	for _, vendor := range vendors {
		vendor := vendor
		g.Go(func() error {
			var availability availabilityPayload
			url := fmt.Sprintf("%s/v1/channels/%s/variants/%s/availability", c.Address, vendor.ChannelToken, productID)
			if err := c.getJSON(gctx, url, &availability); err != nil {
				return err
			}
			vendor.Price = availability.PriceWithTax
			saleable := availability.StockOnHand - availability.StockAllocated - availability.OutOfStockThreshold
			vendor.InStock = saleable > 0
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return vendors, nil
}

func (c *HTTPCatalogClient) getJSON(ctx context.Context, url string, target any) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	response, err := c.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		return json.Unmarshal(responseBodyBytes, target)
	}

	var errorResponse errorPayload
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
		return fmt.Errorf("catalog service returned status %d", response.StatusCode)
	}
	return errors.New(errorResponse.Error)
}

func toDomainVendor(payload vendorPayload) *domain.Vendor {
	return &domain.Vendor{
		ChannelToken:  payload.ChannelToken,
		ChannelCode:   payload.ChannelCode,
		Locales:       payload.Locales,
		DefaultLocale: payload.DefaultLocale,
		SellerID:      payload.SellerID,
		Seller:        toDomainSeller(&payload.Seller),
	}
}

func toDomainSeller(payload *sellerPayload) *domain.SellerProfile {
	if payload == nil {
		return nil
	}

	seller := &domain.SellerProfile{
		SellerID:   payload.SellerID,
		Name:       payload.Name,
		Email:      payload.Email,
		Phone:      payload.Phone,
		PostalCode: payload.PostalCode,
		Country:    payload.Country,
		VendorType: domain.VendorType(payload.VendorType),
	}
	for _, dealer := range payload.Dealers {
		seller.Dealers = append(seller.Dealers, domain.DealerRef{
			ID:      dealer.ID,
			Name:    dealer.Name,
			Profile: toDomainSeller(dealer.Profile),
		})
	}
	if payload.Distributor != nil {
		seller.Distributor = &domain.DealerRef{
			ID:   payload.Distributor.ID,
			Name: payload.Distributor.Name,
		}
	}
	return seller
}
