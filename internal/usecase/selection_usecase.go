package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/metrics"
	"golang.org/x/sync/errgroup"
)

const maxGeocodeConcurrency = 8

type SelectionUsecase interface {
	// SelectVendor returns (nil, nil) when no eligible vendor exists.
	SelectVendor(ctx context.Context, productID string, reqCtx domain.RequestContext) (*domain.Vendor, error)
}

type DefaultSelectionUsecase struct {
	Catalog   domain.CatalogService
	Customers domain.CustomerDirectory
	Geocoder  domain.Geocoder
	Metrics   *metrics.AllocationMetrics
}

func NewDefaultSelectionUsecase(
	catalog domain.CatalogService,
	customers domain.CustomerDirectory,
	geocoder domain.Geocoder,
	allocationMetrics *metrics.AllocationMetrics) *DefaultSelectionUsecase {

	return &DefaultSelectionUsecase{
		Catalog:   catalog,
		Customers: customers,
		Geocoder:  geocoder,
		Metrics:   allocationMetrics,
	}
}

func (uc *DefaultSelectionUsecase) SelectVendor(ctx context.Context, productID string, reqCtx domain.RequestContext) (*domain.Vendor, error) {
	start := time.Now()
	defer func() {
		if uc.Metrics != nil {
			uc.Metrics.VendorSelectionDuration.Observe(time.Since(start).Seconds())
		}
	}()

	candidates, err := uc.Catalog.ListVendorsForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLookup, err)
	}

	candidates = filterCandidates(candidates, reqCtx)
	if len(candidates) == 0 {
		if uc.Metrics != nil {
			uc.Metrics.VendorSelectionEmptyTotal.Inc()
		}
		return nil, nil
	}

	location := uc.resolveCustomerLocation(ctx, reqCtx, candidates)

	vendor, rule := uc.pickVendor(ctx, candidates, location)
	if vendor == nil {
		if uc.Metrics != nil {
			uc.Metrics.VendorSelectionEmptyTotal.Inc()
		}
		return nil, nil
	}

	if uc.Metrics != nil {
		uc.Metrics.VendorSelectionsTotal.WithLabelValues(rule).Inc()
	}
	slog.Debug("vendor selected",
		"product_id", productID,
		"channel", vendor.ChannelToken,
		"rule", rule)

	return vendor, nil
}

// filterCandidates drops out-of-stock vendors and, for anonymous callers,
// vendors that do not support the request locale.
func filterCandidates(candidates []*domain.Vendor, reqCtx domain.RequestContext) []*domain.Vendor {
	result := make([]*domain.Vendor, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.InStock {
			continue
		}
		if !reqCtx.Authenticated() && reqCtx.Locale != "" && !candidate.SupportsLocale(reqCtx.Locale) {
			continue
		}
		result = append(result, candidate)
	}
	return result
}

// resolveCustomerLocation prefers the authenticated customer's stored address.
// When none is known it falls back to the first candidate's seller address as
// a location proxy so the distance rules stay total.
func (uc *DefaultSelectionUsecase) resolveCustomerLocation(ctx context.Context, reqCtx domain.RequestContext, candidates []*domain.Vendor) domain.CustomerLocation {
	var resolved domain.CustomerLocation

	if reqCtx.Authenticated() {
		location, err := uc.Customers.GetCustomerLocation(ctx, reqCtx.CustomerID)
		if err != nil {
			slog.Warn("customer location lookup failed", "customer_id", reqCtx.CustomerID, "error", err.Error())
		} else if location != nil {
			resolved = *location
		}
	}

	if resolved.PostalCode == "" || resolved.Country == "" {
		proxy := candidates[0].Seller
		if proxy != nil {
			slog.Warn("customer location unknown, using first candidate seller address as proxy",
				"seller_id", proxy.SellerID)
			resolved.PostalCode = proxy.PostalCode
			resolved.Country = proxy.Country
		}
	}

	return resolved
}

// pickVendor runs the tie-break rules in strict order; the first rule that
// yields a result wins.
func (uc *DefaultSelectionUsecase) pickVendor(ctx context.Context, candidates []*domain.Vendor, location domain.CustomerLocation) (*domain.Vendor, string) {
	// 1. The platform-operated vendor always wins.
	for _, candidate := range candidates {
		if candidate.Seller != nil && candidate.Seller.VendorType == domain.VendorTypePlatformOperator {
			return candidate, "platform_operator"
		}
	}

	// 2. The customer's preferred seller.
	if location.PreferredSellerID != "" {
		if candidate := findBySellerID(candidates, location.PreferredSellerID); candidate != nil {
			return candidate, "preferred_seller"
		}
	}

	// 3. Cheapest domestic store; ties keep candidate order.
	if candidate := cheapestDomesticStore(candidates, location.Country); candidate != nil {
		return candidate, "domestic_store_price"
	}

	// 4. First manufacturer whose authorized dealer is itself a candidate.
	if candidate := dealerOfManufacturer(candidates); candidate != nil {
		return candidate, "manufacturer_dealer"
	}

	// 5. Nearest domestic store.
	if candidate := uc.nearestDomesticStore(ctx, candidates, location); candidate != nil {
		return candidate, "domestic_store_distance"
	}

	// 6. First manufacturer's distributor present in the candidate set,
	// else the first agent.
	if candidate, rule := distributorOrAgent(candidates); candidate != nil {
		return candidate, rule
	}

	// 7. First manufacturer regardless of country.
	for _, candidate := range candidates {
		if candidate.Seller != nil && candidate.Seller.VendorType == domain.VendorTypeManufacturer {
			return candidate, "manufacturer"
		}
	}

	// 8. Global fallback: nearest candidate of any type. Always yields a
	// result while any candidate remains, even with no usable coordinates.
	return uc.nearestVendor(ctx, candidates, location), "nearest_fallback"
}

func findBySellerID(candidates []*domain.Vendor, sellerID string) *domain.Vendor {
	for _, candidate := range candidates {
		if candidate.SellerID == sellerID {
			return candidate
		}
	}
	return nil
}

func domesticStores(candidates []*domain.Vendor, country string) []*domain.Vendor {
	var stores []*domain.Vendor
	for _, candidate := range candidates {
		if candidate.Seller == nil {
			continue
		}
		if candidate.Seller.VendorType == domain.VendorTypePhysicalStore && candidate.Seller.Country == country {
			stores = append(stores, candidate)
		}
	}
	return stores
}

// cheapestDomesticStore considers only priced candidates; stores without a
// price fall through to the distance rule.
func cheapestDomesticStore(candidates []*domain.Vendor, country string) *domain.Vendor {
	stores := domesticStores(candidates, country)
	var best *domain.Vendor
	for _, store := range stores {
		if store.Price <= 0 {
			continue
		}
		if best == nil || store.Price < best.Price {
			best = store
		}
	}
	return best
}

func dealerOfManufacturer(candidates []*domain.Vendor) *domain.Vendor {
	for _, candidate := range candidates {
		if candidate.Seller == nil || candidate.Seller.VendorType != domain.VendorTypeManufacturer {
			continue
		}
		for _, dealer := range candidate.Seller.Dealers {
			if match := findBySellerID(candidates, dealer.ID); match != nil {
				return match
			}
		}
	}
	return nil
}

func distributorOrAgent(candidates []*domain.Vendor) (*domain.Vendor, string) {
	for _, candidate := range candidates {
		if candidate.Seller == nil || candidate.Seller.VendorType != domain.VendorTypeManufacturer {
			continue
		}
		if candidate.Seller.Distributor == nil {
			continue
		}
		if match := findBySellerID(candidates, candidate.Seller.Distributor.ID); match != nil {
			return match, "manufacturer_distributor"
		}
	}
	for _, candidate := range candidates {
		if candidate.Seller != nil && candidate.Seller.VendorType == domain.VendorTypeAgent {
			return candidate, "agent"
		}
	}
	return nil, ""
}

func (uc *DefaultSelectionUsecase) nearestDomesticStore(ctx context.Context, candidates []*domain.Vendor, location domain.CustomerLocation) *domain.Vendor {
	stores := domesticStores(candidates, location.Country)
	if len(stores) == 0 {
		return nil
	}
	return uc.nearestVendor(ctx, stores, location)
}

// nearestVendor returns the candidate closest to the customer location.
// Unresolvable coordinates count as maximal distance, so the first candidate
// wins when nothing can be geocoded.
func (uc *DefaultSelectionUsecase) nearestVendor(ctx context.Context, candidates []*domain.Vendor, location domain.CustomerLocation) *domain.Vendor {
	if len(candidates) == 0 {
		return nil
	}

	customerCoord := uc.Geocoder.Geocode(ctx, location.PostalCode, location.Country)
	uc.ensureCoordinates(ctx, candidates)

	best := candidates[0]
	bestDistance := uc.distanceTo(customerCoord, best)
	for _, candidate := range candidates[1:] {
		if d := uc.distanceTo(customerCoord, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}

func (uc *DefaultSelectionUsecase) distanceTo(customerCoord *domain.Coordinate, vendor *domain.Vendor) float64 {
	if customerCoord == nil || vendor.Coordinate == nil {
		return math.Inf(1)
	}
	return uc.Geocoder.Distance(customerCoord, vendor.Coordinate)
}

// ensureCoordinates resolves seller coordinates concurrently, bounded by the
// channel count. Each geocode call is individually time-bounded by the
// resolver; a failed lookup just leaves the coordinate nil.
func (uc *DefaultSelectionUsecase) ensureCoordinates(ctx context.Context, vendors []*domain.Vendor) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxGeocodeConcurrency)

	for _, vendor := range vendors {
		if vendor.Coordinate != nil || vendor.Seller == nil {
			continue
		}
		vendor := vendor
		g.Go(func() error {
			vendor.Coordinate = uc.Geocoder.Geocode(ctx, vendor.Seller.PostalCode, vendor.Seller.Country)
			return nil
		})
	}

	g.Wait()
}
