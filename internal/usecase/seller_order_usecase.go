package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/kafka"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/logger"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/metrics"
	allocationdto "github.com/boardline/seller-allocation-service/internal/usecase/dto/allocation"
	"github.com/jaevor/go-nanoid"
)

type SellerOrderPublisher interface {
	PublishSellerOrder(event kafka.SellerOrderEvent) error
}

type SellerOrderUsecase interface {
	ResolveSellerChannel(ctx context.Context, line *domain.OrderLine, reqCtx domain.RequestContext) (*allocationdto.ResolveChannelOutput, error)
	SplitOrder(ctx context.Context, order *domain.AggregateOrder) ([]*domain.SubOrder, error)
	FinalizeSellerOrders(ctx context.Context, order *domain.AggregateOrder, subOrders []*domain.SubOrder) ([]*domain.SubOrder, error)

	SelectVendorForVariation(ctx context.Context, productID string, reqCtx domain.RequestContext) (*allocationdto.VendorOutput, error)
	GetServiceLocationForProduct(ctx context.Context, productID string, reqCtx domain.RequestContext) (*allocationdto.ServiceLocationOutput, error)
}

type DefaultSellerOrderUsecase struct {
	Selection    SelectionUsecase
	Catalog      domain.CatalogService
	SubOrderRepo domain.SubOrderRepository
	Publisher    SellerOrderPublisher
	EventLogger  logger.AllocationEventLogger
	Metrics      *metrics.AllocationMetrics
}

func NewDefaultSellerOrderUsecase(
	selection SelectionUsecase,
	catalog domain.CatalogService,
	subOrderRepo domain.SubOrderRepository,
	publisher SellerOrderPublisher,
	eventLogger logger.AllocationEventLogger,
	allocationMetrics *metrics.AllocationMetrics) *DefaultSellerOrderUsecase {

	return &DefaultSellerOrderUsecase{
		Selection:    selection,
		Catalog:      catalog,
		SubOrderRepo: subOrderRepo,
		Publisher:    publisher,
		EventLogger:  eventLogger,
		Metrics:      allocationMetrics,
	}
}

// ResolveSellerChannel assigns a seller channel to one order line at
// checkout. Selection failures never block order placement: the line falls
// back to the first available channel for the product.
func (uc *DefaultSellerOrderUsecase) ResolveSellerChannel(ctx context.Context, line *domain.OrderLine, reqCtx domain.RequestContext) (*allocationdto.ResolveChannelOutput, error) {
	vendor, err := uc.Selection.SelectVendor(ctx, line.ProductVariantID, reqCtx)
	if err == nil && vendor != nil {
		return &allocationdto.ResolveChannelOutput{
			LineID:    line.ID,
			ChannelID: vendor.ChannelToken,
		}, nil
	}
	if err != nil {
		slog.Warn("vendor selection failed at checkout, falling back to first available channel",
			"line_id", line.ID,
			"product_variant_id", line.ProductVariantID,
			"error", err.Error())
	}

	candidates, listErr := uc.Catalog.ListVendorsForProduct(ctx, line.ProductVariantID)
	if listErr != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChannelResolution, listErr)
	}
	if len(candidates) == 0 {
		return &allocationdto.ResolveChannelOutput{LineID: line.ID}, nil
	}

	if uc.Metrics != nil {
		uc.Metrics.ChannelFallbacksTotal.Inc()
	}
	if uc.EventLogger != nil {
		reason := domain.ErrNoEligibleVendor.Error()
		if err != nil {
			reason = err.Error()
		}
		uc.EventLogger.LogChannelFallback(ctx, logger.ChannelFallbackEvent{
			OrderLineID:      line.ID,
			ProductVariantID: line.ProductVariantID,
			ChannelID:        candidates[0].ChannelToken,
			Reason:           reason,
			Timestamp:        time.Now(),
		})
	}
	return &allocationdto.ResolveChannelOutput{
		LineID:    line.ID,
		ChannelID: candidates[0].ChannelToken,
		Fallback:  true,
	}, nil
}

func (uc *DefaultSellerOrderUsecase) SplitOrder(ctx context.Context, order *domain.AggregateOrder) ([]*domain.SubOrder, error) {
	return SplitOrder(order), nil
}

// FinalizeSellerOrders classifies each sub-order, allocates its fee split and
// persists the result atomically. A sub-order with an unknown scenario blocks
// only that seller: the remaining sub-orders still finalize, and the blocked
// channels are reported in the returned error.
func (uc *DefaultSellerOrderUsecase) FinalizeSellerOrders(ctx context.Context, order *domain.AggregateOrder, subOrders []*domain.SubOrder) ([]*domain.SubOrder, error) {
	surchargeID, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	var finalized []*domain.SubOrder
	var blocked []string

	for _, subOrder := range subOrders {
		vendor, err := uc.vendorForSubOrder(ctx, subOrder)
		if err != nil {
			return nil, err
		}

		classification := ClassifyVendor(vendor)
		if classification.Scenario == domain.ScenarioUnknown {
			slog.Error("sub-order classification failed",
				"sub_order_id", subOrder.ID,
				"channel", subOrder.ChannelID)
			uc.blockSubOrder(ctx, order, subOrder, "unknown scenario")
			blocked = append(blocked, subOrder.ChannelID)
			continue
		}

		split, err := AllocateFee(classification.Scenario, classification.ServicingParty != nil, subOrder.TotalWithTax)
		if err != nil {
			slog.Error("fee allocation failed",
				"sub_order_id", subOrder.ID,
				"scenario", string(classification.Scenario),
				"error", err.Error())
			uc.blockSubOrder(ctx, order, subOrder, err.Error())
			blocked = append(blocked, subOrder.ChannelID)
			continue
		}

		subOrder.Scenario = classification.Scenario
		subOrder.ServiceAgentAvailable = classification.ServiceAgentAvailable
		if classification.ServicingParty != nil {
			subOrder.ServicingPartyID = classification.ServicingParty.ID
		}
		subOrder.Surcharge = &domain.SellerSurcharge{
			ID:               surchargeID(),
			SubOrderID:       subOrder.ID,
			Scenario:         classification.Scenario,
			PlatformAmount:   split.Platform,
			VendorAmount:     split.Vendor,
			ServicingAmount:  split.Servicing,
			ServicingPartyID: subOrder.ServicingPartyID,
		}
		finalized = append(finalized, subOrder)
	}

	if len(finalized) > 0 {
		if err := uc.SubOrderRepo.SaveSubOrders(ctx, finalized); err != nil {
			return nil, fmt.Errorf("failed to persist sub-orders: %w", err)
		}
		uc.publishFinalized(order, finalized)
	}

	if len(blocked) > 0 {
		return finalized, fmt.Errorf("%w: sub-order finalization blocked for channels %v", domain.ErrUnknownScenario, blocked)
	}
	return finalized, nil
}

func (uc *DefaultSellerOrderUsecase) blockSubOrder(ctx context.Context, order *domain.AggregateOrder, subOrder *domain.SubOrder, reason string) {
	if uc.Metrics != nil {
		uc.Metrics.FinalizeErrorsTotal.Inc()
	}
	if uc.EventLogger != nil {
		uc.EventLogger.LogFinalizationBlocked(ctx, logger.FinalizationBlockedEvent{
			SubOrderID:       subOrder.ID,
			AggregateOrderID: order.ID,
			ChannelID:        subOrder.ChannelID,
			Reason:           reason,
			Timestamp:        time.Now(),
		})
	}
}

func (uc *DefaultSellerOrderUsecase) publishFinalized(order *domain.AggregateOrder, subOrders []*domain.SubOrder) {
	if uc.Publisher == nil {
		return
	}
	for _, subOrder := range subOrders {
		event := kafka.SellerOrderEvent{
			SubOrderID:       subOrder.ID,
			AggregateOrderID: order.ID,
			ChannelID:        subOrder.ChannelID,
			Scenario:         string(subOrder.Scenario),
			Currency:         order.Currency,
			TotalWithTax:     subOrder.TotalWithTax,
			PlatformAmount:   subOrder.Surcharge.PlatformAmount,
			VendorAmount:     subOrder.Surcharge.VendorAmount,
			ServicingAmount:  subOrder.Surcharge.ServicingAmount,
		}
		if err := uc.Publisher.PublishSellerOrder(event); err != nil {
			slog.Error("failed to publish seller order event", "sub_order_id", subOrder.ID, "error", err.Error())
		}
	}

	if uc.Metrics != nil {
		for _, subOrder := range subOrders {
			uc.Metrics.SubOrdersFinalizedTotal.WithLabelValues(string(subOrder.Scenario)).Inc()
			uc.Metrics.SurchargeAmountTotal.WithLabelValues("platform").Add(float64(subOrder.Surcharge.PlatformAmount))
			uc.Metrics.SurchargeAmountTotal.WithLabelValues("vendor").Add(float64(subOrder.Surcharge.VendorAmount))
			uc.Metrics.SurchargeAmountTotal.WithLabelValues("servicing").Add(float64(subOrder.Surcharge.ServicingAmount))
		}
	}
}

// vendorForSubOrder resolves the fulfilling vendor of a sub-order from the
// catalog, using the first line's variant as the lookup key.
func (uc *DefaultSellerOrderUsecase) vendorForSubOrder(ctx context.Context, subOrder *domain.SubOrder) (*domain.Vendor, error) {
	if len(subOrder.Lines) == 0 {
		return nil, nil
	}
	candidates, err := uc.Catalog.ListVendorsForProduct(ctx, subOrder.Lines[0].ProductVariantID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLookup, err)
	}
	for _, candidate := range candidates {
		if candidate.ChannelToken == subOrder.ChannelID {
			return candidate, nil
		}
	}
	return nil, nil
}

func (uc *DefaultSellerOrderUsecase) SelectVendorForVariation(ctx context.Context, productID string, reqCtx domain.RequestContext) (*allocationdto.VendorOutput, error) {
	vendor, err := uc.Selection.SelectVendor(ctx, productID, reqCtx)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}
	return toVendorOutput(vendor), nil
}

func (uc *DefaultSellerOrderUsecase) GetServiceLocationForProduct(ctx context.Context, productID string, reqCtx domain.RequestContext) (*allocationdto.ServiceLocationOutput, error) {
	vendor, err := uc.Selection.SelectVendor(ctx, productID, reqCtx)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, nil
	}

	classification := ClassifyVendor(vendor)
	output := &allocationdto.ServiceLocationOutput{
		ServiceAgentAvailable: classification.ServiceAgentAvailable,
		Scenario:              string(classification.Scenario),
	}
	if party := classification.ServicingParty; party != nil {
		output.ServiceDealer = &allocationdto.VendorOutput{
			SellerID: party.ID,
		}
		if party.Profile != nil {
			output.ServiceDealer.Seller = toSellerOutput(party.Profile)
		} else {
			output.ServiceDealer.Seller = &allocationdto.SellerOutput{SellerID: party.ID, Name: party.Name}
		}
	}
	return output, nil
}

func toVendorOutput(vendor *domain.Vendor) *allocationdto.VendorOutput {
	output := &allocationdto.VendorOutput{
		ChannelToken:  vendor.ChannelToken,
		ChannelCode:   vendor.ChannelCode,
		SellerID:      vendor.SellerID,
		Price:         vendor.Price,
		InStock:       vendor.InStock,
		DefaultLocale: vendor.DefaultLocale,
	}
	if vendor.Seller != nil {
		output.Seller = toSellerOutput(vendor.Seller)
	}
	return output
}

func toSellerOutput(seller *domain.SellerProfile) *allocationdto.SellerOutput {
	return &allocationdto.SellerOutput{
		SellerID:   seller.SellerID,
		Name:       seller.Name,
		PostalCode: seller.PostalCode,
		Country:    seller.Country,
		VendorType: string(seller.VendorType),
	}
}
