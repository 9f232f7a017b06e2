package mappers

import (
	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/infrastructure/postgres/models"
)

func ToGORMSubOrder(subOrder *domain.SubOrder, position int32) *models.SubOrderModel {
	model := &models.SubOrderModel{
		ID:                    subOrder.ID,
		AggregateOrderID:      subOrder.AggregateOrderID,
		ChannelID:             subOrder.ChannelID,
		TotalWithTax:          subOrder.TotalWithTax,
		Scenario:              string(subOrder.Scenario),
		ServicingPartyID:      subOrder.ServicingPartyID,
		ServiceAgentAvailable: subOrder.ServiceAgentAvailable,
		Position:              position,
	}

	for i, line := range subOrder.Lines {
		model.Lines = append(model.Lines, models.SubOrderLineModel{
			ID:               line.ID,
			SubOrderID:       subOrder.ID,
			ProductVariantID: line.ProductVariantID,
			Quantity:         line.Quantity,
			TotalWithTax:     line.TotalWithTax,
			ShippingLineID:   line.ShippingLineID,
			SellerChannelID:  line.SellerChannelID,
			Position:         int32(i),
		})
	}

	for _, shippingLine := range subOrder.ShippingLines {
		model.ShippingLines = append(model.ShippingLines, models.ShippingLineModel{
			ID:           shippingLine.ID,
			SubOrderID:   subOrder.ID,
			Method:       shippingLine.Method,
			PriceWithTax: shippingLine.PriceWithTax,
		})
	}

	if subOrder.Surcharge != nil {
		model.Surcharge = &models.SellerSurchargeModel{
			ID:               subOrder.Surcharge.ID,
			SubOrderID:       subOrder.ID,
			Scenario:         string(subOrder.Surcharge.Scenario),
			PlatformAmount:   subOrder.Surcharge.PlatformAmount,
			VendorAmount:     subOrder.Surcharge.VendorAmount,
			ServicingAmount:  subOrder.Surcharge.ServicingAmount,
			ServicingPartyID: subOrder.Surcharge.ServicingPartyID,
		}
	}

	return model
}

func ToDomainSubOrder(model *models.SubOrderModel) *domain.SubOrder {
	subOrder := &domain.SubOrder{
		ID:                    model.ID,
		AggregateOrderID:      model.AggregateOrderID,
		ChannelID:             model.ChannelID,
		TotalWithTax:          model.TotalWithTax,
		Scenario:              domain.Scenario(model.Scenario),
		ServicingPartyID:      model.ServicingPartyID,
		ServiceAgentAvailable: model.ServiceAgentAvailable,
		CreatedAt:             model.CreatedAt,
	}

	for _, line := range model.Lines {
		subOrder.Lines = append(subOrder.Lines, &domain.OrderLine{
			ID:               line.ID,
			ProductVariantID: line.ProductVariantID,
			Quantity:         line.Quantity,
			TotalWithTax:     line.TotalWithTax,
			ShippingLineID:   line.ShippingLineID,
			SellerChannelID:  line.SellerChannelID,
		})
	}

	for _, shippingLine := range model.ShippingLines {
		subOrder.ShippingLines = append(subOrder.ShippingLines, &domain.ShippingLine{
			ID:           shippingLine.ID,
			Method:       shippingLine.Method,
			PriceWithTax: shippingLine.PriceWithTax,
		})
	}

	if model.Surcharge != nil {
		subOrder.Surcharge = &domain.SellerSurcharge{
			ID:               model.Surcharge.ID,
			SubOrderID:       model.Surcharge.SubOrderID,
			Scenario:         domain.Scenario(model.Surcharge.Scenario),
			PlatformAmount:   model.Surcharge.PlatformAmount,
			VendorAmount:     model.Surcharge.VendorAmount,
			ServicingAmount:  model.Surcharge.ServicingAmount,
			ServicingPartyID: model.Surcharge.ServicingPartyID,
		}
	}

	return subOrder
}
