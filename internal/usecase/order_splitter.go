package usecase

import (
	"log/slog"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/google/uuid"
)

// SplitOrder partitions an aggregate order into one sub-order per distinct
// seller channel, in first-appearance order of the channel among the lines.
// Each sub-order carries exactly the shipping lines its own lines reference.
// Lines without a resolved channel are excluded and logged.
func SplitOrder(order *domain.AggregateOrder) []*domain.SubOrder {
	shippingByID := make(map[string]*domain.ShippingLine, len(order.ShippingLines))
	for _, shippingLine := range order.ShippingLines {
		shippingByID[shippingLine.ID] = shippingLine
	}

	byChannel := make(map[string]*domain.SubOrder)
	var subOrders []*domain.SubOrder

	for _, line := range order.Lines {
		if line.SellerChannelID == "" {
			slog.Warn("order line has no resolved seller channel, excluded from split",
				"order_id", order.ID,
				"line_id", line.ID)
			continue
		}

		subOrder, ok := byChannel[line.SellerChannelID]
		if !ok {
			subOrder = &domain.SubOrder{
				ID:               uuid.NewString(),
				AggregateOrderID: order.ID,
				ChannelID:        line.SellerChannelID,
			}
			byChannel[line.SellerChannelID] = subOrder
			subOrders = append(subOrders, subOrder)
		}

		subOrder.Lines = append(subOrder.Lines, line)
		subOrder.TotalWithTax += line.TotalWithTax

		if line.ShippingLineID == "" {
			continue
		}
		if shippingLine, exists := shippingByID[line.ShippingLineID]; exists && !hasShippingLine(subOrder, shippingLine.ID) {
			subOrder.ShippingLines = append(subOrder.ShippingLines, shippingLine)
			subOrder.TotalWithTax += shippingLine.PriceWithTax
		}
	}

	return subOrders
}

func hasShippingLine(subOrder *domain.SubOrder, shippingLineID string) bool {
	for _, shippingLine := range subOrder.ShippingLines {
		if shippingLine.ID == shippingLineID {
			return true
		}
	}
	return false
}
