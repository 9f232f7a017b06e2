package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boardline/seller-allocation-service/internal/delivery/http/dto/allocation/request"
	"github.com/boardline/seller-allocation-service/internal/delivery/http/dto/allocation/response"
	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/boardline/seller-allocation-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

type AllocationHandler struct {
	uc usecase.SellerOrderUsecase
}

func NewAllocationHandler(uc usecase.SellerOrderUsecase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

func (h *AllocationHandler) Routes(r chi.Router) {
	r.Get("/v1/products/{productID}/vendor", h.SelectVendorForVariation)
	r.Get("/v1/products/{productID}/service-location", h.GetServiceLocation)
	r.Post("/v1/order-lines/resolve-channel", h.ResolveChannel)
	r.Post("/v1/orders/split", h.SplitOrder)
	r.Post("/v1/orders/finalize", h.FinalizeOrder)
}

func requestContext(r *http.Request) domain.RequestContext {
	return domain.RequestContext{
		CustomerID: r.URL.Query().Get("customerId"),
		Locale:     r.URL.Query().Get("locale"),
	}
}

func (h *AllocationHandler) SelectVendorForVariation(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	vendor, err := h.uc.SelectVendorForVariation(r.Context(), productID, requestContext(r))
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	if vendor == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}

func (h *AllocationHandler) GetServiceLocation(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	serviceLocation, err := h.uc.GetServiceLocationForProduct(r.Context(), productID, requestContext(r))
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	if serviceLocation == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, serviceLocation)
}

func (h *AllocationHandler) ResolveChannel(w http.ResponseWriter, r *http.Request) {
	var req request.ResolveChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	line := toDomainLine(req.Line)
	reqCtx := domain.RequestContext{CustomerID: req.CustomerID, Locale: req.Locale}

	resolved, err := h.uc.ResolveSellerChannel(r.Context(), line, reqCtx)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

func (h *AllocationHandler) SplitOrder(w http.ResponseWriter, r *http.Request) {
	var req request.SplitOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	subOrders, err := h.uc.SplitOrder(r.Context(), toDomainOrder(req.Order))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, response.SplitOrderResponse{
		SubOrders: toSubOrderResponses(subOrders),
	})
}

func (h *AllocationHandler) FinalizeOrder(w http.ResponseWriter, r *http.Request) {
	var req request.FinalizeOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	order := toDomainOrder(req.Order)
	subOrders, err := h.uc.SplitOrder(r.Context(), order)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	finalized, err := h.uc.FinalizeSellerOrders(r.Context(), order, subOrders)
	if err != nil && !errors.Is(err, domain.ErrUnknownScenario) {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	resp := response.FinalizeOrderResponse{
		SubOrders:       toSubOrderResponses(finalized),
		BlockedChannels: blockedChannels(subOrders, finalized),
	}
	writeJSON(w, http.StatusOK, resp)
}

// blockedChannels lists channels that were split but not finalized.
func blockedChannels(all, finalized []*domain.SubOrder) []string {
	done := make(map[string]bool, len(finalized))
	for _, subOrder := range finalized {
		done[subOrder.ChannelID] = true
	}
	var blocked []string
	for _, subOrder := range all {
		if !done[subOrder.ChannelID] {
			blocked = append(blocked, subOrder.ChannelID)
		}
	}
	return blocked
}

func toDomainLine(line request.OrderLine) *domain.OrderLine {
	return &domain.OrderLine{
		ID:               line.ID,
		ProductVariantID: line.ProductVariantID,
		Quantity:         line.Quantity,
		TotalWithTax:     line.TotalWithTax,
		ShippingLineID:   line.ShippingLineID,
		SellerChannelID:  line.SellerChannelID,
	}
}

func toDomainOrder(order request.AggregateOrder) *domain.AggregateOrder {
	result := &domain.AggregateOrder{
		ID:         order.ID,
		Code:       order.Code,
		CustomerID: order.CustomerID,
		Currency:   order.Currency,
	}
	for i := range order.Lines {
		result.Lines = append(result.Lines, toDomainLine(order.Lines[i]))
	}
	for _, shippingLine := range order.ShippingLines {
		result.ShippingLines = append(result.ShippingLines, &domain.ShippingLine{
			ID:           shippingLine.ID,
			Method:       shippingLine.Method,
			PriceWithTax: shippingLine.PriceWithTax,
		})
	}
	return result
}

func toSubOrderResponses(subOrders []*domain.SubOrder) []response.SubOrderResponse {
	result := make([]response.SubOrderResponse, 0, len(subOrders))
	for _, subOrder := range subOrders {
		item := response.SubOrderResponse{
			ID:                    subOrder.ID,
			AggregateOrderID:      subOrder.AggregateOrderID,
			ChannelID:             subOrder.ChannelID,
			TotalWithTax:          subOrder.TotalWithTax,
			Scenario:              string(subOrder.Scenario),
			ServicingPartyID:      subOrder.ServicingPartyID,
			ServiceAgentAvailable: subOrder.ServiceAgentAvailable,
		}
		for _, line := range subOrder.Lines {
			item.LineIDs = append(item.LineIDs, line.ID)
		}
		for _, shippingLine := range subOrder.ShippingLines {
			item.ShippingLineIDs = append(item.ShippingLineIDs, shippingLine.ID)
		}
		if subOrder.Surcharge != nil {
			item.Surcharge = &response.SurchargeResponse{
				ID:               subOrder.Surcharge.ID,
				Scenario:         string(subOrder.Surcharge.Scenario),
				PlatformAmount:   subOrder.Surcharge.PlatformAmount,
				VendorAmount:     subOrder.Surcharge.VendorAmount,
				ServicingAmount:  subOrder.Surcharge.ServicingAmount,
				ServicingPartyID: subOrder.Surcharge.ServicingPartyID,
			}
		}
		result = append(result, item)
	}
	return result
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, response.ErrorResponse{Error: err.Error()})
}
