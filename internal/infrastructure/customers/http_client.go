package customers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/boardline/seller-allocation-service/internal/domain"
)

type HTTPCustomerClient struct {
	Address string
	client  *http.Client
}

func NewHTTPCustomerClient(address string) *HTTPCustomerClient {
	return &HTTPCustomerClient{
		Address: address,
		client:  &http.Client{},
	}
}

type locationPayload struct {
	PostalCode        string `json:"postalCode"`
	Country           string `json:"country"`
	PreferredSellerID string `json:"preferredSellerId"`
}

// GetCustomerLocation returns nil when the directory has no record for the
// customer.
func (c *HTTPCustomerClient) GetCustomerLocation(ctx context.Context, customerID string) (*domain.CustomerLocation, error) {
	url := fmt.Sprintf("%s/v1/customers/%s/location", c.Address, customerID)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	response, err := c.client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		var errorResponse struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil {
			return nil, fmt.Errorf("customer directory returned status %d", response.StatusCode)
		}
		return nil, errors.New(errorResponse.Error)
	}

	var payload locationPayload
	if err := json.Unmarshal(responseBodyBytes, &payload); err != nil {
		return nil, err
	}

	return &domain.CustomerLocation{
		PostalCode:        payload.PostalCode,
		Country:           payload.Country,
		PreferredSellerID: payload.PreferredSellerID,
	}, nil
}
