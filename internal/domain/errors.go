package domain

import "errors"

var (
	ErrCatalogLookup     = errors.New("failed to list vendor candidates")
	ErrNoEligibleVendor  = errors.New("no eligible vendor for product")
	ErrUnknownScenario   = errors.New("unknown servicing scenario")
	ErrChannelResolution = errors.New("failed to resolve seller channel")
)
