package usecase

import (
	"fmt"

	"github.com/boardline/seller-allocation-service/internal/domain"
)

// FeeSplit is the exact three-way division of a sub-order total in minor
// currency units.
type FeeSplit struct {
	Platform  int64
	Vendor    int64
	Servicing int64
}

type feeRate struct {
	PlatformPercent  int64
	ServicingPercent int64
}

// feeTable fixes the platform and servicing-party cut per scenario. The
// vendor share is never tabled: it is always the exact remainder, so the
// platform absorbs rounding by construction.
var feeTable = map[domain.Scenario]feeRate{
	domain.ScenarioStore: {PlatformPercent: 14, ServicingPercent: 0},

	domain.ScenarioBrandAgentDealerCarrying:      {PlatformPercent: 18, ServicingPercent: 10},
	domain.ScenarioBrandNoAgentDealerCarrying:    {PlatformPercent: 18, ServicingPercent: 12},
	domain.ScenarioBrandAgentDealerNotCarrying:   {PlatformPercent: 18, ServicingPercent: 10},
	domain.ScenarioBrandNoAgentDealerNotCarrying: {PlatformPercent: 18, ServicingPercent: 12},
	domain.ScenarioBrandAgentNoDealer:            {PlatformPercent: 18, ServicingPercent: 0},
	domain.ScenarioBrandNoAgentNoDealer:          {PlatformPercent: 18, ServicingPercent: 0},

	domain.ScenarioPlatform:                  {PlatformPercent: 100, ServicingPercent: 0},
	domain.ScenarioPlatformDealerCarrying:    {PlatformPercent: 90, ServicingPercent: 10},
	domain.ScenarioPlatformDealerNotCarrying: {PlatformPercent: 88, ServicingPercent: 12},
}

// AllocateFee splits totalWithTax among platform, vendor and servicing party.
// hasServicingParty forces the servicing share to zero when classification
// resolved no servicing party. An unrecognized scenario is a fatal error.
func AllocateFee(scenario domain.Scenario, hasServicingParty bool, totalWithTax int64) (FeeSplit, error) {
	rate, ok := feeTable[scenario]
	if !ok {
		return FeeSplit{}, fmt.Errorf("%w: %q", domain.ErrUnknownScenario, scenario)
	}

	platformAmount := roundPercent(totalWithTax, rate.PlatformPercent)

	servicingAmount := int64(0)
	if hasServicingParty && rate.ServicingPercent > 0 {
		servicingAmount = roundPercent(totalWithTax, rate.ServicingPercent)
	}

	return FeeSplit{
		Platform:  platformAmount,
		Vendor:    totalWithTax - platformAmount - servicingAmount,
		Servicing: servicingAmount,
	}, nil
}

// roundPercent computes total*percent/100 rounded half to the nearest minor
// unit, in integer arithmetic so the result is exact.
func roundPercent(total, percent int64) int64 {
	return (total*percent + 50) / 100
}
