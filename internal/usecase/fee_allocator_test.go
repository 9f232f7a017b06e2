package usecase

import (
	"testing"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateFee_StoreScenario(t *testing.T) {
	split, err := AllocateFee(domain.ScenarioStore, true, 10000)

	require.NoError(t, err)
	assert.Equal(t, int64(1400), split.Platform)
	assert.Equal(t, int64(0), split.Servicing)
	assert.Equal(t, int64(8600), split.Vendor)
}

func TestAllocateFee_BrandDealerCarrying(t *testing.T) {
	split, err := AllocateFee(domain.ScenarioBrandAgentDealerCarrying, true, 20000)

	require.NoError(t, err)
	assert.Equal(t, int64(3600), split.Platform)
	assert.Equal(t, int64(2000), split.Servicing)
	assert.Equal(t, int64(14400), split.Vendor)
}

func TestAllocateFee_PlatformTakesEverything(t *testing.T) {
	split, err := AllocateFee(domain.ScenarioPlatform, false, 5000)

	require.NoError(t, err)
	assert.Equal(t, int64(5000), split.Platform)
	assert.Equal(t, int64(0), split.Servicing)
	assert.Equal(t, int64(0), split.Vendor)
}

func TestAllocateFee_PlatformDealerCarrying(t *testing.T) {
	split, err := AllocateFee(domain.ScenarioPlatformDealerCarrying, true, 8000)

	require.NoError(t, err)
	assert.Equal(t, int64(7200), split.Platform)
	assert.Equal(t, int64(800), split.Servicing)
	assert.Equal(t, int64(0), split.Vendor)
}

func TestAllocateFee_UnknownScenarioIsFatal(t *testing.T) {
	_, err := AllocateFee(domain.ScenarioUnknown, true, 10000)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownScenario)

	_, err = AllocateFee(domain.Scenario("something else"), true, 10000)
	assert.ErrorIs(t, err, domain.ErrUnknownScenario)
}

func TestAllocateFee_NoServicingPartyZeroesServicingShare(t *testing.T) {
	split, err := AllocateFee(domain.ScenarioBrandAgentDealerCarrying, false, 20000)

	require.NoError(t, err)
	assert.Equal(t, int64(3600), split.Platform)
	assert.Equal(t, int64(0), split.Servicing)
	assert.Equal(t, int64(16400), split.Vendor)
}

// The three shares must sum to the total exactly for every scenario and any
// amount, including totals that do not divide evenly by the percentages.
func TestAllocateFee_SharesAlwaysSumToTotal(t *testing.T) {
	scenarios := []domain.Scenario{
		domain.ScenarioStore,
		domain.ScenarioBrandAgentDealerCarrying,
		domain.ScenarioBrandNoAgentDealerCarrying,
		domain.ScenarioBrandAgentDealerNotCarrying,
		domain.ScenarioBrandNoAgentDealerNotCarrying,
		domain.ScenarioBrandAgentNoDealer,
		domain.ScenarioBrandNoAgentNoDealer,
		domain.ScenarioPlatform,
		domain.ScenarioPlatformDealerCarrying,
		domain.ScenarioPlatformDealerNotCarrying,
	}
	totals := []int64{0, 1, 3, 7, 33, 99, 101, 9999, 10001, 123457, 7777777}

	for _, scenario := range scenarios {
		for _, total := range totals {
			split, err := AllocateFee(scenario, true, total)
			require.NoError(t, err)
			assert.Equal(t, total, split.Platform+split.Vendor+split.Servicing,
				"scenario %q total %d", scenario, total)
			assert.GreaterOrEqual(t, split.Servicing, int64(0))
			assert.GreaterOrEqual(t, split.Platform, int64(0))
		}
	}
}

func TestRoundPercent(t *testing.T) {
	assert.Equal(t, int64(1400), roundPercent(10000, 14))
	assert.Equal(t, int64(0), roundPercent(1, 14))
	assert.Equal(t, int64(1), roundPercent(4, 14))
	assert.Equal(t, int64(14), roundPercent(101, 14))
}
