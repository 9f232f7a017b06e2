package domain

// Scenario labels the commercial relationship behind a sub-order. The
// storefront string-matches these values, so they must stay byte-exact.
type Scenario string

const (
	ScenarioStore Scenario = "ordered at a STORE"

	ScenarioBrandAgentDealerCarrying      Scenario = "...BRAND with SERVICE_AGENT, serviced by dealer already carrying brand"
	ScenarioBrandNoAgentDealerCarrying    Scenario = "...BRAND without SERVICE_AGENT, serviced by dealer already carrying brand"
	ScenarioBrandAgentDealerNotCarrying   Scenario = "...BRAND with SERVICE_AGENT, serviced by dealer not yet carrying brand"
	ScenarioBrandNoAgentDealerNotCarrying Scenario = "...BRAND without SERVICE_AGENT, serviced by dealer not yet carrying brand"
	ScenarioBrandAgentNoDealer            Scenario = "...BRAND with SERVICE_AGENT, no SERVICE_DEALER available"
	ScenarioBrandNoAgentNoDealer          Scenario = "...BRAND without SERVICE_AGENT, no SERVICE_DEALER available"

	ScenarioPlatform                  Scenario = "ordered at the platform itself"
	ScenarioPlatformDealerCarrying    Scenario = "ordered at the platform itself, serviced by dealer carrying the brand"
	ScenarioPlatformDealerNotCarrying Scenario = "ordered at the platform itself, serviced by dealer not carrying the brand"

	// ScenarioUnknown is an error sentinel, never a valid allocation input.
	ScenarioUnknown Scenario = "unknown scenario"
)

// Classification is the outcome of classifying a selected vendor.
type Classification struct {
	Scenario              Scenario
	ServicingParty        *DealerRef
	ServiceAgentAvailable bool
}
