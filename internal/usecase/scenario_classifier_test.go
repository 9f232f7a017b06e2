package usecase

import (
	"testing"

	"github.com/boardline/seller-allocation-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classifierVendor(vendorType domain.VendorType) *domain.Vendor {
	return &domain.Vendor{
		ChannelToken: "ch-1",
		SellerID:     "seller-1",
		Seller: &domain.SellerProfile{
			SellerID:   "seller-1",
			Name:       "Seller One",
			VendorType: vendorType,
		},
	}
}

func TestClassifyVendor_StoreServicesItself(t *testing.T) {
	classification := ClassifyVendor(classifierVendor(domain.VendorTypePhysicalStore))

	assert.Equal(t, domain.ScenarioStore, classification.Scenario)
	require.NotNil(t, classification.ServicingParty)
	assert.Equal(t, "seller-1", classification.ServicingParty.ID)
	assert.False(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_ManufacturerWithDealer(t *testing.T) {
	vendor := classifierVendor(domain.VendorTypeManufacturer)
	vendor.Seller.Dealers = []domain.DealerRef{{ID: "dealer-1", Name: "Dealer One"}}

	classification := ClassifyVendor(vendor)

	assert.Equal(t, domain.ScenarioBrandAgentDealerCarrying, classification.Scenario)
	require.NotNil(t, classification.ServicingParty)
	assert.Equal(t, "dealer-1", classification.ServicingParty.ID)
	assert.True(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_ManufacturerWithDistributorOnly(t *testing.T) {
	vendor := classifierVendor(domain.VendorTypeManufacturer)
	vendor.Seller.Distributor = &domain.DealerRef{ID: "dist-1", Name: "Distributor One"}

	classification := ClassifyVendor(vendor)

	assert.Equal(t, domain.ScenarioBrandAgentDealerNotCarrying, classification.Scenario)
	require.NotNil(t, classification.ServicingParty)
	assert.Equal(t, "dist-1", classification.ServicingParty.ID)
	assert.True(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_ManufacturerWithoutDelegation(t *testing.T) {
	classification := ClassifyVendor(classifierVendor(domain.VendorTypeManufacturer))

	assert.Equal(t, domain.ScenarioBrandAgentNoDealer, classification.Scenario)
	assert.Nil(t, classification.ServicingParty)
	assert.True(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_PlatformOperator(t *testing.T) {
	classification := ClassifyVendor(classifierVendor(domain.VendorTypePlatformOperator))

	assert.Equal(t, domain.ScenarioPlatform, classification.Scenario)
	assert.Nil(t, classification.ServicingParty)
	assert.False(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_PlatformOperatorWithDealer(t *testing.T) {
	vendor := classifierVendor(domain.VendorTypePlatformOperator)
	vendor.Seller.Dealers = []domain.DealerRef{{ID: "dealer-1"}}

	classification := ClassifyVendor(vendor)

	assert.Equal(t, domain.ScenarioPlatformDealerCarrying, classification.Scenario)
	require.NotNil(t, classification.ServicingParty)
	assert.Equal(t, "dealer-1", classification.ServicingParty.ID)
	assert.False(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_PlatformOperatorWithDistributor(t *testing.T) {
	vendor := classifierVendor(domain.VendorTypePlatformOperator)
	vendor.Seller.Distributor = &domain.DealerRef{ID: "dist-1"}

	classification := ClassifyVendor(vendor)

	assert.Equal(t, domain.ScenarioPlatformDealerNotCarrying, classification.Scenario)
	require.NotNil(t, classification.ServicingParty)
	assert.Equal(t, "dist-1", classification.ServicingParty.ID)
}

func TestClassifyVendor_AgentIsUnknown(t *testing.T) {
	classification := ClassifyVendor(classifierVendor(domain.VendorTypeAgent))

	assert.Equal(t, domain.ScenarioUnknown, classification.Scenario)
	assert.Nil(t, classification.ServicingParty)
	assert.False(t, classification.ServiceAgentAvailable)
}

func TestClassifyVendor_UnrecognizedTypeIsUnknown(t *testing.T) {
	classification := ClassifyVendor(classifierVendor(domain.VendorType("WAREHOUSE")))

	assert.Equal(t, domain.ScenarioUnknown, classification.Scenario)
}

func TestClassifyVendor_NilInputsAreUnknown(t *testing.T) {
	assert.Equal(t, domain.ScenarioUnknown, ClassifyVendor(nil).Scenario)
	assert.Equal(t, domain.ScenarioUnknown, ClassifyVendor(&domain.Vendor{}).Scenario)
}
