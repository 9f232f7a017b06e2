package usecase

import "github.com/boardline/seller-allocation-service/internal/domain"

// ClassifyVendor maps a selected vendor's seller profile to its servicing
// scenario. It is a pure function of the profile: the vendor type picks the
// branch and the delegation links pick the servicing party.
func ClassifyVendor(vendor *domain.Vendor) domain.Classification {
	if vendor == nil || vendor.Seller == nil {
		return unknownClassification()
	}

	seller := vendor.Seller
	switch seller.VendorType {
	case domain.VendorTypePhysicalStore:
		// The store services what it sells.
		return domain.Classification{
			Scenario: domain.ScenarioStore,
			ServicingParty: &domain.DealerRef{
				ID:      seller.SellerID,
				Name:    seller.Name,
				Profile: seller,
			},
			ServiceAgentAvailable: false,
		}

	case domain.VendorTypeManufacturer:
		if dealer := seller.FirstDealer(); dealer != nil {
			return domain.Classification{
				Scenario:              domain.ScenarioBrandAgentDealerCarrying,
				ServicingParty:        dealer,
				ServiceAgentAvailable: true,
			}
		}
		if seller.Distributor != nil {
			return domain.Classification{
				Scenario:              domain.ScenarioBrandAgentDealerNotCarrying,
				ServicingParty:        seller.Distributor,
				ServiceAgentAvailable: true,
			}
		}
		return domain.Classification{
			Scenario:              domain.ScenarioBrandAgentNoDealer,
			ServicingParty:        nil,
			ServiceAgentAvailable: true,
		}

	case domain.VendorTypePlatformOperator:
		if dealer := seller.FirstDealer(); dealer != nil {
			return domain.Classification{
				Scenario:              domain.ScenarioPlatformDealerCarrying,
				ServicingParty:        dealer,
				ServiceAgentAvailable: false,
			}
		}
		if seller.Distributor != nil {
			return domain.Classification{
				Scenario:              domain.ScenarioPlatformDealerNotCarrying,
				ServicingParty:        seller.Distributor,
				ServiceAgentAvailable: false,
			}
		}
		return domain.Classification{
			Scenario:              domain.ScenarioPlatform,
			ServicingParty:        nil,
			ServiceAgentAvailable: false,
		}
	}

	// Anything else (including AGENT, which never fulfills service itself)
	// is a classification failure the caller must escalate.
	return unknownClassification()
}

func unknownClassification() domain.Classification {
	return domain.Classification{
		Scenario:              domain.ScenarioUnknown,
		ServicingParty:        nil,
		ServiceAgentAvailable: false,
	}
}
