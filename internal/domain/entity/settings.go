package entity

// OrganizationSettings is the single issuer record shared by all invoices.
// Exactly one exists at any time; updates replace it wholesale.
type OrganizationSettings struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website,omitempty"`
	TaxID         string `json:"taxId,omitempty"`
	Logo          string `json:"logo,omitempty"` // image as a data-URL string
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	BankAddress   string `json:"bankAddress,omitempty"`
}

// DefaultOrganizationSettings is the record seeded on first run.
func DefaultOrganizationSettings() OrganizationSettings {
	return OrganizationSettings{
		Name:          "San Diego Tamil Sangam",
		Address:       "123 Nonprofit Way, San Diego, CA 92101",
		Email:         "contact@sdtamilsangam.org",
		Phone:         "(555) 123-4567",
		Website:       "www.sdtamilsangam.org",
		TaxID:         "20-3151534",
		BankName:      "San Diego County Credit Union",
		AccountName:   "San Diego Tamil Sangam, Inc.",
		AccountNumber: "000264263890",
		RoutingNumber: "3222-8161-7",
		BankAddress:   "6545 Sequence Drive, San Diego, CA 92121",
	}
}

// OrganizationInfo returns the issuer-identity snapshot for a new invoice.
func (s OrganizationSettings) OrganizationInfo() OrganizationInfo {
	return OrganizationInfo{
		Name:    s.Name,
		Address: s.Address,
		Email:   s.Email,
		Phone:   s.Phone,
		Website: s.Website,
		TaxID:   s.TaxID,
	}
}

// PaymentInfo returns the payment-instructions snapshot for a new invoice.
func (s OrganizationSettings) PaymentInfo() PaymentInfo {
	return PaymentInfo{
		BankName:      s.BankName,
		AccountName:   s.AccountName,
		AccountNumber: s.AccountNumber,
		RoutingNumber: s.RoutingNumber,
		Address:       s.BankAddress,
	}
}
