package dto

// OrganizationSettingsDTO request and response body for /api/settings.
// Full-replace semantics: the submitted record replaces the stored one
// wholesale.
type OrganizationSettingsDTO struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website,omitempty"`
	TaxID         string `json:"taxId,omitempty"`
	Logo          string `json:"logo,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	BankAddress   string `json:"bankAddress,omitempty"`
}
