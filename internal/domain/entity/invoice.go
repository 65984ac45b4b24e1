package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents one billing document. ID is assigned once at creation
// and never changes; InvoiceNumber is free text and independent of it.
// Dates are kept as ISO yyyy-mm-dd strings, exactly as entered.
type Invoice struct {
	ID               string           `json:"id"`
	InvoiceNumber    string           `json:"invoiceNumber"`
	Date             string           `json:"date"`
	DueDate          string           `json:"dueDate"`
	BillTo           BillTo           `json:"billTo"`
	Items            []LineItem       `json:"items"`
	Notes            string           `json:"notes,omitempty"`
	PaymentInfo      *PaymentInfo     `json:"paymentInfo,omitempty"`
	OrganizationInfo OrganizationInfo `json:"organizationInfo"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

// LineItem is one billable row. Quantity is expected positive, Price
// non-negative. Tax is informational only: it is printed on the document
// but never aggregated into the totals.
type LineItem struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
}

// BillTo is the billed-party contact block.
type BillTo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// PaymentInfo is the payment-instructions block snapshotted from settings.
type PaymentInfo struct {
	BankName      string `json:"bankName"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	RoutingNumber string `json:"routingNumber"`
	Address       string `json:"address"`
}

// OrganizationInfo is the issuer identity snapshotted into the invoice at
// creation time, so later settings edits never rewrite historical invoices.
type OrganizationInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
	TaxID   string `json:"taxId,omitempty"`
}
