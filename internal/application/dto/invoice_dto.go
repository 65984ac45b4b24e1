package dto

import (
	"github.com/shopspring/decimal"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// LineItemRequest one billable row in a create/update body. ID is optional;
// a fresh one is assigned when absent. Tax is free-form and informational.
type LineItemRequest struct {
	ID          string           `json:"id,omitempty"`
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
}

// SaveInvoiceRequest body for POST /api/invoices and PUT /api/invoices/:id.
// ID is honored on create when supplied (uniqueness is then the caller's
// responsibility); otherwise a uuid is generated.
type SaveInvoiceRequest struct {
	ID            string              `json:"id,omitempty"`
	InvoiceNumber string              `json:"invoiceNumber"`
	Date          string              `json:"date,omitempty"`    // yyyy-mm-dd
	DueDate       string              `json:"dueDate,omitempty"` // yyyy-mm-dd
	BillTo        entity.BillTo       `json:"billTo"`
	Items         []LineItemRequest   `json:"items"`
	Notes         string              `json:"notes,omitempty"`
	PaymentInfo   *entity.PaymentInfo `json:"paymentInfo,omitempty"`
}

// InvoiceResponse full invoice plus derived totals. Amounts are rendered
// with two decimals here, at the presentation boundary; stored values keep
// full precision.
type InvoiceResponse struct {
	ID               string                  `json:"id"`
	InvoiceNumber    string                  `json:"invoiceNumber"`
	Date             string                  `json:"date"`
	DueDate          string                  `json:"dueDate"`
	BillTo           entity.BillTo           `json:"billTo"`
	Items            []LineItemResponse      `json:"items"`
	Notes            string                  `json:"notes,omitempty"`
	PaymentInfo      *entity.PaymentInfo     `json:"paymentInfo,omitempty"`
	OrganizationInfo entity.OrganizationInfo `json:"organizationInfo"`
	Subtotal         string                  `json:"subtotal"`
	Total            string                  `json:"total"`
}

// LineItemResponse one row in a response, with its derived amount.
type LineItemResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Quantity    int64            `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	Tax         *decimal.Decimal `json:"tax,omitempty"`
	Amount      string           `json:"amount"`
}

// InvoiceListResponse listing with search metadata ("showing X of Y").
type InvoiceListResponse struct {
	Items   []InvoiceResponse `json:"items"`
	Showing int               `json:"showing"`
	Total   int               `json:"total"`
}

// DashboardResponse summary for the landing view.
type DashboardResponse struct {
	InvoiceCount int               `json:"invoiceCount"`
	TotalBilled  string            `json:"totalBilled"`
	Recent       []InvoiceResponse `json:"recent"`
}
