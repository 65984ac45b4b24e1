package invoicing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/domain"
	"github.com/udhaydurai/donor-breeze/internal/domain/billing"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// UseCase owns the invoice collection and the organization settings
// record: list/create/update/delete/find plus the dashboard summary.
type UseCase struct {
	invoices repository.InvoiceRepository
	settings repository.SettingsRepository
	notifier Notifier
	now      func() time.Time
}

// NewUseCase builds the document-store use case.
func NewUseCase(invoices repository.InvoiceRepository, settings repository.SettingsRepository, notifier Notifier) *UseCase {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &UseCase{
		invoices: invoices,
		settings: settings,
		notifier: notifier,
		now:      time.Now,
	}
}

// List returns invoices in insertion order, optionally filtered by a
// case-insensitive match on invoice number or client name.
func (uc *UseCase) List(search string) (*dto.InvoiceListResponse, error) {
	all, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	matched := all
	if search != "" {
		needle := strings.ToLower(search)
		matched = make([]entity.Invoice, 0, len(all))
		for _, inv := range all {
			if strings.Contains(strings.ToLower(inv.InvoiceNumber), needle) ||
				strings.Contains(strings.ToLower(inv.BillTo.Name), needle) {
				matched = append(matched, inv)
			}
		}
	}
	items := make([]dto.InvoiceResponse, 0, len(matched))
	for i := range matched {
		items = append(items, *toInvoiceResponse(&matched[i]))
	}
	return &dto.InvoiceListResponse{
		Items:   items,
		Showing: len(matched),
		Total:   len(all),
	}, nil
}

// Create builds a fully-formed invoice from the request and appends it to
// the collection. A fresh uuid is assigned when the request carries none.
// The current organization settings are copied by value into the
// organization-info and payment-info snapshots, so later settings edits do
// not retroactively change this invoice. An empty item list is seeded with
// the default row; duplicate ids are not checked.
func (uc *UseCase) Create(in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	items, err := buildItems(in.Items, true)
	if err != nil {
		return nil, err
	}
	settings, err := uc.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("invoicing: read settings: %w", err)
	}

	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	now := uc.now()
	date := in.Date
	if date == "" {
		date = now.Format(dateLayout)
	}
	dueDate := in.DueDate
	if dueDate == "" {
		dueDate = now.AddDate(0, 0, 30).Format(dateLayout)
	}
	paymentInfo := in.PaymentInfo
	if paymentInfo == nil {
		pi := settings.PaymentInfo()
		paymentInfo = &pi
	}

	invoice := entity.Invoice{
		ID:               id,
		InvoiceNumber:    in.InvoiceNumber,
		Date:             date,
		DueDate:          dueDate,
		BillTo:           in.BillTo,
		Items:            items,
		Notes:            in.Notes,
		PaymentInfo:      paymentInfo,
		OrganizationInfo: settings.OrganizationInfo(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.invoices.Create(invoice); err != nil {
		return nil, err
	}
	uc.notifier.Success("Invoice created successfully")
	return toInvoiceResponse(&invoice), nil
}

// Update replaces the invoice wholesale (no partial-field merge). The
// identifier, creation timestamp and organization snapshot of the stored
// record are preserved; an unknown id is a silent no-op at the store, as
// specified. Removing the last line item is not possible: an empty item
// list is rejected.
func (uc *UseCase) Update(id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: an invoice must keep at least one line item", domain.ErrInvalidInput)
	}
	items, err := buildItems(in.Items, false)
	if err != nil {
		return nil, err
	}

	existing, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}

	invoice := entity.Invoice{
		ID:            id,
		InvoiceNumber: in.InvoiceNumber,
		Date:          in.Date,
		DueDate:       in.DueDate,
		BillTo:        in.BillTo,
		Items:         items,
		Notes:         in.Notes,
		PaymentInfo:   in.PaymentInfo,
		UpdatedAt:     uc.now(),
	}
	if existing != nil {
		invoice.OrganizationInfo = existing.OrganizationInfo
		invoice.CreatedAt = existing.CreatedAt
		if invoice.PaymentInfo == nil {
			invoice.PaymentInfo = existing.PaymentInfo
		}
	}
	if err := uc.invoices.Update(id, invoice); err != nil {
		return nil, err
	}
	uc.notifier.Success("Invoice updated successfully")
	return toInvoiceResponse(&invoice), nil
}

// Delete removes the invoice. No-op for an unknown id.
func (uc *UseCase) Delete(id string) error {
	if err := uc.invoices.Delete(id); err != nil {
		return err
	}
	uc.notifier.Success("Invoice deleted successfully")
	return nil
}

// Get returns one invoice or domain.ErrNotFound. Callers at the UI
// boundary treat not-found as "redirect to the list", not as a fault.
func (uc *UseCase) Get(id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return toInvoiceResponse(inv), nil
}

// Summary aggregates the landing-view numbers: invoice count, total amount
// billed and the five most recent invoices.
func (uc *UseCase) Summary() (*dto.DashboardResponse, error) {
	all, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	totalBilled := decimal.Zero
	for i := range all {
		totalBilled = totalBilled.Add(billing.Total(all[i].Items))
	}
	recentStart := len(all) - 5
	if recentStart < 0 {
		recentStart = 0
	}
	recent := make([]dto.InvoiceResponse, 0, len(all)-recentStart)
	for i := len(all) - 1; i >= recentStart; i-- {
		recent = append(recent, *toInvoiceResponse(&all[i]))
	}
	return &dto.DashboardResponse{
		InvoiceCount: len(all),
		TotalBilled:  totalBilled.StringFixed(2),
		Recent:       recent,
	}, nil
}

// GetSettings returns the organization settings record.
func (uc *UseCase) GetSettings() (*dto.OrganizationSettingsDTO, error) {
	settings, err := uc.settings.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(settings), nil
}

// UpdateSettings replaces the settings record wholesale.
func (uc *UseCase) UpdateSettings(in dto.OrganizationSettingsDTO) (*dto.OrganizationSettingsDTO, error) {
	settings := fromSettingsDTO(in)
	if err := uc.settings.Update(settings); err != nil {
		return nil, err
	}
	uc.notifier.Success("Organization settings updated successfully")
	return toSettingsDTO(settings), nil
}
