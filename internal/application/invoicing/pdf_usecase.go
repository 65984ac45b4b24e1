package invoicing

import (
	"context"
	"fmt"

	"github.com/udhaydurai/donor-breeze/internal/domain"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

// InvoicePDFGenerator is the rendering collaborator: it turns an invoice
// record into a printable PDF document. Settings supply the logo, since
// the logo is not part of the historical invoice snapshot.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, settings entity.OrganizationSettings) ([]byte, error)
}

// PDFUseCase produces the downloadable PDF for one invoice.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	settings  repository.SettingsRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(invoices repository.InvoiceRepository, settings repository.SettingsRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, settings: settings, generator: generator}
}

// DownloadInvoicePDF loads the invoice and renders it.
//
// Returns:
//   - (pdfBytes, filename, nil) on success; the filename is
//     Invoice-<invoiceNumber>.pdf.
//   - domain.ErrNotFound when the invoice does not exist.
//   - domain.ErrRenderFailure (wrapped) when the renderer fails; the
//     stored data is unaffected and the caller surfaces a non-fatal notice.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoices.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	settings, err := uc.settings.Get()
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load settings: %w", err)
	}
	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, settings)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrRenderFailure, err)
	}
	filename = fmt.Sprintf("Invoice-%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
