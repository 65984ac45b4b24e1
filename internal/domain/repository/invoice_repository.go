package repository

import "github.com/udhaydurai/donor-breeze/internal/domain/entity"

// InvoiceRepository is the persistence port for the invoice collection.
// Every mutation persists the whole collection synchronously; the backing
// store guarantees per-key atomicity, so a crash mid-write leaves the last
// consistent snapshot, never a partial one.
type InvoiceRepository interface {
	// List returns all invoices in insertion order (no implicit sort).
	List() ([]entity.Invoice, error)
	// Create appends the fully-formed invoice. Duplicate ids are not
	// rejected; assigning unique ids is the caller's responsibility.
	Create(invoice entity.Invoice) error
	// Update replaces the invoice whose id matches, preserving order.
	// Silent no-op when the id is not found.
	Update(id string, invoice entity.Invoice) error
	// Delete removes the invoice by id. No-op when not found.
	Delete(id string) error
	// GetByID returns the matching invoice, or nil when absent.
	GetByID(id string) (*entity.Invoice, error)
}
