package bolt

import (
	"fmt"

	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo stores the invoice collection as a single JSON array under
// the "invoices" key. Every mutation reads the collection, applies the
// change and writes the whole array back — no delta persistence.
type InvoiceRepo struct {
	store *Store
}

// NewInvoiceRepository builds the adapter.
func NewInvoiceRepository(store *Store) *InvoiceRepo {
	return &InvoiceRepo{store: store}
}

// List returns all invoices in insertion order.
func (r *InvoiceRepo) List() ([]entity.Invoice, error) {
	invoices := []entity.Invoice{}
	if _, err := r.store.getJSON(keyInvoices, &invoices); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// Create appends the invoice and persists the collection.
func (r *InvoiceRepo) Create(invoice entity.Invoice) error {
	invoices, err := r.List()
	if err != nil {
		return err
	}
	invoices = append(invoices, invoice)
	if err := r.store.putJSON(keyInvoices, invoices); err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// Update replaces the invoice with the matching id in place, preserving
// collection order. Silent no-op when the id is not present.
func (r *InvoiceRepo) Update(id string, invoice entity.Invoice) error {
	invoices, err := r.List()
	if err != nil {
		return err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			invoices[i] = invoice
			break
		}
	}
	if err := r.store.putJSON(keyInvoices, invoices); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes the invoice by id. No-op when not found.
func (r *InvoiceRepo) Delete(id string) error {
	invoices, err := r.List()
	if err != nil {
		return err
	}
	kept := invoices[:0]
	for _, inv := range invoices {
		if inv.ID != id {
			kept = append(kept, inv)
		}
	}
	if err := r.store.putJSON(keyInvoices, kept); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// GetByID returns the matching invoice, or nil when absent.
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	invoices, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		if invoices[i].ID == id {
			inv := invoices[i]
			return &inv, nil
		}
	}
	return nil, nil
}
