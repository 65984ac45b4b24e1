package invoicing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/domain"
	"github.com/udhaydurai/donor-breeze/internal/domain/billing"
	"github.com/udhaydurai/donor-breeze/internal/domain/entity"
)

// buildItems validates and converts request rows into line items, assigning
// ids where missing. With seedDefault an empty list becomes the single
// default row (the editor's initial state: quantity 1, price 0).
func buildItems(in []dto.LineItemRequest, seedDefault bool) ([]entity.LineItem, error) {
	if len(in) == 0 {
		if !seedDefault {
			return nil, fmt.Errorf("%w: at least one line item is required", domain.ErrInvalidInput)
		}
		return []entity.LineItem{{
			ID:       uuid.New().String(),
			Quantity: 1,
		}}, nil
	}
	items := make([]entity.LineItem, 0, len(in))
	for i, row := range in {
		if row.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d: quantity must be a positive integer", domain.ErrInvalidInput, i+1)
		}
		if row.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: price must not be negative", domain.ErrInvalidInput, i+1)
		}
		id := row.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, entity.LineItem{
			ID:          id,
			Description: row.Description,
			Quantity:    row.Quantity,
			Price:       row.Price,
			Tax:         row.Tax,
		})
	}
	return items, nil
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	items := make([]dto.LineItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, dto.LineItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Tax:         item.Tax,
			Amount:      billing.LineAmount(item).StringFixed(2),
		})
	}
	return &dto.InvoiceResponse{
		ID:               inv.ID,
		InvoiceNumber:    inv.InvoiceNumber,
		Date:             inv.Date,
		DueDate:          inv.DueDate,
		BillTo:           inv.BillTo,
		Items:            items,
		Notes:            inv.Notes,
		PaymentInfo:      inv.PaymentInfo,
		OrganizationInfo: inv.OrganizationInfo,
		Subtotal:         billing.Subtotal(inv.Items).StringFixed(2),
		Total:            billing.Total(inv.Items).StringFixed(2),
	}
}

func toSettingsDTO(s entity.OrganizationSettings) *dto.OrganizationSettingsDTO {
	return &dto.OrganizationSettingsDTO{
		Name:          s.Name,
		Address:       s.Address,
		Email:         s.Email,
		Phone:         s.Phone,
		Website:       s.Website,
		TaxID:         s.TaxID,
		Logo:          s.Logo,
		BankName:      s.BankName,
		AccountName:   s.AccountName,
		AccountNumber: s.AccountNumber,
		RoutingNumber: s.RoutingNumber,
		BankAddress:   s.BankAddress,
	}
}

func fromSettingsDTO(in dto.OrganizationSettingsDTO) entity.OrganizationSettings {
	return entity.OrganizationSettings{
		Name:          in.Name,
		Address:       in.Address,
		Email:         in.Email,
		Phone:         in.Phone,
		Website:       in.Website,
		TaxID:         in.TaxID,
		Logo:          in.Logo,
		BankName:      in.BankName,
		AccountName:   in.AccountName,
		AccountNumber: in.AccountNumber,
		RoutingNumber: in.RoutingNumber,
		BankAddress:   in.BankAddress,
	}
}
