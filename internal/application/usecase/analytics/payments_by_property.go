package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
	domainerror "github.com/easyimob/backend/internal/domain/error"
)

// PropertyTotal represents the accumulated payments for one property.
type PropertyTotal struct {
	PropertyCode        int
	PropertyDescription string
	PropertyType        string
	TotalPayments       decimal.Decimal
}

// GetPaymentsByPropertyUseCase handles the payments-by-property aggregation.
type GetPaymentsByPropertyUseCase struct {
	paymentRepo PaymentRepository
}

// NewGetPaymentsByPropertyUseCase creates a new GetPaymentsByPropertyUseCase instance.
func NewGetPaymentsByPropertyUseCase(paymentRepo PaymentRepository) *GetPaymentsByPropertyUseCase {
	return &GetPaymentsByPropertyUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute fetches the full payment list and returns the per-property totals.
func (uc *GetPaymentsByPropertyUseCase) Execute(ctx context.Context) ([]PropertyTotal, error) {
	payments, err := uc.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeDataSourceUnavailable,
			"failed to fetch payments",
			fmt.Errorf("payments by property: %w", err),
		)
	}

	return GroupByProperty(payments), nil
}

// GroupByProperty groups payments by property code and sums their amounts.
// The description and type of each group come from the first payment seen for
// that code. Results are sorted by total descending, property code ascending
// on equal totals. The input is never mutated; an empty input yields an empty
// slice.
func GroupByProperty(payments []entity.Payment) []PropertyTotal {
	grouped := make(map[int]*PropertyTotal)
	order := make([]int, 0)

	for _, p := range payments {
		group, ok := grouped[p.PropertyCode]
		if !ok {
			group = &PropertyTotal{
				PropertyCode:        p.PropertyCode,
				PropertyDescription: p.PropertyDescription,
				PropertyType:        p.PropertyType,
				TotalPayments:       decimal.Zero,
			}
			grouped[p.PropertyCode] = group
			order = append(order, p.PropertyCode)
		}
		group.TotalPayments = group.TotalPayments.Add(p.Amount)
	}

	totals := make([]PropertyTotal, 0, len(order))
	for _, code := range order {
		group := grouped[code]
		group.TotalPayments = group.TotalPayments.Round(2)
		totals = append(totals, *group)
	}

	sort.Slice(totals, func(i, j int) bool {
		cmp := totals[i].TotalPayments.Cmp(totals[j].TotalPayments)
		if cmp != 0 {
			return cmp > 0
		}
		return totals[i].PropertyCode < totals[j].PropertyCode
	})

	return totals
}
