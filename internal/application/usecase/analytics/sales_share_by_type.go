package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
	domainerror "github.com/easyimob/backend/internal/domain/error"
)

// TypeShare represents the share of payments attributed to one property type.
type TypeShare struct {
	PropertyType string
	Percentage   decimal.Decimal
	Count        int
}

// SalesShareByTypeOutput represents the output of the share-by-type aggregation.
type SalesShareByTypeOutput struct {
	Share []TypeShare
	Total int
}

// GetSalesShareByTypeUseCase handles the percentage share aggregation.
type GetSalesShareByTypeUseCase struct {
	paymentRepo PaymentRepository
}

// NewGetSalesShareByTypeUseCase creates a new GetSalesShareByTypeUseCase instance.
func NewGetSalesShareByTypeUseCase(paymentRepo PaymentRepository) *GetSalesShareByTypeUseCase {
	return &GetSalesShareByTypeUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute fetches the full payment list and returns the share per property type.
func (uc *GetSalesShareByTypeUseCase) Execute(ctx context.Context) (*SalesShareByTypeOutput, error) {
	payments, err := uc.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeDataSourceUnavailable,
			"failed to fetch payments",
			fmt.Errorf("sales share by type: %w", err),
		)
	}

	return GroupByTypeShare(payments), nil
}

// GroupByTypeShare counts payments per property type and converts each count
// to a percentage of the total record count, rounded to two decimal places.
// Results are sorted by percentage descending, type name ascending on ties.
// An empty input yields an empty share list and a zero total; the percentage
// division only runs when at least one record exists.
func GroupByTypeShare(payments []entity.Payment) *SalesShareByTypeOutput {
	total := len(payments)

	countByType := make(map[string]int)
	for _, p := range payments {
		countByType[p.PropertyType]++
	}

	share := make([]TypeShare, 0, len(countByType))
	for propertyType, count := range countByType {
		percentage := decimal.NewFromInt(int64(count * 100)).
			Div(decimal.NewFromInt(int64(total))).
			Round(2)
		share = append(share, TypeShare{
			PropertyType: propertyType,
			Percentage:   percentage,
			Count:        count,
		})
	}

	sort.Slice(share, func(i, j int) bool {
		cmp := share[i].Percentage.Cmp(share[j].Percentage)
		if cmp != 0 {
			return cmp > 0
		}
		return share[i].PropertyType < share[j].PropertyType
	})

	return &SalesShareByTypeOutput{
		Share: share,
		Total: total,
	}
}
