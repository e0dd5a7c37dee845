package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
	domainerror "github.com/easyimob/backend/internal/domain/error"
)

// MonthlySales represents the payment total and count for one calendar month.
type MonthlySales struct {
	Month string // MM/YYYY
	Total decimal.Decimal
	Count int
}

// SalesByMonthOutput represents the output of the sales-by-month aggregation.
type SalesByMonthOutput struct {
	Series []MonthlySales
}

// GetSalesByMonthUseCase handles the monthly sales aggregation.
type GetSalesByMonthUseCase struct {
	paymentRepo PaymentRepository
}

// NewGetSalesByMonthUseCase creates a new GetSalesByMonthUseCase instance.
func NewGetSalesByMonthUseCase(paymentRepo PaymentRepository) *GetSalesByMonthUseCase {
	return &GetSalesByMonthUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute fetches the full payment list and returns the monthly series.
func (uc *GetSalesByMonthUseCase) Execute(ctx context.Context) (*SalesByMonthOutput, error) {
	payments, err := uc.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeDataSourceUnavailable,
			"failed to fetch payments",
			fmt.Errorf("sales by month: %w", err),
		)
	}

	return GroupByMonth(payments), nil
}

// monthKey identifies a calendar month. Keeping year and month as integers
// makes the chronological sort trivial; a lexicographic sort of the MM/YYYY
// strings would order "01/2025" before "12/2024".
type monthKey struct {
	year  int
	month int
}

func (k monthKey) String() string {
	return fmt.Sprintf("%02d/%04d", k.month, k.year)
}

// GroupByMonth groups payments by calendar month (MM/YYYY), summing amounts
// and counting records per month. The series is sorted chronologically, year
// first then month. The input is never mutated; an empty input yields an
// empty series.
func GroupByMonth(payments []entity.Payment) *SalesByMonthOutput {
	type monthAccumulator struct {
		total decimal.Decimal
		count int
	}

	grouped := make(map[monthKey]*monthAccumulator)

	for _, p := range payments {
		key := monthKey{year: p.PaymentDate.Year(), month: int(p.PaymentDate.Month())}
		acc, ok := grouped[key]
		if !ok {
			acc = &monthAccumulator{total: decimal.Zero}
			grouped[key] = acc
		}
		acc.total = acc.total.Add(p.Amount)
		acc.count++
	}

	keys := make([]monthKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	series := make([]MonthlySales, 0, len(keys))
	for _, key := range keys {
		acc := grouped[key]
		series = append(series, MonthlySales{
			Month: key.String(),
			Total: acc.total.Round(2),
			Count: acc.count,
		})
	}

	return &SalesByMonthOutput{Series: series}
}
