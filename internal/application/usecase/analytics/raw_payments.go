package analytics

import (
	"context"
	"fmt"

	"github.com/easyimob/backend/internal/domain/entity"
	domainerror "github.com/easyimob/backend/internal/domain/error"
)

// ListRawPaymentsUseCase exposes the unaggregated payment list, exactly as the
// join query returns it.
type ListRawPaymentsUseCase struct {
	paymentRepo PaymentRepository
}

// NewListRawPaymentsUseCase creates a new ListRawPaymentsUseCase instance.
func NewListRawPaymentsUseCase(paymentRepo PaymentRepository) *ListRawPaymentsUseCase {
	return &ListRawPaymentsUseCase{
		paymentRepo: paymentRepo,
	}
}

// Execute returns every payment record ordered by payment date then sale id.
func (uc *ListRawPaymentsUseCase) Execute(ctx context.Context) ([]entity.Payment, error) {
	payments, err := uc.paymentRepo.ListPayments(ctx)
	if err != nil {
		return nil, domainerror.NewAnalyticsError(
			domainerror.ErrCodeDataSourceUnavailable,
			"failed to fetch payments",
			fmt.Errorf("raw payments: %w", err),
		)
	}

	return payments, nil
}
