// Package analytics contains the analytics use cases. All aggregation is done
// in memory over the full payment list returned by a single join query; the
// database is never asked to filter or group.
package analytics

import (
	"context"

	"github.com/easyimob/backend/internal/domain/entity"
)

// PaymentRepository defines the data access contract for the analytics use cases.
type PaymentRepository interface {
	// ListPayments returns every payment joined with its property and
	// property-type metadata, ordered by payment date then sale id. The result
	// is all-or-nothing: on any query failure no partial list is returned.
	ListPayments(ctx context.Context) ([]entity.Payment, error)
}
