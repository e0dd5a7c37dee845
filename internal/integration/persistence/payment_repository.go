// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/easyimob/backend/internal/application/usecase/analytics"
	"github.com/easyimob/backend/internal/domain/entity"
	domainerror "github.com/easyimob/backend/internal/domain/error"
)

// paymentRepository implements the analytics.PaymentRepository interface.
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository instance.
func NewPaymentRepository(db *gorm.DB) analytics.PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

// ListPayments executes the single join query consumed by every analytics
// endpoint. It returns exactly six columns per row and never filters or
// groups in SQL; all aggregation happens in memory in the use cases.
func (r *paymentRepository) ListPayments(ctx context.Context) ([]entity.Payment, error) {
	var results []struct {
		SaleID              int             `gorm:"column:id_venda"`
		PaymentDate         time.Time       `gorm:"column:data_do_pagamento"`
		Amount              decimal.Decimal `gorm:"column:valor_do_pagamento"`
		PropertyCode        int             `gorm:"column:codigo_imovel"`
		PropertyDescription string          `gorm:"column:descricao_imovel"`
		PropertyType        string          `gorm:"column:tipo_imovel"`
	}

	query := `
		SELECT
			vp.id_venda,
			vp.data_do_pagamento,
			vp.valor_do_pagamento,
			vp.codigo_imovel,
			i.descricao_imovel,
			ti.nome as tipo_imovel
		FROM venda_pagamento vp
		JOIN imovel i ON vp.codigo_imovel = i.codigo_imovel
		JOIN tipo_imovel ti ON i.id_tipo = ti.id_tipo
		ORDER BY vp.data_do_pagamento, vp.id_venda
	`

	err := r.db.WithContext(ctx).
		Raw(query).
		Scan(&results).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w: %w",
			domainerror.ErrDataSourceUnavailable, err)
	}

	payments := make([]entity.Payment, len(results))
	for i, res := range results {
		payments[i] = entity.Payment{
			SaleID:              res.SaleID,
			PaymentDate:         res.PaymentDate,
			Amount:              res.Amount,
			PropertyCode:        res.PropertyCode,
			PropertyDescription: res.PropertyDescription,
			PropertyType:        res.PropertyType,
		}
	}

	return payments, nil
}
