package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalePaymentModel represents the venda_pagamento table in the database.
type SalePaymentModel struct {
	SaleID       int             `gorm:"column:id_venda;primaryKey;autoIncrement"`
	PropertyCode int             `gorm:"column:codigo_imovel;not null;index"`
	PaymentDate  time.Time       `gorm:"column:data_do_pagamento;type:date;not null;index"`
	Amount       decimal.Decimal `gorm:"column:valor_do_pagamento;type:decimal(12,2);not null"`

	// Relationship (not loaded by default, use Preload)
	Property *PropertyModel `gorm:"foreignKey:PropertyCode;references:Code"`
}

// TableName returns the table name for the SalePaymentModel.
func (SalePaymentModel) TableName() string {
	return "venda_pagamento"
}
