package controller

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
)

// testPayment builds a payment record for handler tests.
func testPayment(saleID int, date string, amount string, code int, description, propertyType string) entity.Payment {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return entity.Payment{
		SaleID:              saleID,
		PaymentDate:         parsed,
		Amount:              decimal.RequireFromString(amount),
		PropertyCode:        code,
		PropertyDescription: description,
		PropertyType:        propertyType,
	}
}
