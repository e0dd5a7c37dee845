package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/integration/persistence/model"
)

// registerDataSteps registers database seeding steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following property types exist:$`, theFollowingPropertyTypesExist)
	ctx.Step(`^the following properties exist:$`, theFollowingPropertiesExist)
	ctx.Step(`^the following payments exist:$`, theFollowingPaymentsExist)
}

// tableRows converts a gherkin table with a header row into field maps.
func tableRows(table *godog.Table) ([]map[string]string, error) {
	if len(table.Rows) < 2 {
		return nil, fmt.Errorf("expected a header row and at least one data row")
	}

	header := table.Rows[0]
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		if len(row.Cells) != len(header.Cells) {
			return nil, fmt.Errorf("row has %d cells, header has %d", len(row.Cells), len(header.Cells))
		}
		fields := make(map[string]string, len(row.Cells))
		for i, cell := range row.Cells {
			fields[header.Cells[i].Value] = cell.Value
		}
		rows = append(rows, fields)
	}
	return rows, nil
}

func atoi(fields map[string]string, key string) (int, error) {
	value, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("missing column %q", key)
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("column %q: %w", key, err)
	}
	return parsed, nil
}

func theFollowingPropertyTypesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, fields := range rows {
		id, err := atoi(fields, "id_tipo")
		if err != nil {
			return err
		}
		record := model.PropertyTypeModel{
			ID:   id,
			Name: fields["nome"],
		}
		if err := tc.db.DbConn.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed property type: %w", err)
		}
	}
	return nil
}

func theFollowingPropertiesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, fields := range rows {
		code, err := atoi(fields, "codigo_imovel")
		if err != nil {
			return err
		}
		typeID, err := atoi(fields, "id_tipo")
		if err != nil {
			return err
		}
		record := model.PropertyModel{
			Code:        code,
			Description: fields["descricao_imovel"],
			TypeID:      typeID,
		}
		if err := tc.db.DbConn.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed property: %w", err)
		}
	}
	return nil
}

func theFollowingPaymentsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	rows, err := tableRows(table)
	if err != nil {
		return err
	}

	for _, fields := range rows {
		saleID, err := atoi(fields, "id_venda")
		if err != nil {
			return err
		}
		code, err := atoi(fields, "codigo_imovel")
		if err != nil {
			return err
		}
		paymentDate, err := time.Parse("2006-01-02", fields["data_do_pagamento"])
		if err != nil {
			return fmt.Errorf("column %q: %w", "data_do_pagamento", err)
		}
		amount, err := decimal.NewFromString(fields["valor_do_pagamento"])
		if err != nil {
			return fmt.Errorf("column %q: %w", "valor_do_pagamento", err)
		}
		record := model.SalePaymentModel{
			SaleID:       saleID,
			PropertyCode: code,
			PaymentDate:  paymentDate,
			Amount:       amount,
		}
		if err := tc.db.DbConn.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to seed payment: %w", err)
		}
	}
	return nil
}
