package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
)

// payment builds a test payment record.
func payment(saleID int, date string, amount string, code int, description, propertyType string) entity.Payment {
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

func TestGroupByProperty(t *testing.T) {
	t.Run("sums per property and sorts by total descending", func(t *testing.T) {
		payments := []entity.Payment{
			payment(101, "2025-02-05", "1800.00", 101, "Apto Centro", "Apartamento"),
			payment(102, "2025-02-10", "1500.00", 102, "Casa Jardim", "Casa"),
			payment(103, "2025-03-05", "1800.00", 101, "Apto Centro", "Apartamento"),
		}

		totals := GroupByProperty(payments)

		if len(totals) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(totals))
		}

		if totals[0].PropertyCode != 101 {
			t.Errorf("expected property 101 first, got %d", totals[0].PropertyCode)
		}
		if !totals[0].TotalPayments.Equal(decimal.RequireFromString("3600.00")) {
			t.Errorf("expected total 3600.00, got %s", totals[0].TotalPayments)
		}
		if totals[1].PropertyCode != 102 {
			t.Errorf("expected property 102 second, got %d", totals[1].PropertyCode)
		}
		if !totals[1].TotalPayments.Equal(decimal.RequireFromString("1500.00")) {
			t.Errorf("expected total 1500.00, got %s", totals[1].TotalPayments)
		}
	})

	t.Run("preserves the sum of all amounts across groups", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-01-10", "1800.55", 1, "A", "Apartamento"),
			payment(2, "2024-01-11", "1800.55", 1, "A", "Apartamento"),
			payment(3, "2024-02-12", "950.10", 2, "B", "Casa"),
			payment(4, "2024-03-13", "2499.99", 3, "C", "Sala Comercial"),
		}

		expected := decimal.Zero
		for _, p := range payments {
			expected = expected.Add(p.Amount)
		}

		got := decimal.Zero
		for _, total := range GroupByProperty(payments) {
			got = got.Add(total.TotalPayments)
		}

		if !got.Equal(expected) {
			t.Errorf("expected grouped sum %s, got %s", expected, got)
		}
	})

	t.Run("breaks total ties by property code ascending", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-01-10", "1000.00", 9, "Nine", "Casa"),
			payment(2, "2024-01-11", "1000.00", 3, "Three", "Casa"),
			payment(3, "2024-01-12", "1000.00", 7, "Seven", "Casa"),
		}

		totals := GroupByProperty(payments)

		codes := []int{totals[0].PropertyCode, totals[1].PropertyCode, totals[2].PropertyCode}
		if codes[0] != 3 || codes[1] != 7 || codes[2] != 9 {
			t.Errorf("expected codes [3 7 9], got %v", codes)
		}
	})

	t.Run("takes description and type from the first record of each property", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-01-10", "100.00", 1, "First description", "Apartamento"),
			payment(2, "2024-01-11", "100.00", 1, "Later description", "Casa"),
		}

		totals := GroupByProperty(payments)

		if totals[0].PropertyDescription != "First description" {
			t.Errorf("expected first description to win, got %q", totals[0].PropertyDescription)
		}
		if totals[0].PropertyType != "Apartamento" {
			t.Errorf("expected first type to win, got %q", totals[0].PropertyType)
		}
	})

	t.Run("rounds summed totals to two decimal places", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-01-10", "1800.555", 1, "A", "Apartamento"),
			payment(2, "2024-01-11", "1800.555", 1, "A", "Apartamento"),
		}

		totals := GroupByProperty(payments)

		if !totals[0].TotalPayments.Equal(decimal.RequireFromString("3601.11")) {
			t.Errorf("expected 3601.11, got %s", totals[0].TotalPayments)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		totals := GroupByProperty(nil)
		if totals == nil {
			t.Fatal("expected non-nil slice")
		}
		if len(totals) != 0 {
			t.Errorf("expected empty slice, got %d items", len(totals))
		}
	})

	t.Run("does not mutate the input and is deterministic", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-01-10", "100.00", 2, "B", "Casa"),
			payment(2, "2024-01-11", "200.00", 1, "A", "Apartamento"),
		}

		first := GroupByProperty(payments)
		second := GroupByProperty(payments)

		if payments[0].PropertyCode != 2 || payments[1].PropertyCode != 1 {
			t.Error("input slice was mutated")
		}

		if len(first) != len(second) {
			t.Fatalf("expected identical outputs, got %d and %d items", len(first), len(second))
		}
		for i := range first {
			if first[i].PropertyCode != second[i].PropertyCode ||
				!first[i].TotalPayments.Equal(second[i].TotalPayments) {
				t.Errorf("outputs differ at index %d", i)
			}
		}
	})
}
