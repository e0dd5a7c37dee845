package analytics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/easyimob/backend/internal/domain/entity"
)

func TestGroupByMonth(t *testing.T) {
	t.Run("groups totals and counts per calendar month", func(t *testing.T) {
		payments := []entity.Payment{
			payment(101, "2025-02-05", "1800.00", 101, "Apto Centro", "Apartamento"),
			payment(102, "2025-02-10", "1500.00", 102, "Casa Jardim", "Casa"),
			payment(103, "2025-03-05", "1800.00", 101, "Apto Centro", "Apartamento"),
		}

		output := GroupByMonth(payments)

		if len(output.Series) != 2 {
			t.Fatalf("expected 2 months, got %d", len(output.Series))
		}

		february := output.Series[0]
		if february.Month != "02/2025" {
			t.Errorf("expected month 02/2025, got %q", february.Month)
		}
		if !february.Total.Equal(decimal.RequireFromString("3300.00")) {
			t.Errorf("expected total 3300.00, got %s", february.Total)
		}
		if february.Count != 2 {
			t.Errorf("expected count 2, got %d", february.Count)
		}

		march := output.Series[1]
		if march.Month != "03/2025" {
			t.Errorf("expected month 03/2025, got %q", march.Month)
		}
		if !march.Total.Equal(decimal.RequireFromString("1800.00")) {
			t.Errorf("expected total 1800.00, got %s", march.Total)
		}
		if march.Count != 1 {
			t.Errorf("expected count 1, got %d", march.Count)
		}
	})

	t.Run("sorts chronologically across year boundaries", func(t *testing.T) {
		// A lexicographic sort of MM/YYYY keys would put 01/2025 first.
		payments := []entity.Payment{
			payment(1, "2025-01-15", "100.00", 1, "A", "Apartamento"),
			payment(2, "2024-12-15", "100.00", 1, "A", "Apartamento"),
			payment(3, "2025-02-15", "100.00", 1, "A", "Apartamento"),
		}

		output := GroupByMonth(payments)

		months := make([]string, len(output.Series))
		for i, m := range output.Series {
			months[i] = m.Month
		}

		expected := []string{"12/2024", "01/2025", "02/2025"}
		for i := range expected {
			if months[i] != expected[i] {
				t.Fatalf("expected order %v, got %v", expected, months)
			}
		}
	})

	t.Run("zero-pads single-digit months", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-03-01", "10.00", 1, "A", "Casa"),
		}

		output := GroupByMonth(payments)

		if output.Series[0].Month != "03/2024" {
			t.Errorf("expected 03/2024, got %q", output.Series[0].Month)
		}
	})

	t.Run("rounds monthly totals to two decimal places", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-05-01", "1800.555", 1, "A", "Casa"),
			payment(2, "2024-05-02", "1800.555", 1, "A", "Casa"),
		}

		output := GroupByMonth(payments)

		if !output.Series[0].Total.Equal(decimal.RequireFromString("3601.11")) {
			t.Errorf("expected 3601.11, got %s", output.Series[0].Total)
		}
	})

	t.Run("empty input yields an empty series", func(t *testing.T) {
		output := GroupByMonth(nil)

		if output == nil {
			t.Fatal("expected non-nil output")
		}
		if output.Series == nil {
			t.Fatal("expected non-nil series")
		}
		if len(output.Series) != 0 {
			t.Errorf("expected empty series, got %d items", len(output.Series))
		}
	})

	t.Run("does not mutate the input and is deterministic", func(t *testing.T) {
		payments := []entity.Payment{
			payment(1, "2024-06-01", "50.00", 1, "A", "Casa"),
			payment(2, "2024-07-01", "60.00", 1, "A", "Casa"),
		}

		first := GroupByMonth(payments)
		second := GroupByMonth(payments)

		if len(first.Series) != len(second.Series) {
			t.Fatalf("expected identical outputs, got %d and %d months",
				len(first.Series), len(second.Series))
		}
		for i := range first.Series {
			if first.Series[i].Month != second.Series[i].Month ||
				first.Series[i].Count != second.Series[i].Count ||
				!first.Series[i].Total.Equal(second.Series[i].Total) {
				t.Errorf("outputs differ at index %d", i)
			}
		}
	})
}
