package aggregation

import (
	"testing"
	"time"
)

func TestCheckIntegrity(t *testing.T) {
	records := []Record{
		{
			ID: "consistent", Date: day(2024, time.January, 1), Declared: dec("21.00"),
			Items: []LineItem{{Quantity: 2, UnitPrice: dec("10.50")}},
		},
		{
			ID: "mismatch", Date: day(2024, time.January, 1), Declared: dec("30.00"),
			Items: []LineItem{{Quantity: 1, UnitPrice: dec("25.00")}},
		},
		{
			ID: "sub-cent", Date: day(2024, time.January, 1), Declared: dec("10.001"),
			Items: []LineItem{{Quantity: 1, UnitPrice: dec("10.00")}},
		},
		{ID: "no-items", Declared: dec("5")},
	}

	warnings := CheckIntegrity(records)

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d: %+v", len(warnings), warnings)
	}
	w := warnings[0]
	if w.RecordID != "mismatch" {
		t.Errorf("expected mismatch to be flagged, got %s", w.RecordID)
	}
	if !w.Difference().Equal(dec("5")) {
		t.Errorf("expected difference 5, got %s", w.Difference())
	}
}
