package aggregation

import (
	"testing"
	"time"
)

func TestMinMaxAverage(t *testing.T) {
	t.Run("empty input returns the zero sentinel", func(t *testing.T) {
		stats := MinMaxAverage(nil, nil)
		if stats.Count != 0 {
			t.Errorf("expected count 0, got %d", stats.Count)
		}
		for name, v := range map[string]string{
			"min":     stats.Min.String(),
			"max":     stats.Max.String(),
			"average": stats.Average.String(),
			"total":   stats.Total.String(),
		} {
			if v != "0" {
				t.Errorf("expected %s to be 0, got %s", name, v)
			}
		}
	})

	t.Run("computes min, max and average", func(t *testing.T) {
		records := []Record{
			sale("a", day(2024, time.January, 1), "x", "10"),
			sale("b", day(2024, time.January, 2), "x", "40"),
			sale("c", day(2024, time.January, 3), "x", "25"),
		}
		stats := MinMaxAverage(records, nil)
		if !stats.Min.Equal(dec("10")) || !stats.Max.Equal(dec("40")) {
			t.Errorf("unexpected min/max: %s/%s", stats.Min, stats.Max)
		}
		if !stats.Average.Equal(dec("25")) {
			t.Errorf("expected average 25, got %s", stats.Average)
		}
		if stats.Count != 3 || !stats.Total.Equal(dec("75")) {
			t.Errorf("unexpected count/total: %d/%s", stats.Count, stats.Total)
		}
	})

	t.Run("missing values count as zero", func(t *testing.T) {
		records := []Record{
			{ID: "a"},
			sale("b", day(2024, time.January, 2), "x", "8"),
		}
		stats := MinMaxAverage(records, nil)
		if !stats.Min.IsZero() || !stats.Average.Equal(dec("4")) {
			t.Errorf("unexpected stats: %+v", stats)
		}
	})
}

func TestLatest(t *testing.T) {
	records := []Record{
		sale("old", day(2024, time.January, 1), "x", "1"),
		{ID: "undated"},
		sale("new", day(2024, time.March, 1), "x", "1"),
		sale("mid", day(2024, time.February, 1), "x", "1"),
	}

	got := ids(Latest(records, 3))
	if !sameIDs(got, []string{"new", "mid", "old"}) {
		t.Errorf("expected [new mid old], got %v", got)
	}
	if len(Latest(records, 0)) != 0 {
		t.Error("expected no records for n = 0")
	}
	if got := ids(Latest(records, 10)); got[len(got)-1] != "undated" {
		t.Errorf("undated records should sort last, got %v", got)
	}
}
