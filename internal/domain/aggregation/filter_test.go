package aggregation

import (
	"testing"
	"time"
)

func filterFixture() []Record {
	return []Record{
		sale("s1", day(2024, time.January, 5), "João Entregas", "100.00"),
		sale("s2", day(2024, time.February, 10), "Maria", "50.00"),
		{ID: "s3", Kind: KindSale, Date: day(2024, time.February, 20), Payee: "joão da silva", Declared: dec("25.00"), PaymentMethod: "credit_card", Status: "settled"},
		{ID: "s4", Kind: KindSale, Payee: "Sem data", Declared: dec("10.00"), PaymentMethod: "pix", Status: "pending"},
	}
}

func TestApply_EmptyFilterIsIdentity(t *testing.T) {
	records := filterFixture()
	got := Apply(records, Filter{})
	if !sameIDs(ids(got), ids(records)) {
		t.Errorf("expected identity, got %v", ids(got))
	}

	blank := Filter{Category: "  ", Payee: "", Status: " "}
	if !blank.IsEmpty() {
		t.Error("whitespace-only fields should count as empty")
	}
	if got := Apply(records, blank); len(got) != len(records) {
		t.Errorf("expected %d records, got %d", len(records), len(got))
	}
}

func TestFilter_Match(t *testing.T) {
	records := filterFixture()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "payee substring is case-insensitive",
			filter: Filter{Payee: "JOÃO"},
			want:   []string{"s1", "s3"},
		},
		{
			name:   "inclusive date range",
			filter: Filter{DateFrom: dayPtr(2024, time.February, 10), DateTo: dayPtr(2024, time.February, 20)},
			want:   []string{"s2", "s3"},
		},
		{
			name:   "date_to covers the whole day",
			filter: Filter{DateTo: dayPtr(2024, time.January, 5)},
			want:   []string{"s1"},
		},
		{
			name:   "inclusive value range",
			filter: Filter{ValueMin: decPtr("25"), ValueMax: decPtr("50")},
			want:   []string{"s2", "s3"},
		},
		{
			name:   "payment method equality ignores case",
			filter: Filter{PaymentMethod: "CREDIT_CARD"},
			want:   []string{"s3"},
		},
		{
			name:   "status",
			filter: Filter{Status: "pending"},
			want:   []string{"s1", "s2", "s4"},
		},
		{
			name:   "AND semantics",
			filter: Filter{Payee: "joão", Status: "pending"},
			want:   []string{"s1"},
		},
		{
			name:   "undated record never matches a date bound",
			filter: Filter{DateFrom: dayPtr(1900, time.January, 1)},
			want:   []string{"s1", "s2", "s3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Apply(records, tt.filter))
			if !sameIDs(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			for _, r := range Apply(records, tt.filter) {
				if !tt.filter.Match(r) {
					t.Errorf("record %s returned but does not match", r.ID)
				}
			}
		})
	}
}

func TestApply_AddingPredicatesNeverGrowsResult(t *testing.T) {
	records := filterFixture()
	steps := []Filter{
		{},
		{Status: "pending"},
		{Status: "pending", PaymentMethod: "pix"},
		{Status: "pending", PaymentMethod: "pix", DateFrom: dayPtr(2024, time.January, 1)},
		{Status: "pending", PaymentMethod: "pix", DateFrom: dayPtr(2024, time.January, 1), ValueMin: decPtr("60")},
	}

	previous := len(records) + 1
	for i, f := range steps {
		n := len(Apply(records, f))
		if n > previous {
			t.Errorf("step %d: cardinality grew from %d to %d", i, previous, n)
		}
		previous = n
	}
	if previous != 1 {
		t.Errorf("expected the last step to keep only s1, got %d records", previous)
	}
}

func TestApply_PreservesInputOrder(t *testing.T) {
	records := []Record{
		sale("c", day(2024, time.March, 1), "x", "1"),
		sale("a", day(2024, time.January, 1), "x", "1"),
		sale("b", day(2024, time.February, 1), "x", "1"),
	}
	got := ids(Apply(records, Filter{Payee: "x"}))
	if !sameIDs(got, []string{"c", "a", "b"}) {
		t.Errorf("expected input order, got %v", got)
	}
}

func TestUnparsableDate_ExcludedFromDateFilterButCountedInSums(t *testing.T) {
	broken := sale("bad", ParseDate("32/13/2024 not a date"), "Carlos", "40.00")
	if broken.HasDate() {
		t.Fatal("expected the unparsable date to produce a zero date")
	}
	records := []Record{
		sale("ok", day(2024, time.January, 10), "Carlos", "60.00"),
		broken,
	}

	filtered := Apply(records, Filter{DateFrom: dayPtr(2024, time.January, 1), DateTo: dayPtr(2024, time.December, 31)})
	if !sameIDs(ids(filtered), []string{"ok"}) {
		t.Errorf("expected only the dated record, got %v", ids(filtered))
	}

	byPayee := SumBy(records, ByPayee)
	if !byPayee.Get("Carlos").Equal(dec("100.00")) {
		t.Errorf("expected Carlos total 100.00, got %s", byPayee.Get("Carlos"))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2024-02-10", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"2024-02-10T15:04:05Z", time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC)},
		{"2024-02-10T15:04:05", time.Date(2024, 2, 10, 15, 4, 5, 0, time.UTC)},
		{"10/02/2024", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"yesterday", time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseDate(tt.raw)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
