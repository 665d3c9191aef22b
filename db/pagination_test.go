package db_test

import (
	"testing"

	"github.com/RozimuhammadIsomiddinov/scannerPOS/db"
)

func TestNewPagination(t *testing.T) {
	intPtr := func(i int) *int { return &i }

	cases := []struct {
		name       string
		total      int
		page       int
		pageSize   int
		totalPages int
		nextPage   *int
		prevPage   *int
	}{
		{"empty", 0, 1, 10, 0, nil, nil},
		{"single_page", 7, 1, 10, 1, nil, nil},
		{"exact_fit", 20, 1, 10, 2, intPtr(2), nil},
		{"middle_page", 25, 2, 10, 3, intPtr(3), intPtr(1)},
		{"last_page", 25, 3, 10, 3, nil, intPtr(2)},
		{"past_the_end", 25, 9, 10, 3, nil, intPtr(8)},
		{"page_size_one", 3, 2, 1, 3, intPtr(3), intPtr(1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := db.NewPagination(tc.total, tc.page, tc.pageSize)
			if p.TotalRecords != tc.total {
				t.Fatalf("total records: got %d want %d", p.TotalRecords, tc.total)
			}
			if p.CurrentPage != tc.page {
				t.Fatalf("current page: got %d want %d", p.CurrentPage, tc.page)
			}
			if p.TotalPages != tc.totalPages {
				t.Fatalf("total pages: got %d want %d", p.TotalPages, tc.totalPages)
			}
			if !intPtrEqual(p.NextPage, tc.nextPage) {
				t.Fatalf("next page: got %v want %v", p.NextPage, tc.nextPage)
			}
			if !intPtrEqual(p.PrevPage, tc.prevPage) {
				t.Fatalf("prev page: got %v want %v", p.PrevPage, tc.prevPage)
			}
		})
	}
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func TestParseQueryText(t *testing.T) {
	cases := []struct {
		in       string
		matchAll bool
		want     string
	}{
		{"", true, ""},
		{"milk", true, "milk:*"},
		{"Milk  1L", true, "milk:* & 1l:*"},
		{"Milk 1L", false, "milk:* | 1l:*"},
		{"!!!", true, ""},
		{"  fresh   bread  ", true, "fresh:* & bread:*"},
	}
	for _, tc := range cases {
		got := db.ParseQueryText(tc.in, tc.matchAll)
		if got != tc.want {
			t.Errorf("ParseQueryText(%q, %v): got %q want %q", tc.in, tc.matchAll, got, tc.want)
		}
	}
}

func TestGenerateListFilterSQL(t *testing.T) {
	condition, value := db.GenerateListFilterSQL("p.name", "milk", db.OperatorValueTypeContains, 1)
	if condition != "p.name ILIKE $1" || value != "%milk%" {
		t.Errorf("contains: got (%q, %q)", condition, value)
	}

	condition, value = db.GenerateListFilterSQL("p.stock", "5", db.OperatorValueTypeGreaterThan, 2)
	if condition != "p.stock > $2" || value != "5" {
		t.Errorf("greater than: got (%q, %q)", condition, value)
	}

	condition, _ = db.GenerateListFilterSQL("p.created_at", "", db.OperatorValueTypeIs, 1)
	if condition != "" {
		t.Errorf("empty date value should skip the filter, got %q", condition)
	}
}
