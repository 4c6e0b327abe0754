package models

import "testing"

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		totalRecords int64
		wantPages    int
	}{
		{"exact multiple", 1, 100, 500, 5},
		{"partial last page", 1, 100, 501, 6},
		{"single short page", 1, 100, 7, 1},
		{"zero records", 1, 100, 0, 0},
		{"page size one", 3, 1, 42, 42},
		{"non-positive page size", 1, 0, 42, 0},
		{"negative page size", 1, -5, 42, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.pageSize, tt.totalRecords)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Page != tt.page {
				t.Errorf("Page = %d, want %d", p.Page, tt.page)
			}
			if p.PageSize != tt.pageSize {
				t.Errorf("PageSize = %d, want %d", p.PageSize, tt.pageSize)
			}
			if p.TotalRecords != tt.totalRecords {
				t.Errorf("TotalRecords = %d, want %d", p.TotalRecords, tt.totalRecords)
			}
		})
	}
}

func TestTripFilterOffset(t *testing.T) {
	f := TripFilter{Page: 2, PageSize: 100}
	if f.Offset() != 100 {
		t.Errorf("Offset() = %d, want 100", f.Offset())
	}

	f = TripFilter{Page: 1, PageSize: 250}
	if f.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", f.Offset())
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, s := range []ServiceType{ServiceYellow, ServiceGreen, ServiceFHV} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []ServiceType{"", "uber", "YELLOW"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestEmptyTripsResponse(t *testing.T) {
	resp := EmptyTripsResponse(3, 50)
	if resp.Data == nil {
		t.Error("Data should be an empty slice, not nil")
	}
	if len(resp.Data) != 0 {
		t.Errorf("Data has %d entries, want 0", len(resp.Data))
	}
	if resp.Pagination.Page != 3 || resp.Pagination.PageSize != 50 {
		t.Errorf("page echo = (%d,%d), want (3,50)", resp.Pagination.Page, resp.Pagination.PageSize)
	}
	if resp.Pagination.TotalRecords != 0 || resp.Pagination.TotalPages != 0 {
		t.Error("totals should be zero")
	}
}
