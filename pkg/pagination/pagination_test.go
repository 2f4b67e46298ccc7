package pagination

import "testing"

func TestNormalizePageSize(t *testing.T) {
	if got := NormalizePageSize(0); got != DefaultPageSize {
		t.Fatalf("zero size should normalize to default, got %d", got)
	}
	if got := NormalizePageSize(-3); got != DefaultPageSize {
		t.Fatalf("negative size should normalize to default, got %d", got)
	}
	if got := NormalizePageSize(MaxPageSize + 1); got != MaxPageSize {
		t.Fatalf("oversized request should cap at max, got %d", got)
	}
	if got := NormalizePageSize(7); got != 7 {
		t.Fatalf("valid size should pass through, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count, size, want int
	}{
		{count: 0, size: 3, want: 1},
		{count: 1, size: 3, want: 1},
		{count: 3, size: 3, want: 1},
		{count: 4, size: 3, want: 2},
		{count: 7, size: 3, want: 3},
		{count: 7, size: 7, want: 1},
	}
	for _, tt := range tests {
		if got := TotalPages(tt.count, tt.size); got != tt.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tt.count, tt.size, got, tt.want)
		}
	}
}

func TestClampPage(t *testing.T) {
	if got := ClampPage(0, 3); got != 1 {
		t.Fatalf("page below range should clamp to 1, got %d", got)
	}
	if got := ClampPage(4, 3); got != 3 {
		t.Fatalf("page above range should clamp to last, got %d", got)
	}
	if got := ClampPage(2, 3); got != 2 {
		t.Fatalf("in-range page should be untouched, got %d", got)
	}
	if InRange(4, 3) {
		t.Fatalf("page 4 of 3 is out of range")
	}
	if !InRange(3, 3) {
		t.Fatalf("page 3 of 3 is in range")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds(1, 3, 7)
	if lo != 0 || hi != 3 {
		t.Fatalf("page 1 bounds = [%d, %d), want [0, 3)", lo, hi)
	}
	lo, hi = Bounds(3, 3, 7)
	if lo != 6 || hi != 7 {
		t.Fatalf("page 3 bounds = [%d, %d), want [6, 7)", lo, hi)
	}
	// page 4 of a 7-entry, size-3 collection clamps back to page 3
	lo, hi = Bounds(4, 3, 7)
	if lo != 6 || hi != 7 {
		t.Fatalf("clamped bounds = [%d, %d), want [6, 7)", lo, hi)
	}
	lo, hi = Bounds(1, 3, 0)
	if lo != 0 || hi != 0 {
		t.Fatalf("empty collection bounds = [%d, %d), want [0, 0)", lo, hi)
	}
}
