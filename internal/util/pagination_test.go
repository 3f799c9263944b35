package util

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCalculatePagination_FirstPage(t *testing.T) {
	p := CalculatePagination(100, 1, 20)

	if p.TotalPages != 5 {
		t.Errorf("Expected 5 total pages, got %d", p.TotalPages)
	}
	if p.HasPrev {
		t.Error("Expected no previous page on page 1")
	}
	if !p.HasNext {
		t.Error("Expected a next page on page 1 of 5")
	}
	expected := []int{1, 2, 3, 4, 5}
	if len(p.PageRange) != len(expected) {
		t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
	}
	for i, page := range expected {
		if p.PageRange[i] != page {
			t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
		}
	}
}

func TestCalculatePagination_EmptyResult(t *testing.T) {
	p := CalculatePagination(0, 1, 20)

	if p.TotalPages != 0 {
		t.Errorf("Expected 0 total pages, got %d", p.TotalPages)
	}
	if len(p.PageRange) != 0 {
		t.Errorf("Expected empty page range, got %v", p.PageRange)
	}
	if p.HasPrev || p.HasNext {
		t.Error("Expected no prev/next on an empty listing")
	}
}

func TestCalculatePagination_WindowSlides(t *testing.T) {
	// 200 rows at 20 per page is 10 pages; page 5 sits mid-window
	p := CalculatePagination(200, 5, 20)

	expected := []int{3, 4, 5, 6, 7}
	if len(p.PageRange) != len(expected) {
		t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
	}
	for i, page := range expected {
		if p.PageRange[i] != page {
			t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
		}
	}
}

func TestCalculatePagination_WindowClampsAtEnd(t *testing.T) {
	// On the last pages the window slides back instead of shrinking
	p := CalculatePagination(200, 10, 20)

	expected := []int{6, 7, 8, 9, 10}
	for i, page := range expected {
		if p.PageRange[i] != page {
			t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
		}
	}
	if p.HasNext {
		t.Error("Expected no next page on the last page")
	}
}

func TestCalculatePagination_FewPages(t *testing.T) {
	// 3 pages total: window holds all of them
	p := CalculatePagination(50, 2, 20)

	expected := []int{1, 2, 3}
	if len(p.PageRange) != len(expected) {
		t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
	}
	for i, page := range expected {
		if p.PageRange[i] != page {
			t.Fatalf("Expected page range %v, got %v", expected, p.PageRange)
		}
	}
}

func TestPagination_Offset(t *testing.T) {
	p := CalculatePagination(100, 3, 20)
	if p.Offset() != 40 {
		t.Errorf("Expected offset 40 for page 3, got %d", p.Offset())
	}
}

// The pager window always holds min(5, total_pages) consecutive pages and
// contains the current page whenever it exists.
func TestProperty_PaginationWindow(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Window holds min(5, total_pages) consecutive pages", prop.ForAll(
		func(total int64, page, perPage int) bool {
			p := CalculatePagination(total, page, perPage)

			expectedLen := p.TotalPages
			if expectedLen > 5 {
				expectedLen = 5
			}
			if len(p.PageRange) != expectedLen {
				return false
			}
			for i := 1; i < len(p.PageRange); i++ {
				if p.PageRange[i] != p.PageRange[i-1]+1 {
					return false
				}
			}
			// A valid current page must appear in the window
			if page >= 1 && page <= p.TotalPages {
				found := false
				for _, rangePage := range p.PageRange {
					if rangePage == page {
						found = true
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		gen.Int64Range(0, 100000),
		gen.IntRange(1, 1000),
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t)
}
