package search

import "testing"

func TestPaginate_MiddlePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, 2, 2)

	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
	if len(result.Items) != 2 || result.Items[0] != 3 || result.Items[1] != 4 {
		t.Errorf("Items = %v, want [3 4]", result.Items)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	result := Paginate(items, 3, 2)

	if len(result.Items) != 1 || result.Items[0] != 5 {
		t.Errorf("Items = %v, want [5]", result.Items)
	}
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
}

func TestPaginate_PagePastEnd(t *testing.T) {
	items := []string{"a", "b", "c"}

	result := Paginate(items, 5, 2)

	if len(result.Items) != 0 {
		t.Errorf("Items = %v, want empty", result.Items)
	}
	if result.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", result.TotalPages)
	}
}

func TestPaginate_Empty(t *testing.T) {
	result := Paginate([]int{}, 1, 10)

	if result.TotalPages != 0 {
		t.Errorf("TotalPages = %d, want 0", result.TotalPages)
	}
	if len(result.Items) != 0 {
		t.Errorf("Items = %v, want empty", result.Items)
	}
}

func TestPaginate_TotalPagesCeiling(t *testing.T) {
	cases := []struct {
		n, pageSize, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{20, 10, 2},
		{21, 10, 3},
		{7, 3, 3},
	}

	for _, tc := range cases {
		items := make([]int, tc.n)
		result := Paginate(items, 1, tc.pageSize)
		if result.TotalPages != tc.want {
			t.Errorf("n=%d pageSize=%d: TotalPages = %d, want %d", tc.n, tc.pageSize, result.TotalPages, tc.want)
		}
	}
}

func TestPaginate_OrderPreserved(t *testing.T) {
	items := []int{9, 4, 7, 1}

	result := Paginate(items, 1, 10)

	for i, v := range items {
		if result.Items[i] != v {
			t.Fatalf("Items = %v, want source order %v", result.Items, items)
		}
	}
}
