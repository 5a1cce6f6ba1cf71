package entities

import "testing"

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock int
		want  StockStatus
	}{
		{-3, StockStatusSoldOut},
		{0, StockStatusSoldOut},
		{1, StockStatusLow},
		{3, StockStatusLow},
		{5, StockStatusLow},
		{6, StockStatusInStock},
		{20, StockStatusInStock},
	}
	for _, c := range cases {
		if got := ClassifyStock(c.stock); got != c.want {
			t.Fatalf("ClassifyStock(%d) = %s, want %s", c.stock, got, c.want)
		}
	}
}

func TestProduct_StockStatus(t *testing.T) {
	p := Product{Stock: 4}
	if p.StockStatus() != StockStatusLow {
		t.Fatalf("expected LOW, got %s", p.StockStatus())
	}
}
