package view

import (
	"testing"

	"github.com/ai8v/coursepage/domain"
)

func TestBuildPriceFree(t *testing.T) {
	pv := BuildPrice(&domain.Course{Price: 0, OriginalPrice: 99})
	if !pv.Free || pv.Current != "Free" {
		t.Fatalf("unexpected price view: %+v", pv)
	}
	if pv.HasDiscount {
		t.Fatalf("free course must not carry a discount: %+v", pv)
	}
}

func TestBuildPriceDiscount(t *testing.T) {
	pv := BuildPrice(&domain.Course{Price: 49, OriginalPrice: 99})
	if pv.Free || !pv.HasDiscount {
		t.Fatalf("unexpected price view: %+v", pv)
	}
	if pv.Current != "$49.00" || pv.Original != "$99.00" {
		t.Fatalf("unexpected amounts: %+v", pv)
	}
	// 1 - 49/99 = 0.5050..., rounds to 51
	if pv.DiscountPercent != 51 {
		t.Fatalf("expected 51%% discount, got %d", pv.DiscountPercent)
	}
	if pv.Saved != "50.00" {
		t.Fatalf("expected saved 50.00, got %s", pv.Saved)
	}
}

func TestBuildPriceNoDiscountWhenOriginalNotHigher(t *testing.T) {
	for _, original := range []float64{0, 49, 40} {
		pv := BuildPrice(&domain.Course{Price: 49, OriginalPrice: original})
		if pv.HasDiscount {
			t.Fatalf("original %v must not produce a discount: %+v", original, pv)
		}
		if pv.Current != "$49.00" {
			t.Fatalf("unexpected current price: %+v", pv)
		}
	}
}
