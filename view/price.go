// Package view builds pure view models from course records. Nothing in this
// package touches the network or the renderer; everything is deterministic
// and unit-testable on its own.
package view

import (
	"fmt"
	"math"

	"github.com/ai8v/coursepage/domain"
)

// PriceView is the price display block. Exactly one of the three shapes is
// populated: free, paid without discount, paid with discount.
type PriceView struct {
	Free            bool
	Current         string
	Original        string
	HasDiscount     bool
	DiscountPercent int
	Saved           string
	AriaLabel       string
}

// BuildPrice derives the price display for a course.
// A discount is recognized only when originalPrice > price and price > 0.
func BuildPrice(course *domain.Course) PriceView {
	if course.Price == 0 {
		return PriceView{Free: true, Current: "Free"}
	}

	current := course.Price
	original := course.OriginalPrice
	if original <= current {
		return PriceView{
			Current:   fmt.Sprintf("$%.2f", current),
			AriaLabel: fmt.Sprintf("Price: $%.2f", current),
		}
	}

	percent := int(math.Round((1 - current/original) * 100))
	saved := fmt.Sprintf("%.2f", original-current)

	return PriceView{
		Current:         fmt.Sprintf("$%.2f", current),
		Original:        fmt.Sprintf("$%.2f", original),
		HasDiscount:     true,
		DiscountPercent: percent,
		Saved:           saved,
		AriaLabel: fmt.Sprintf("Original price $%.2f, now $%.2f, %d%% discount, you save $%s",
			original, current, percent, saved),
	}
}
