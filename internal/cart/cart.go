// Package cart holds the placeholder cart counter. Nothing is persisted:
// the count lives only in the label text the client sends back.
package cart

import (
	"fmt"
	"regexp"
	"strconv"
)

var digits = regexp.MustCompile(`\d+`)

// Ack is the acknowledgment of an add-to-cart action.
type Ack struct {
	Message string
	Count   int
	Label   string
}

// AddToCart acknowledges title and advances the counter shown in label.
func AddToCart(title, label string) Ack {
	count, next := UpdateCartCount(label)
	return Ack{
		Message: fmt.Sprintf("\"%s\" added to cart!", title),
		Count:   count,
		Label:   next,
	}
}

// UpdateCartCount reads the first number in label, treating a missing or
// unparsable number as zero, and returns the incremented count with its
// label.
func UpdateCartCount(label string) (int, string) {
	current, err := strconv.Atoi(digits.FindString(label))
	if err != nil {
		current = 0
	}
	next := current + 1
	return next, Label(next)
}

// Label is the cart button text for count.
func Label(count int) string {
	return fmt.Sprintf("Cart (%d)", count)
}
