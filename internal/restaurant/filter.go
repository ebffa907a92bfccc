package restaurant

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	SortByRating       = "rating"
	SortByDeliveryTime = "deliveryTime"
)

// Filter holds the listing-page filter parameters. A nil MaxFee means no fee
// cap; an empty Cuisines set means no cuisine restriction.
type Filter struct {
	MaxFee   *decimal.Decimal
	Cuisines []string
	SortBy   string
}

// Apply filters and sorts the given restaurants. Pure: the input slice is not
// modified, and recomputing with the same inputs always yields the same output.
// Ties keep their prior relative order.
func Apply(restaurants []*Restaurant, f Filter) []*Restaurant {
	allowed := make(map[string]bool, len(f.Cuisines))
	for _, c := range f.Cuisines {
		allowed[c] = true
	}

	out := make([]*Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if f.MaxFee != nil && r.DeliveryFee.GreaterThan(*f.MaxFee) {
			continue
		}
		if len(allowed) > 0 && !allowed[r.Cuisine] {
			continue
		}
		out = append(out, r)
	}

	switch f.SortBy {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Rating > out[j].Rating
		})
	case SortByDeliveryTime:
		sort.SliceStable(out, func(i, j int) bool {
			return deliveryLowerBound(out[i].DeliveryTime) < deliveryLowerBound(out[j].DeliveryTime)
		})
	}

	return out
}

// deliveryLowerBound parses the leading integer of a delivery-time range, so
// "20-30 min" sorts as 20. Unparseable text sorts last.
func deliveryLowerBound(s string) int {
	digits := s
	for i, r := range s {
		if r < '0' || r > '9' {
			digits = s[:i]
			break
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
