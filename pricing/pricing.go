// Package pricing holds the keyword-driven price, category, and delivery-fee
// tables. All amounts are in fils (100 fils = 1 AED).
//
// Prices and categories are keyed off substrings of the charm image filename.
// The match priority below is load-bearing: a filename containing both
// "deluxe" and "gold" prices as deluxe-gold, not as some generic gold tier.
// Do not reorder the tiers.
package pricing

import (
	"strings"

	"navillera/models"
)

// Price returns the unit price for a charm filename. Tiers are checked in
// priority order; within a tier a secondary keyword refines the price.
// Unmatched filenames price at 0.
func Price(filename string) int64 {
	lower := strings.ToLower(filename)

	// Plain charms win over everything else.
	if strings.Contains(lower, "plain") {
		switch {
		case strings.Contains(lower, "gold"):
			return 150
		case strings.Contains(lower, "silver"):
			return 100
		case strings.Contains(lower, "red"),
			strings.Contains(lower, "blue"),
			strings.Contains(lower, "black"),
			strings.Contains(lower, "brown"),
			strings.Contains(lower, "purple"),
			strings.Contains(lower, "pink"):
			return 150
		}
		return 100
	}

	if strings.Contains(lower, "classic") {
		switch {
		case strings.Contains(lower, "concave"):
			return 250
		case strings.Contains(lower, "gold"):
			return 300
		case strings.Contains(lower, "outline"):
			return 350
		case strings.Contains(lower, "colored"):
			return 400
		case strings.Contains(lower, "solid"):
			return 450
		}
		return 0
	}

	if strings.Contains(lower, "premium") {
		switch {
		case strings.Contains(lower, "starter"):
			return 500
		case strings.Contains(lower, "charming"):
			return 700
		case strings.Contains(lower, "iconic"):
			return 800
		}
		return 700
	}

	if strings.Contains(lower, "deluxe") {
		switch {
		case strings.Contains(lower, "baby"):
			return 1000
		case strings.Contains(lower, "silver"):
			return 1200
		case strings.Contains(lower, "gold"):
			return 1500
		}
		return 0
	}

	if strings.Contains(lower, "flag") {
		return 800
	}

	if strings.Contains(lower, "letters") {
		switch {
		case strings.Contains(lower, "gold"):
			return 350
		case strings.Contains(lower, "silver"):
			return 300
		}
		return 0
	}

	if strings.Contains(lower, "number") {
		return 300
	}

	return 0
}

// CategoryFor classifies a charm filename. The classifier is independent of
// the price table and may disagree with it (a filename can price at 0 but
// still classify as Premium); that is accepted, not an error. Note the
// asymmetry with Price: the category keyword is "flags", the price keyword
// is "flag".
func CategoryFor(filename string) models.Category {
	s := strings.ToLower(filename)

	switch {
	case strings.Contains(s, "classic"), strings.Contains(s, "plain"):
		return models.CategoryClassic
	case strings.Contains(s, "premium"):
		return models.CategoryPremium
	case strings.Contains(s, "deluxe"):
		return models.CategoryDeluxe
	case strings.Contains(s, "letters"):
		return models.CategoryLetters
	case strings.Contains(s, "number"):
		return models.CategoryNumbers
	case strings.Contains(s, "flags"):
		return models.CategoryFlags
	}
	return models.CategoryAll
}

// deliveryFeeRule maps a meetup-place substring to a fee. Matching is by
// substring containment so the descriptive option labels used in the
// selection UI ("Union Metro (exit 2, 10 AED)") still resolve.
type deliveryFeeRule struct {
	substr string
	fee    int64
}

// Ordered: first match wins. The home-delivery label is keyed on "dubai:"
// (with the colon) so the free "Dubai Internet City Metro" stop does not
// match it.
var deliveryFeeRules = []deliveryFeeRule{
	{"dmcc", 500},
	{"sobha", 500},
	{"union", 1000},
	{"burjuman", 1000},
	{"dubai:", 2000},
	{"other emirates", 2500},
}

// DeliveryFee returns the delivery fee for a meetup place label. Unmatched
// places, including the explicitly free pickup stops, cost 0.
func DeliveryFee(meetupPlace string) int64 {
	lower := strings.ToLower(meetupPlace)
	for _, rule := range deliveryFeeRules {
		if strings.Contains(lower, rule.substr) {
			return rule.fee
		}
	}
	return 0
}
