// Package oracle is the optional LLM slot-extraction layer. It returns
// the same slot schema as the rule-based extractor and is never load
// bearing: every failure path falls back to the deterministic rules.
package oracle

import (
	"context"

	"hotelvoice/models"
)

// SlotOracle extracts booking slots from a German utterance.
type SlotOracle interface {
	ExtractSlots(ctx context.Context, text string) (*models.BookingSlots, error)
}

// Merge reconciles oracle output with rule-based output field by field:
// an oracle value wins only when present, otherwise the rule-based value
// stands. A child count of zero is indistinguishable from "not
// mentioned" in the oracle schema; the rule-based value fills that gap.
func Merge(rules, oracle *models.BookingSlots) *models.BookingSlots {
	if oracle == nil {
		return rules
	}
	merged := *rules
	if oracle.CheckIn != nil {
		merged.CheckIn = oracle.CheckIn
	}
	if oracle.CheckOut != nil {
		merged.CheckOut = oracle.CheckOut
	}
	if oracle.Adults >= 1 {
		merged.Adults = oracle.Adults
	}
	if oracle.Children > 0 {
		merged.Children = oracle.Children
	}
	return &merged
}
