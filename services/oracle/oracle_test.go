package oracle

import (
	"testing"

	"hotelvoice/models"
)

func TestMergePrefersOracleDates(t *testing.T) {
	rules := &models.BookingSlots{
		CheckIn: &models.ParsedDate{Date: "2025-10-22", NeedsConfirmation: true},
		Adults:  1,
	}
	llm := &models.BookingSlots{
		CheckIn:  &models.ParsedDate{Date: "2025-10-23"},
		CheckOut: &models.ParsedDate{Date: "2025-10-25"},
		Adults:   2,
	}
	merged := Merge(rules, llm)
	if merged.CheckIn.Date != "2025-10-23" {
		t.Errorf("check_in = %s, want oracle value", merged.CheckIn.Date)
	}
	if merged.CheckOut == nil || merged.CheckOut.Date != "2025-10-25" {
		t.Errorf("check_out = %+v, want oracle value", merged.CheckOut)
	}
	if merged.Adults != 2 {
		t.Errorf("adults = %d, want 2", merged.Adults)
	}
}

func TestMergeKeepsRulesWhereOracleIsSilent(t *testing.T) {
	rules := &models.BookingSlots{
		CheckIn:  &models.ParsedDate{Date: "2025-10-22"},
		CheckOut: &models.ParsedDate{Date: "2025-10-24"},
		Adults:   2,
		Children: 1,
	}
	llm := &models.BookingSlots{Adults: 0, Children: 0}
	merged := Merge(rules, llm)
	if merged.CheckIn.Date != "2025-10-22" || merged.CheckOut.Date != "2025-10-24" {
		t.Errorf("dates = %+v / %+v, want rule values", merged.CheckIn, merged.CheckOut)
	}
	if merged.Adults != 2 || merged.Children != 1 {
		t.Errorf("guests = %d/%d, want 2/1", merged.Adults, merged.Children)
	}
}

func TestMergeNilOracle(t *testing.T) {
	rules := &models.BookingSlots{Adults: 1}
	if got := Merge(rules, nil); got != rules {
		t.Error("nil oracle must return rules unchanged")
	}
}

func TestMergeDoesNotMutateRules(t *testing.T) {
	rules := &models.BookingSlots{Adults: 1}
	llm := &models.BookingSlots{Adults: 3}
	Merge(rules, llm)
	if rules.Adults != 1 {
		t.Errorf("rules mutated: adults = %d", rules.Adults)
	}
}

func TestParseSlotJSON(t *testing.T) {
	slots, err := parseSlotJSON(`{"check_in":"2025-10-22","check_out":"","adults":2,"children":0}`)
	if err != nil {
		t.Fatalf("parseSlotJSON failed: %v", err)
	}
	if slots.CheckIn == nil || slots.CheckIn.Date != "2025-10-22" {
		t.Errorf("check_in = %+v", slots.CheckIn)
	}
	if slots.CheckOut != nil {
		t.Errorf("empty check_out must stay nil, got %+v", slots.CheckOut)
	}
	if slots.Adults != 2 {
		t.Errorf("adults = %d", slots.Adults)
	}
}

func TestParseSlotJSONMarkdownFences(t *testing.T) {
	raw := "```json\n{\"check_in\":\"2025-10-22\",\"check_out\":\"2025-10-24\",\"adults\":2,\"children\":1}\n```"
	slots, err := parseSlotJSON(raw)
	if err != nil {
		t.Fatalf("fenced answer failed: %v", err)
	}
	if slots.CheckOut == nil || slots.CheckOut.Date != "2025-10-24" {
		t.Errorf("check_out = %+v", slots.CheckOut)
	}
}

func TestParseSlotJSONMalformed(t *testing.T) {
	_, err := parseSlotJSON("Entschuldigung, das kann ich nicht beantworten.")
	if err == nil {
		t.Fatal("expected error for prose answer")
	}
	if _, ok := err.(*models.UpstreamUnavailable); !ok {
		t.Errorf("error type = %T, want UpstreamUnavailable", err)
	}
}
