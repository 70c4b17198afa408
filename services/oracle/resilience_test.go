package oracle

import (
	"context"
	"errors"
	"testing"

	"hotelvoice/models"
)

type stubOracle struct {
	slots *models.BookingSlots
	err   error
	calls int
}

func (s *stubOracle) ExtractSlots(context.Context, string) (*models.BookingSlots, error) {
	s.calls++
	return s.slots, s.err
}

func TestResilientPassesThrough(t *testing.T) {
	inner := &stubOracle{slots: &models.BookingSlots{Adults: 2}}
	r := NewResilient(inner, nil)

	slots, err := r.ExtractSlots(context.Background(), "zwei erwachsene")
	if err != nil {
		t.Fatalf("ExtractSlots failed: %v", err)
	}
	if slots.Adults != 2 || inner.calls != 1 {
		t.Errorf("slots = %+v, calls = %d", slots, inner.calls)
	}
}

func TestResilientWrapsFailures(t *testing.T) {
	inner := &stubOracle{err: errors.New("model overloaded")}
	r := NewResilient(inner, nil)

	_, err := r.ExtractSlots(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	var uu *models.UpstreamUnavailable
	if !errors.As(err, &uu) {
		t.Fatalf("error type = %T, want UpstreamUnavailable", err)
	}
}

func TestResilientBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &stubOracle{err: errors.New("model overloaded")}
	r := NewResilient(inner, nil)

	for i := 0; i < 3; i++ {
		if _, err := r.ExtractSlots(context.Background(), "text"); err == nil {
			t.Fatalf("call %d unexpectedly succeeded", i)
		}
	}
	callsBefore := inner.calls

	// breaker is open now: the inner oracle must not be reached anymore
	if _, err := r.ExtractSlots(context.Background(), "text"); err == nil {
		t.Fatal("open breaker must fail fast")
	}
	if inner.calls != callsBefore {
		t.Errorf("inner called %d times after breaker opened, want %d", inner.calls, callsBefore)
	}
}
