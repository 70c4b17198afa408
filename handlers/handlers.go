package handlers

import (
	"encoding/json"
	"io"
	"time"

	"hotelvoice/services/availability"
	"hotelvoice/services/booking"
	"hotelvoice/services/oracle"
	"hotelvoice/services/quote"

	"github.com/gin-gonic/gin"
)

// Handler bundles the services behind the tool endpoints.
type Handler struct {
	Availability availability.Service
	Quote        quote.Service
	Booking      booking.Service
	Oracle       oracle.SlotOracle // nil when no oracle is configured
	Loc          *time.Location

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewHandler(av availability.Service, qu quote.Service, bk booking.Service, or oracle.SlotOracle, loc *time.Location) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		Availability: av,
		Quote:        qu,
		Booking:      bk,
		Oracle:       or,
		Loc:          loc,
	}
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now().In(h.Loc)
}

// bindArgs accepts both the voice platform's function-call envelope
// ({"name": ..., "args": {...}}) and a plain JSON body.
func bindArgs(c *gin.Context, out any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	var envelope struct {
		Args json.RawMessage `json:"args"`
	}
	if json.Unmarshal(body, &envelope) == nil && len(envelope.Args) > 0 {
		return json.Unmarshal(envelope.Args, out)
	}
	return json.Unmarshal(body, out)
}
