// services/booking/booking.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotelvoice/models"
	"hotelvoice/services/speech"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationPusher is the slice of the channel-manager client the commit
// flow needs.
type ReservationPusher interface {
	PushReservation(ctx context.Context, b models.Booking) (string, error)
}

// Service defines the booking commit operation.
type Service interface {
	Commit(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}

// DefaultService commits bookings. There is no datastore: the generated
// identifier plus the channel-manager push IS the booking.
type DefaultService struct {
	Channel     ReservationPusher // nil when no channel manager is configured
	PushTimeout time.Duration
}

func NewService(channel ReservationPusher) *DefaultService {
	return &DefaultService{Channel: channel, PushTimeout: 8 * time.Second}
}

// Commit validates the email, mints a booking ID and pushes the
// reservation to the channel manager as best-effort enrichment. Once the
// email check passes, Commit never fails: a dead channel manager only
// costs the provider reference.
func (s *DefaultService) Commit(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if !strings.Contains(req.Email, "@") {
		return nil, &models.ValidationError{
			Code:      models.CodeInvalidEmail,
			Message:   "email address is invalid",
			SpokenMsg: "Die E-Mail-Adresse scheint nicht zu stimmen. Bitte nennen Sie sie mir noch einmal.",
		}
	}

	if req.Adults < 1 {
		req.Adults = 1
	}
	if req.Children < 0 {
		req.Children = 0
	}

	b := models.Booking{
		ID:        newBookingID(),
		Email:     req.Email,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Adults:    req.Adults,
		Children:  req.Children,
		BoardType: req.BoardType,
		Addon:     req.Addon,
		CreatedAt: time.Now().UTC(),
	}

	if s.Channel != nil {
		pushCtx, cancel := context.WithTimeout(ctx, s.PushTimeout)
		defer cancel()
		ref, err := s.Channel.PushReservation(pushCtx, b)
		if err != nil {
			zap.L().Warn("channel push failed, keeping local booking id",
				zap.String("booking_id", b.ID), zap.Error(err))
		} else {
			b.ChannelRef = ref
		}
	}

	b.Spoken = spokenBooking(b)
	return &b, nil
}

// newBookingID mints a time-based identifier with a random suffix. No
// global uniqueness guarantee beyond an extremely low collision chance.
func newBookingID() string {
	return fmt.Sprintf("BK-%s-%s",
		time.Now().UTC().Format("20060102150405"),
		uuid.NewString()[:8])
}

func spokenBooking(b models.Booking) string {
	return fmt.Sprintf(
		"Ihre Buchung vom %s bis zum %s für %s ist vorgemerkt. Sie erhalten eine Bestätigung per E-Mail.",
		speech.Date(b.CheckIn), speech.Date(b.CheckOut), guestsPhrase(b.Adults, b.Children),
	)
}

func guestsPhrase(adults, children int) string {
	s := speech.Adults(adults)
	if children > 0 {
		s += " und " + speech.Children(children)
	}
	return s
}
