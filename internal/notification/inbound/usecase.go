package inbound

import (
	"context"

	"github.com/caredent/caredent/internal/notification/usecase"
)

// uc narrows the notification usecase to what the consumers call.
type uc interface {
	ConsumeAppointmentBooked(ctx context.Context, in usecase.ConsumeAppointmentBookedInput) error
}
