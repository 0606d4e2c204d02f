package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/caredent/caredent/internal/notification/usecase"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/messaging"
	"github.com/caredent/caredent/internal/pkg/uid"
	"github.com/caredent/caredent/internal/shared/event"
)

const keyOfCorrelationID string = "cID"

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, attrs map[string]string) context.Context {
	if cID, ok := attrs[keyOfCorrelationID]; ok && cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) AppointmentBookedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg.Attributes())

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "AppointmentBookedNotification")
	defer span.End()

	body := msg.Body()
	slog.InfoContext(ctx, "consume: appointment booked notification", "msg_body", string(body))

	var payload event.AppointmentBookedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of appointment booked notification",
			"msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeAppointmentBooked(ctx, usecase.ConsumeAppointmentBookedInput{
		AppointmentID: payload.AppointmentID,
		PatientID:     payload.PatientID,
		PatientName:   payload.PatientName,
		PatientEmail:  payload.PatientEmail,
		DentistName:   payload.DentistName,
		ScheduledAt:   payload.ScheduledAt,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume appointment booked", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
