package mq

import (
	"context"
	"encoding/json"

	"github.com/caredent/caredent/internal/clinic/usecase"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/messaging"
	"github.com/caredent/caredent/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishAppointmentBooked(ctx context.Context, msg usecase.AppointmentBookedEvent) error {
	ctx, span := m.ins.Tracer("clinic.outbound.mq").Start(ctx, "PublishAppointmentBooked")
	defer span.End()

	body, err := json.Marshal(event.AppointmentBookedMessage{
		AppointmentID: msg.AppointmentID,
		PatientID:     msg.PatientID,
		PatientName:   msg.PatientName,
		PatientEmail:  msg.PatientEmail,
		DentistName:   msg.DentistName,
		ScheduledAt:   msg.ScheduledAt,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, event.AppointmentBookedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
