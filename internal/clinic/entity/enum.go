package entity

type AppointmentStatus int16

const (
	AppointmentStatusUnknown   AppointmentStatus = 0
	AppointmentStatusScheduled AppointmentStatus = 1
	AppointmentStatusConfirmed AppointmentStatus = 2
	AppointmentStatusCompleted AppointmentStatus = 3
	AppointmentStatusCancelled AppointmentStatus = 4
)

func (s AppointmentStatus) String() string {
	switch s {
	case AppointmentStatusScheduled:
		return "scheduled"
	case AppointmentStatusConfirmed:
		return "confirmed"
	case AppointmentStatusCompleted:
		return "completed"
	case AppointmentStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func AppointmentStatusFromString(raw string) AppointmentStatus {
	switch raw {
	case "scheduled":
		return AppointmentStatusScheduled
	case "confirmed":
		return AppointmentStatusConfirmed
	case "completed":
		return AppointmentStatusCompleted
	case "cancelled":
		return AppointmentStatusCancelled
	default:
		return AppointmentStatusUnknown
	}
}

// CanTransitionTo reports whether moving to next is a legal status change.
// Completed and cancelled are terminal.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled:
		return next == AppointmentStatusConfirmed || next == AppointmentStatusCancelled
	case AppointmentStatusConfirmed:
		return next == AppointmentStatusCompleted || next == AppointmentStatusCancelled
	default:
		return false
	}
}
