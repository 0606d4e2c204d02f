package entity

import "testing"

func TestAppointmentStatusFromString(t *testing.T) {
	tests := []struct {
		raw  string
		want AppointmentStatus
	}{
		{raw: "scheduled", want: AppointmentStatusScheduled},
		{raw: "confirmed", want: AppointmentStatusConfirmed},
		{raw: "completed", want: AppointmentStatusCompleted},
		{raw: "cancelled", want: AppointmentStatusCancelled},
		{raw: "nonsense", want: AppointmentStatusUnknown},
		{raw: "", want: AppointmentStatusUnknown},
	}

	for _, tt := range tests {
		if got := AppointmentStatusFromString(tt.raw); got != tt.want {
			t.Errorf("AppointmentStatusFromString(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestAppointmentStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{name: "scheduled to confirmed", from: AppointmentStatusScheduled, to: AppointmentStatusConfirmed, want: true},
		{name: "scheduled to cancelled", from: AppointmentStatusScheduled, to: AppointmentStatusCancelled, want: true},
		{name: "scheduled to completed", from: AppointmentStatusScheduled, to: AppointmentStatusCompleted, want: false},
		{name: "confirmed to completed", from: AppointmentStatusConfirmed, to: AppointmentStatusCompleted, want: true},
		{name: "confirmed to cancelled", from: AppointmentStatusConfirmed, to: AppointmentStatusCancelled, want: true},
		{name: "confirmed to scheduled", from: AppointmentStatusConfirmed, to: AppointmentStatusScheduled, want: false},
		{name: "completed is terminal", from: AppointmentStatusCompleted, to: AppointmentStatusCancelled, want: false},
		{name: "cancelled is terminal", from: AppointmentStatusCancelled, to: AppointmentStatusScheduled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo() = %v, want %v", got, tt.want)
			}
		})
	}
}
