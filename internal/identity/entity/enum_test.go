package entity

import "testing"

func TestOTPChannelKey(t *testing.T) {
	tests := []struct {
		name    string
		channel OTPChannel
		id      string
		want    string
	}{
		{name: "email", channel: OTPChannelEmail, id: "jane.doe@example.com", want: "otp:email:jane.doe@example.com"},
		{name: "sms", channel: OTPChannelSMS, id: "+628123456789", want: "otp:sms:+628123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.channel.Key(tt.id); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOTPChannelString(t *testing.T) {
	if got := OTPChannelEmail.String(); got != "email" {
		t.Errorf("String() = %q, want %q", got, "email")
	}
	if got := OTPChannelSMS.String(); got != "sms" {
		t.Errorf("String() = %q, want %q", got, "sms")
	}
	if got := OTPChannelUnknown.String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
