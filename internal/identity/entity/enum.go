package entity

// OTPChannel identifies the delivery channel a one-time code was issued over.
// Each channel owns its own key namespace in the ephemeral store, so the same
// person can hold independent live codes for email and SMS.
type OTPChannel int16

const (
	OTPChannelUnknown OTPChannel = 0
	OTPChannelEmail   OTPChannel = 1
	OTPChannelSMS     OTPChannel = 2
)

func (c OTPChannel) String() string {
	switch c {
	case OTPChannelEmail:
		return "email"
	case OTPChannelSMS:
		return "sms"
	default:
		return "unknown"
	}
}

// Key returns the store key for the given identifier, e.g.
// "otp:email:jane@clinic.test" or "otp:sms:+15550100".
func (c OTPChannel) Key(identifier string) string {
	return "otp:" + c.String() + ":" + identifier
}
