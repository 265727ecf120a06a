package inbound

type ResendOtpResponse struct {
	Email string `json:"email"`
}

func (ResendOtpResponse) Message() string {
	return "OTP sent successfully"
}
