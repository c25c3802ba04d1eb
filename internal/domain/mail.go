package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type WelcomeMailData struct {
	Name string `json:"name"`
}

type ResetPasswordMailData struct {
	Name       string `json:"name"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type BookingMailData struct {
	Name         string `json:"name"`
	BusinessName string `json:"businessName"`
	Date         string `json:"date"`
	Time         string `json:"time"`
}
