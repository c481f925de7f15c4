package request

type SendOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164,startswith=+7,len=12"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164,startswith=+7,len=12"`
	Code        int    `json:"code" validate:"required,min=1000"`
}
