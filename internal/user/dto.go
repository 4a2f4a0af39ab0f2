package user

// RegisterRequest payload of registration.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Account         string `json:"account"          example:"lan"`
	Email           string `json:"email"            example:"lan@gmail.com"`
	Password        string `json:"password"         example:"secret"`
	ConfirmPassword string `json:"confirm_password" example:"secret"`
}

// LoginRequest identifier is the account name or the email.
// swagger:model LoginRequest
type LoginRequest struct {
	Identifier string `json:"identifier" example:"lan@gmail.com"`
	Password   string `json:"password"   example:"secret"`
}

// ShippingRequest payload of a shipping-info update.
// swagger:model ShippingRequest
type ShippingRequest struct {
	Phone   string `json:"phone"   example:"0901234567"`
	Address string `json:"address" example:"123 Main St"`
}

// UserResponse the account without credentials.
// swagger:model UserResponse
type UserResponse struct {
	Account string `json:"account"           example:"lan"`
	Email   string `json:"email"             example:"lan@gmail.com"`
	Phone   string `json:"phone,omitempty"   example:"0901234567"`
	Address string `json:"address,omitempty" example:"123 Main St"`
	Rank    Rank   `json:"rank"              example:"Bronze"`
}

func (s *Service) ToResponse(u *User) UserResponse {
	return UserResponse{
		Account: u.Account,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Rank:    s.Rank(u),
	}
}
