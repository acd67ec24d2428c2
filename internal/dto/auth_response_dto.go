package dto

// LoginRequest defines the credential payload for partner login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued JWT and the authenticated partner.
type LoginResponse struct {
	Token   string          `json:"token"`
	Partner PartnerResponse `json:"partner"`
}
