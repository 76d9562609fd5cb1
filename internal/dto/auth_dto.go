package dto

// LoginRequest matches the dashboard's login form payload.
type LoginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

// LoginResponse carries only a success flag — no session, cookie, or token.
// The dashboard marks itself authenticated locally after a success response.
type LoginResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}
