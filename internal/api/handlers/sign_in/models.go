package sign_in

import "strings"

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) valid() bool {
	return strings.TrimSpace(r.Email) != "" && r.Password != ""
}
