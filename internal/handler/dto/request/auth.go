package request

type LoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}
