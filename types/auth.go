package types

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	AccessToken string `json:"access_token"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"max=50"`
	AvatarURL   string `json:"avatar_url" binding:"max=500"`
}
