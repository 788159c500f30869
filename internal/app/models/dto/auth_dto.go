package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"kwame.mensah@university.edu.gh"`
	Password string `json:"password" binding:"required" example:"password123"`
}
