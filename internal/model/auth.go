package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for the admin dashboard
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// VerifyResponse is returned by the token check endpoint
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	Username string `json:"username"`
}

// SimulateRequest is the body of POST /api/admin/simulate
type SimulateRequest struct {
	LearningScore    int `json:"learning_score"`
	ApplicationScore int `json:"application_score"`
}
