package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Account kinds. An email may hold one account per user type, so uniqueness
// is scoped to the (email, userType) pair rather than the email alone.
const (
	UserTypeSME      = "sme"
	UserTypeProvider = "provider"
	UserTypeAdmin    = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash
	UserType  string             `bson:"userType" json:"userType"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required,oneof=sme provider"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message  string `json:"message" example:"Login successful"`
	Token    string `json:"token" example:"your_jwt_token_here"`
	UserID   string `json:"userId"`
	UserType string `json:"userType" example:"sme"`
}

type SignupResponse struct {
	Message string `json:"message" example:"Signup successful"`
	UserID  string `json:"userId"`
}
