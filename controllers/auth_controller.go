package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/logitrustkenya/logistics-enhanced-sub000/metrics"
	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
	"github.com/logitrustkenya/logistics-enhanced-sub000/store"
)

// invalidCredentials is the one message every login failure gets; callers
// cannot tell a wrong password from an unknown email.
const invalidCredentials = "Invalid email or password"

type AuthController struct {
	users     store.UserStore
	jwtSecret []byte
}

func NewAuthController(users store.UserStore, jwtSecret []byte) *AuthController {
	return &AuthController{users: users, jwtSecret: jwtSecret}
}

// Signup godoc
// @Summary Register a new account
// @Description Create an SME or provider account. The same email may register once per user type.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.SignupRequest true "Signup data"
// @Success 201 {object} models.SignupResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/signup [post]
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	count, err := ac.users.CountByEmailAndType(c.Request.Context(), req.Email, req.UserType)
	if err != nil {
		zap.L().Error("failed to check existing account", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("signup").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email and user type already exists"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash password", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("signup").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  string(hashed),
		UserType:  req.UserType,
		CreatedAt: time.Now().UTC(),
	}

	created, err := ac.users.Create(c.Request.Context(), user)
	if err != nil {
		zap.L().Error("failed to insert user", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("signup").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	metrics.SignupsTotal.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"message": "Signup successful",
		"userId":  created.ID.Hex(),
	})
}

// SignupInfo godoc
// @Summary Signup endpoint usage
// @Tags Auth
// @Produce json
// @Success 200 {object} models.SuccessResponse
// @Router /api/auth/signup [get]
func (ac *AuthController) SignupInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Send a POST request with email, password and userType to create an account",
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and issue a JWT. An email with both an SME and a provider account matches whichever account the password belongs to.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	users, err := ac.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		zap.L().Error("failed to look up user", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("login").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	var user *models.User
	for i := range users {
		if bcrypt.CompareHashAndPassword([]byte(users[i].Password), []byte(req.Password)) == nil {
			user = &users[i]
			break
		}
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID":   user.ID.Hex(),
		"userType": user.UserType,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(ac.jwtSecret)
	if err != nil {
		zap.L().Error("failed to sign token", zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("login").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    tokenString,
		"userId":   user.ID.Hex(),
		"userType": user.UserType,
	})
}

// PromoteUserToAdmin godoc
// @Summary Promote an account to admin
// @Description Marks every account under the email as admin. Admin only.
// @Tags Auth
// @Produce json
// @Param email path string true "Email to promote"
// @Success 200 {object} models.SuccessResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/auth/promote/{email} [patch]
// @Security BearerAuth
func (ac *AuthController) PromoteUserToAdmin(c *gin.Context) {
	email := c.Param("email")

	matched, err := ac.users.PromoteByEmail(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("failed to promote user", zap.String("email", email), zap.Error(err))
		metrics.OperationErrorsTotal.WithLabelValues("promote").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin successfully"})
}
