package controllers

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logitrustkenya/logistics-enhanced-sub000/models"
)

var testSecret = []byte("test-secret")

func TestSignupConflictScopedToEmailAndType(t *testing.T) {
	router := newAuthRouter(testSecret)

	signup := map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
		"userType": "sme",
	}

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", signup)
	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.Equal(t, "Signup successful", resp["message"])
	assert.NotEmpty(t, resp["userId"])

	// Same (email, userType) pair conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", signup)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Same email as a provider is a distinct account.
	signup["userType"] = "provider"
	w = doJSON(t, router, http.MethodPost, "/api/auth/signup", signup)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestSignupValidation(t *testing.T) {
	router := newAuthRouter(testSecret)

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing email", body: map[string]interface{}{"password": "x", "userType": "sme"}},
		{name: "bad email", body: map[string]interface{}{"email": "nope", "password": "x", "userType": "sme"}},
		{name: "missing password", body: map[string]interface{}{"email": "a@b.com", "userType": "sme"}},
		{name: "unknown user type", body: map[string]interface{}{"email": "a@b.com", "password": "x", "userType": "driver"}},
		{name: "admin not self-serve", body: map[string]interface{}{"email": "a@b.com", "password": "x", "userType": "admin"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/auth/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupInfo(t *testing.T) {
	router := newAuthRouter(testSecret)

	w := doJSON(t, router, http.MethodGet, "/api/auth/signup", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp["message"])
}

func TestLoginIssuesToken(t *testing.T) {
	router := newAuthRouter(testSecret)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
		"userType": "provider",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, models.UserTypeProvider, resp.UserType)
	assert.NotEmpty(t, resp.UserID)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return testSecret, nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, models.UserTypeProvider, claims["userType"])
	assert.Equal(t, resp.UserID, claims["userID"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router := newAuthRouter(testSecret)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
		"userType": "sme",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "wrong",
	})
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "hunter2",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestPromoteUserToAdmin(t *testing.T) {
	router := newAuthRouter(testSecret)

	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
		"userType": "sme",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPatch, "/api/auth/promote/jane@example.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The promoted account now logs in as admin.
	w = doJSON(t, router, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    "jane@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var resp models.LoginResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, models.UserTypeAdmin, resp.UserType)

	w = doJSON(t, router, http.MethodPatch, "/api/auth/promote/nobody@example.com", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
