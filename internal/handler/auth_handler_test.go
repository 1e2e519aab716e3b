package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/model"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter() (*gin.Engine, *MockUserRepository) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mockRepo := new(MockUserRepository)
	authService := service.NewAuthService(mockRepo, jwtSecret)
	authHandler := handler.NewAuthHandler(authService, false)

	r.POST("/auth/login", authHandler.Login)

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware(jwtSecret))
	authorized.POST("/auth/logout", authHandler.Logout)

	return r, mockRepo
}

func sessionCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == middleware.AccessTokenCookie {
			return cookie
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	router, mockRepo := setupAuthRouter()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		HashedPassword: string(hash),
	}, nil)

	reqBody := handler.LoginRequest{Email: "alice@example.com", Password: "password123"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Login successful")

	cookie := sessionCookie(resp)
	assert.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, mockRepo := setupAuthRouter()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	mockRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(&model.User{
		ID:             uuid.New(),
		Email:          "alice@example.com",
		HashedPassword: string(hash),
	}, nil)

	reqBody := handler.LoginRequest{Email: "alice@example.com", Password: "not-the-password"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "wrong email or password")
	assert.Nil(t, sessionCookie(resp))
}

func TestLogin_UnknownEmail_SameMessage(t *testing.T) {
	router, mockRepo := setupAuthRouter()

	mockRepo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

	reqBody := handler.LoginRequest{Email: "ghost@example.com", Password: "password123"}
	jsonBody, _ := json.Marshal(reqBody)
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Identical status and message as a wrong password: no account enumeration.
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Contains(t, resp.Body.String(), "wrong email or password")
}

func TestLogout_ClearsCookie(t *testing.T) {
	router, _ := setupAuthRouter()

	userID := uuid.New()
	token, _ := authToken(userID)
	req, _ := http.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: token})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Logout successful")

	cookie := sessionCookie(resp)
	assert.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}
