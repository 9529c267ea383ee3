package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/domains/user/model"
	"microblog-backend/internal/domains/user/service"
	"microblog-backend/internal/shared/response"
)

type UserHandler struct {
	userService  service.ServiceInterface
	cookieName   string
	cookieMaxAge int // seconds
}

func NewUserHandler(userService service.ServiceInterface, cookieName string, cookieMaxAge int) *UserHandler {
	return &UserHandler{
		userService:  userService,
		cookieName:   cookieName,
		cookieMaxAge: cookieMaxAge,
	}
}

// Signup handles POST /auth/signup/
func (h *UserHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken), errors.Is(err, model.ErrEmailTaken):
			response.Conflict(c, err.Error())
		default:
			// ozzo validation errors land here
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "signup failed", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// LoginForm handles GET /auth/login/
// Exists mainly as the target of the next= redirect flow.
func (h *UserHandler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"form": gin.H{
			"fields": []string{"username", "password"},
		},
		"next": c.Query("next"),
	})
}

// Login handles POST /auth/login/
// Sets the auth cookie so browser-style clients can follow
// redirect flows, and returns the tokens for API clients.
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			response.Unauthorized(c, err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "login failed", err.Error())
		return
	}

	c.SetCookie(
		h.cookieName,
		res.AccessToken,
		h.cookieMaxAge,
		"/",
		"",
		false,
		true,
	)

	response.Success(c, http.StatusOK, res)
}

// Logout handles POST /auth/logout/
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}
