package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"tododeck/domain/dto"
	"tododeck/domain/services"
	"tododeck/pkg/config"
	"tododeck/pkg/logger"
	"tododeck/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
	session     config.SessionConfig
}

func NewAuthHandler(userService services.UserService, session config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		session:     session,
	}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "errors", errors)
		return utils.ValidationErrorResponse(c, errors)
	}

	token, user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "email", req.Email, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	h.setSessionCookie(c, token)

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		errors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, errors)
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid credentials")
	}

	h.setSessionCookie(c, token)

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

// Logout ล้าง session cookie ฝั่ง client
// token ฝั่ง server เป็น stateless JWT จึงหมดอายุเองตาม exp
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Domain:   h.session.CookieDomain,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, dto.LogoutResponse{Message: "Logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetProfile(c.UserContext(), userCtx.ID)
	if err != nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}

// Session รายงานสถานะ login ปัจจุบัน ใช้คู่กับ middleware.Optional()
// ไม่เคยตอบ 401 เพื่อให้ frontend เรียกตอน bootstrap ได้เสมอ
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.SuccessResponse(c, dto.SessionResponse{Authenticated: false})
	}

	user, err := h.userService.GetProfile(c.UserContext(), userCtx.ID)
	if err != nil {
		return utils.SuccessResponse(c, dto.SessionResponse{Authenticated: false})
	}

	resp := dto.UserToUserResponse(user)
	return utils.SuccessResponse(c, dto.SessionResponse{Authenticated: true, User: &resp})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    token,
		Domain:   h.session.CookieDomain,
		MaxAge:   h.session.CookieMaxAge,
		HTTPOnly: true,
		Secure:   h.session.Secure,
		SameSite: "Lax",
	})
}
