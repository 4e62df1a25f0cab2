package rest

import (
	"context"
	"net/http"
	"personamart/domain"
	"personamart/pkg/logger"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type UserService interface {
	Register(ctx context.Context, user *domain.User) (domain.User, error)
	Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error)
	ValidateTokenFromRedis(ctx context.Context, token string) (string, error)
	Logout(ctx context.Context, userID uint, token string) error
	GetUserByID(ctx context.Context, id uint) (domain.User, error)
	GetAllUsers(ctx context.Context, skip, limit int) ([]domain.User, error)
	UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	userService UserService
	validator   *validator.Validate
	timeout     time.Duration
}

func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator.New(),
		timeout:     10 * time.Second,
	}
}

type UserRegisterRequest struct {
	Name               string   `json:"name" validate:"required"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=6"`
	Age                int      `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender             string   `json:"gender,omitempty"`
	Location           string   `json:"location,omitempty"`
	IncomeLevel        string   `json:"income_level,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	FavoriteCategories []string `json:"favorite_categories,omitempty"`
	PersonaType        string   `json:"persona_type,omitempty"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdateRequest struct {
	Name               string   `json:"name,omitempty"`
	Age                int      `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Gender             string   `json:"gender,omitempty"`
	Location           string   `json:"location,omitempty"`
	IncomeLevel        string   `json:"income_level,omitempty"`
	Interests          []string `json:"interests,omitempty"`
	FavoriteCategories []string `json:"favorite_categories,omitempty"`
	PersonaType        string   `json:"persona_type,omitempty"`
}

type ResponseError struct {
	Message string `json:"message"`
}

func (h *UserHandler) Register(c echo.Context) error {
	var req UserRegisterRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate register request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user := &domain.User{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Age:                req.Age,
		Gender:             req.Gender,
		Location:           req.Location,
		IncomeLevel:        req.IncomeLevel,
		Interests:          datatypes.JSONSlice[string](req.Interests),
		FavoriteCategories: datatypes.JSONSlice[string](req.FavoriteCategories),
		PersonaType:        req.PersonaType,
	}

	newUser, err := h.userService.Register(ctx, user)
	if err != nil {
		logger.Error("Failed to register user", err)
		if err.Error() == "email already exists" {
			return c.JSON(http.StatusConflict, ResponseError{Message: err.Error()})
		}
		if err.Error() == "invalid email format" ||
			err.Error() == "password must be at least 6 characters" {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "user successfully registered",
		"user":    newUser,
	})
}

func (h *UserHandler) Login(c echo.Context) error {
	var req UserLoginRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	token, user, err := h.userService.Login(ctx, req.Email, req.Password, c.RealIP(), c.Request().UserAgent())
	if err != nil {
		logger.Error("Failed to login", err)
		if err.Error() == "user not found" || err.Error() == "incorrect password" {
			return c.JSON(http.StatusUnauthorized, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *UserHandler) Logout(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "user not authenticated"})
	}

	token, _ := c.Get("token").(string)

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.Logout(ctx, userID, token); err != nil {
		logger.Error("Failed to logout", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "logout successful",
	})
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	userIDStr := c.Param("id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	user, err := h.userService.GetUserByID(ctx, uint(userID))
	if err != nil {
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find user by id",
		"user":    user,
	})
}

func (h *UserHandler) GetAllUsers(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	users, err := h.userService.GetAllUsers(ctx, skip, limit)
	if err != nil {
		logger.Error("Failed to find all users", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get all users",
		"users":   users,
	})
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	userIDStr := c.Param("id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	var req UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updateData := &domain.User{
		Name:               req.Name,
		Age:                req.Age,
		Gender:             req.Gender,
		Location:           req.Location,
		IncomeLevel:        req.IncomeLevel,
		Interests:          datatypes.JSONSlice[string](req.Interests),
		FavoriteCategories: datatypes.JSONSlice[string](req.FavoriteCategories),
		PersonaType:        req.PersonaType,
	}

	user, err := h.userService.UpdateUser(ctx, uint(userID), updateData)
	if err != nil {
		logger.Error("Failed to update user", err)
		if err.Error() == "user not found" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update user",
		"user":    user,
	})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	userIDStr := c.Param("id")

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil {
		logger.Error("Invalid user id", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.userService.DeleteUser(ctx, uint(userID)); err != nil {
		logger.Error("Failed to delete user", err)
		if err.Error() == "user not found" || err.Error() == "user not found or already deleted" {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "user successfully deleted",
		"user_id": userID,
	})
}
