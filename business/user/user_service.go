package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"personamart/domain"
	"personamart/pkg/logger"
	"personamart/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context, skip, limit int) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uint) error
	TouchLastLogin(ctx context.Context, id uint) error
}

// TokenRepository contract interface (redis-backed)
type TokenRepository interface {
	StoreToken(ctx context.Context, userID, token, ipAddress, userAgent string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, userID, token string) error
}

type PersonaCatalog interface {
	Get(personaType string) domain.PersonaProfile
}

type userService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
	catalog   PersonaCatalog
	validate  *validator.Validate
}

const tokenTTL = 24 * time.Hour

func NewUserService(
	userRepo UserRepository,
	tokenRepo TokenRepository,
	catalog PersonaCatalog,
	validate *validator.Validate,
) *userService {
	return &userService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		catalog:   catalog,
		validate:  validate,
	}
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	// Check if email already exists
	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	// Unknown persona tags are replaced with the catalog default so the
	// recommendation core never sees an unresolvable persona.
	personaType := s.catalog.Get(user.PersonaType).Type

	incomeLevel := user.IncomeLevel
	switch incomeLevel {
	case domain.IncomeLow, domain.IncomeMedium, domain.IncomeHigh:
	default:
		incomeLevel = domain.IncomeMedium
	}

	newUser := domain.User{
		Name:               user.Name,
		Email:              user.Email,
		Password:           passwordHash,
		Age:                user.Age,
		Gender:             user.Gender,
		Location:           user.Location,
		Role:               RoleCustomer,
		IncomeLevel:        incomeLevel,
		Interests:          user.Interests,
		PersonaType:        personaType,
		FavoriteCategories: user.FavoriteCategories,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, ipAddress, userAgent string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("incorrect password")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenRepo != nil {
		if err := s.tokenRepo.StoreToken(ctx, userIDStr, token, ipAddress, userAgent, tokenTTL); err != nil {
			logger.Warn("Failed to store token in redis", err)
		}
	}

	if err := s.userRepo.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn("Failed to update last login", err)
	}

	user.Password = ""
	return token, user, nil
}

func (s *userService) Logout(ctx context.Context, userID uint, token string) error {
	if s.tokenRepo == nil {
		return nil
	}
	userIDStr := strconv.FormatUint(uint64(userID), 10)
	return s.tokenRepo.DeleteToken(ctx, userIDStr, token)
}

func (s *userService) ValidateTokenFromRedis(ctx context.Context, token string) (string, error) {
	if s.tokenRepo == nil {
		return "", errors.New("token store not configured")
	}
	return s.tokenRepo.ValidateToken(ctx, token)
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) GetAllUsers(ctx context.Context, skip, limit int) ([]domain.User, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if skip < 0 {
		skip = 0
	}

	users, err := s.userRepo.FindAll(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uint, updateData *domain.User) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if updateData.Name != "" {
		user.Name = updateData.Name
	}
	if updateData.Password != "" {
		if err := s.validate.Var(updateData.Password, "min=6"); err != nil {
			return domain.User{}, errors.New("password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(updateData.Password)
		if err != nil {
			return domain.User{}, errors.New("failed to hash password")
		}
		user.Password = hash
	}
	if updateData.Age > 0 {
		user.Age = updateData.Age
	}
	if updateData.Gender != "" {
		user.Gender = updateData.Gender
	}
	if updateData.Location != "" {
		user.Location = updateData.Location
	}
	switch updateData.IncomeLevel {
	case domain.IncomeLow, domain.IncomeMedium, domain.IncomeHigh:
		user.IncomeLevel = updateData.IncomeLevel
	}
	if len(updateData.Interests) > 0 {
		user.Interests = updateData.Interests
	}
	if len(updateData.FavoriteCategories) > 0 {
		user.FavoriteCategories = updateData.FavoriteCategories
	}
	if updateData.PersonaType != "" {
		user.PersonaType = s.catalog.Get(updateData.PersonaType).Type
	}

	if err := s.userRepo.Update(ctx, &user); err != nil {
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.userRepo.Delete(ctx, id)
}
