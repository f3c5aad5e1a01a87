package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sequemusic/backend/internal/domain"
	"github.com/sequemusic/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserReq struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	DateOfBirth time.Time
}

type AuthService struct {
	repo      domain.UserRepository
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(repo domain.UserRepository, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

func validateRegistration(req RegisterUserReq) error {
	v := domain.NewValidationError()
	if req.Name == "" {
		v.Add("name", "display name is required")
	}
	if !utils.IsValidEmail(req.Email) {
		v.Add("email", "a valid email address is required")
	}
	if len(req.Password) < 8 {
		v.Add("password", "password must be at least 8 characters")
	}
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		v.Add("phone", "phone must be 9 digits starting with 91, 92, 93 or 96")
	}
	if req.DateOfBirth.IsZero() {
		v.Add("date_of_birth", "date of birth is required")
	}
	return v.ErrOrNil()
}

// RegisterUser creates a durable account. Passwords are hashed with bcrypt;
// plaintext is never stored. New accounts start without admin or premium
// capabilities.
func (s *AuthService) RegisterUser(ctx context.Context, req RegisterUserReq) (*domain.User, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashedPass),
		Name:         req.Name,
		DateOfBirth:  req.DateOfBirth,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginUser authenticates credentials and issues a signed token carrying the
// principal's identity, role and subscription tier.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, s.jwtExpiry, user.ID, user.Name, user.IsAdmin, user.IsPremium)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
