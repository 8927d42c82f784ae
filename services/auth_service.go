package services

import (
	"errors"
	"time"

	"github.com/naolatam/SN-radio-sub000/config"
	"github.com/naolatam/SN-radio-sub000/models"
	"github.com/naolatam/SN-radio-sub000/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	CreateAccount(req models.RegisterRequest) (*models.User, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	GetTeam() ([]models.TeamMember, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register is the public signup path. The requested role is deliberately
// ignored: a self-service caller always gets the user role, except for the
// bootstrap case where the very first account becomes the admin so a fresh
// deployment can reach the admin panel. Elevated roles are granted only
// through CreateAccount behind the admin routes.
func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	role := models.RoleUser

	count, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user, err := s.createUser(req, role)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// CreateAccount provisions an account with an explicit role. Reached only
// through the admin-guarded route; this is how staff accounts are created.
func (s *authService) CreateAccount(req models.RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	return s.createUser(req, role)
}

func (s *authService) createUser(req models.RegisterRequest, role models.UserRole) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrConflict
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      role,
		AvatarURL: req.AvatarURL,
		Bio:       req.Bio,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) GetTeam() ([]models.TeamMember, error) {
	users, err := s.userRepo.GetTeam()
	if err != nil {
		return nil, err
	}

	members := make([]models.TeamMember, 0, len(users))
	for i := range users {
		members = append(members, users[i].TeamMember())
	}
	return members, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"exp":     now.Add(config.JWTExpiration).Unix(),
		"iat":     now.Unix(),
		"nbf":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
