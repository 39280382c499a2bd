package services

import (
	"errors"
	"strings"
	"time"

	"grillpos/entity"
	"grillpos/repository"
	"grillpos/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles employee login. Accounts are provisioned by a manager
// (or the seed), not self-registered.
type AuthService struct {
	empRepo   *repository.EmployeeRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.EmployeeRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{empRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Login(email, password string) (string, *entity.Employee, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	emp, err := s.empRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(emp.ID, emp.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, emp, nil
}

func (s *AuthService) GetProfile(employeeID uint) (*entity.Employee, error) {
	return s.empRepo.FindByID(employeeID)
}
