package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"smartparking/internal/repository"
)

type StaffAuthService interface {
	Login(email, password string) (string, error)
	CreateStaff(email, password string) error
}

type staffAuthService struct {
	repo repository.StaffAuthRepository
}

func NewStaffAuthService(repo repository.StaffAuthRepository) StaffAuthService {
	return &staffAuthService{repo: repo}
}

func (s *staffAuthService) Login(email, password string) (string, error) {
	staff, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if staff == nil {
		return "", errors.New("invalid credentials")
	}

	err = bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password))
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"staff_id": staff.ID,
		"email":    staff.Email,
		"exp":      time.Now().Add(time.Hour * 1).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *staffAuthService) CreateStaff(email, password string) error {
	if email == "" || password == "" {
		return errors.New("email and password cannot be empty")
	}
	return s.repo.CreateStaff(email, password)
}
