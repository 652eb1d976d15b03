package repository

import (
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"smartparking/internal/db"
)

type StaffAuthRepository interface {
	GetByEmail(email string) (*db.StaffUser, error)
	CreateStaff(email, password string) error
}

type staffAuthRepository struct {
	db *sql.DB
}

func NewStaffAuthRepository(database *sql.DB) StaffAuthRepository {
	return &staffAuthRepository{db: database}
}

func (r *staffAuthRepository) GetByEmail(email string) (*db.StaffUser, error) {
	var staff db.StaffUser
	err := r.db.QueryRow("SELECT id, email, password_hash FROM staff_users WHERE email = $1", email).
		Scan(&staff.ID, &staff.Email, &staff.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffAuthRepository) CreateStaff(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	query := "INSERT INTO staff_users (email, password_hash) VALUES ($1, $2)"
	_, err = r.db.Exec(query, email, string(hashedPassword))
	if err != nil {
		return err
	}
	return nil
}
