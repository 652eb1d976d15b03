package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smartparking/internal/db"
)

type fakeStaffRepo struct {
	staff   map[string]*db.StaffUser
	created []string
}

func (f *fakeStaffRepo) GetByEmail(email string) (*db.StaffUser, error) {
	return f.staff[email], nil
}

func (f *fakeStaffRepo) CreateStaff(email, password string) error {
	f.created = append(f.created, email)
	return nil
}

func newFakeStaffRepo(t *testing.T, email, password string) *fakeStaffRepo {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeStaffRepo{staff: map[string]*db.StaffUser{
		email: {ID: 7, Email: email, PasswordHash: string(hash)},
	}}
}

func TestLoginIssuesToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	svc := NewStaffAuthService(newFakeStaffRepo(t, "staff@example.com", "hunter2"))

	tokenString, err := svc.Login("staff@example.com", "hunter2")
	require.NoError(t, err)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("unit-test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "staff@example.com", claims["email"])
	assert.Equal(t, float64(7), claims["staff_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	svc := NewStaffAuthService(newFakeStaffRepo(t, "staff@example.com", "hunter2"))

	_, err := svc.Login("staff@example.com", "wrong")
	assert.Error(t, err)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	svc := NewStaffAuthService(&fakeStaffRepo{staff: map[string]*db.StaffUser{}})

	_, err := svc.Login("nobody@example.com", "hunter2")
	assert.Error(t, err)
}

func TestCreateStaffValidation(t *testing.T) {
	repo := &fakeStaffRepo{staff: map[string]*db.StaffUser{}}
	svc := NewStaffAuthService(repo)

	err := svc.CreateStaff("", "password")
	assert.Error(t, err)

	require.NoError(t, svc.CreateStaff("new@example.com", "password"))
	assert.Equal(t, []string{"new@example.com"}, repo.created)
}
