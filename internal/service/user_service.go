package service

import (
	"database/sql"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/magnetmantra/magnet_api/internal/catalog"
	"github.com/magnetmantra/magnet_api/internal/models"
	"github.com/magnetmantra/magnet_api/internal/repository"
	"github.com/magnetmantra/magnet_api/internal/utils"
)

// UserStore is the gateway surface account management needs.
type UserStore interface {
	List(filter *repository.UserFilter) (*repository.UserPage, error)
	GetByID(id int) (*models.User, error)
	Create(user *models.User) error
	UpdateRole(id int, role models.UserRole) error
}

// UserService implements the back-office account operations.
type UserService struct {
	users UserStore
}

// NewUserService constructs a UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// ListUsersQuery carries admin account list options.
type ListUsersQuery struct {
	Role   models.UserRole
	Search string
	Page   int
}

// ListUsers returns one admin page; the role filter maps to a gateway
// predicate, search refines the fetched page in memory.
func (s *UserService) ListUsers(q *ListUsersQuery) (*repository.UserPage, error) {
	if q.Role != "" && !models.ValidUserRole(q.Role) {
		return nil, utils.ErrInvalidRole
	}
	page, err := s.users.List(&repository.UserFilter{
		Role:  q.Role,
		Page:  q.Page,
		Limit: adminPageSize,
	})
	if err != nil {
		return nil, err
	}
	page.Users = catalog.FilterUsers(page.Users, q.Search)
	return page, nil
}

// GetUser returns one account.
func (s *UserService) GetUser(id int) (*models.User, error) {
	u, err := s.users.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// CreateUserInput is the admin account creation payload.
type CreateUserInput struct {
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=8"`
	Role     models.UserRole `json:"role"`
}

// CreateUser hashes the password and inserts the account.
func (s *UserService) CreateUser(in *CreateUserInput) (*models.User, error) {
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if !models.ValidUserRole(in.Role) {
		return nil, utils.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// ToggleRole flips USER <-> ADMIN via a single role-only update; every
// other column of the record is untouched.
func (s *UserService) ToggleRole(id int) (*models.User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	next := models.RoleAdmin
	if u.Role == models.RoleAdmin {
		next = models.RoleUser
	}
	if err := s.users.UpdateRole(id, next); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		return nil, err
	}
	u.Role = next
	return u, nil
}
