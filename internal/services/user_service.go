package services

import (
	"context"
	"fmt"

	"github.com/learnspace/content-service/internal/auth"
	"github.com/learnspace/content-service/internal/models"
	"github.com/learnspace/content-service/internal/repositories"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

// LoginResponse is the token envelope returned on successful login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

// UserService owns accounts, roles and groups, plus authentication.
type UserService struct {
	repo      repositories.Repository
	validator *validator.Validator
	logger    utils.Logger
	tokens    *auth.TokenManager
}

func NewUserService(repo repositories.Repository, v *validator.Validator, logger utils.Logger, tokens *auth.TokenManager) *UserService {
	return &UserService{
		repo:      repo,
		validator: v,
		logger:    logger,
		tokens:    tokens,
	}
}

// Login verifies credentials and issues an access token. A missing user and a
// wrong password return the same error.
func (s *UserService) Login(ctx context.Context, req *validator.LoginRequest) (*LoginResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.repo.User().GetByUsername(ctx, req.Username)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.Name
	}

	token, err := s.tokens.Issue(user.ID, user.Username, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

// VerifyToken resolves a bearer token to its claims.
func (s *UserService) VerifyToken(tokenString string) (*auth.Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

func (s *UserService) CreateUser(ctx context.Context, req *validator.UserCreateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Role().GetByID(ctx, req.RoleID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, NewReferenceError("role", req.RoleID)
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		RoleID:       req.RoleID,
		FullName:     req.FullName,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.User().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req *validator.UserUpdateRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if req.RoleID != nil {
		if _, err := s.repo.Role().GetByID(ctx, *req.RoleID); err != nil {
			if repositories.IsNotFoundError(err) {
				return nil, NewReferenceError("role", *req.RoleID)
			}
			return nil, fmt.Errorf("failed to get role: %w", err)
		}
		user.RoleID = *req.RoleID
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}

	if err := s.repo.User().Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if err := s.repo.User().Delete(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// ===== GROUPS =====

func (s *UserService) CreateGroup(ctx context.Context, name string) (*models.Group, error) {
	group := &models.Group{Name: name}
	if errs := s.validator.Validate(group); len(errs) > 0 {
		return nil, errs
	}

	if err := s.repo.Group().Create(ctx, group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return group, nil
}

func (s *UserService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.repo.Group().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

func (s *UserService) AddGroupMember(ctx context.Context, groupID, userID uint) error {
	if _, err := s.repo.Group().GetByID(ctx, groupID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrGroupNotFound
		}
		return fmt.Errorf("failed to get group: %w", err)
	}
	if _, err := s.GetUser(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.Group().AddMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to add group member: %w", err)
	}
	return nil
}

func (s *UserService) RemoveGroupMember(ctx context.Context, groupID, userID uint) error {
	if err := s.repo.Group().RemoveMember(ctx, groupID, userID); err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	return nil
}

func (s *UserService) ListGroupMembers(ctx context.Context, groupID uint) ([]models.User, error) {
	if _, err := s.repo.Group().GetByID(ctx, groupID); err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := s.repo.Group().ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group members: %w", err)
	}
	return members, nil
}
