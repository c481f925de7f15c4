package usecase

import (
	"context"
	"fmt"

	"order-management/internal/data/entity"
	"order-management/internal/data/repository"
	"order-management/internal/dto/request"
	"order-management/internal/dto/response"
	"order-management/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	log *zap.Logger,
) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	users, err := s.repo.User.FindAll(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to get users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, fmt.Errorf("get users: %w", err)
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	s.log.Info("Users retrieved",
		zap.Int("count", len(users)),
		zap.Int64("total", total),
		zap.Int("page", req.Page),
	)

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		s.log.Warn("Invalid user ID format",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user by ID",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role := entity.UserRole(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	existing, err := s.repo.User.FindByPhone(ctx, req.PhoneNumber)
	if err != nil {
		s.log.Error("Failed to check phone uniqueness",
			zap.Error(err),
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user already exists: %w", repository.ErrDuplicate)
	}

	user := entity.NewUser(req.Surname, req.Name, req.Patronymic, req.PhoneNumber, req.INN, role)

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("phone_number", req.PhoneNumber),
		)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.String("user_id", user.ID.String()),
		zap.String("phone_number", user.PhoneNumber),
	)

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	role := entity.UserRole(req.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	user.Surname = req.Surname
	user.Name = req.Name
	user.Patronymic = req.Patronymic
	user.PhoneNumber = req.PhoneNumber
	user.INN = req.INN
	user.Role = role

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated", zap.String("user_id", userID))

	userResp := response.UserToResponse(user)
	return &userResp, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	// Products and customers cascade; orders block the delete.
	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted",
		zap.String("user_id", userID),
		zap.String("phone_number", user.PhoneNumber),
	)

	return nil
}
