package service

import (
	"context"

	"nutrition-assistant-be/internal/dto"
	"nutrition-assistant-be/internal/entity"
	"nutrition-assistant-be/internal/pkg/apperr"
	"nutrition-assistant-be/internal/repository/specification"
	"nutrition-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	GetPreferences(ctx context.Context, userId uuid.UUID) (*dto.UserPreferencesResponse, error)
	UpdatePreferences(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.UserPreferencesResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.findUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (s *userService) GetPreferences(ctx context.Context, userId uuid.UUID) (*dto.UserPreferencesResponse, error) {
	user, err := s.findUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	prefs := user.Preferences
	if prefs == nil {
		prefs = &entity.UserPreferences{}
	}
	return preferencesToDTO(prefs), nil
}

func (s *userService) UpdatePreferences(ctx context.Context, userId uuid.UUID, req *dto.UpdatePreferencesRequest) (*dto.UserPreferencesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	prefs := &entity.UserPreferences{
		Age:                 req.Age,
		Gender:              req.Gender,
		WeightKg:            req.WeightKg,
		HeightCm:            req.HeightCm,
		ActivityLevel:       req.ActivityLevel,
		HealthGoal:          req.HealthGoal,
		DietaryRestrictions: req.DietaryRestrictions,
	}

	if err := uow.UserRepository().UpdatePreferences(ctx, userId, prefs); err != nil {
		return nil, err
	}

	return preferencesToDTO(prefs), nil
}

func (s *userService) findUser(ctx context.Context, userId uuid.UUID) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

func preferencesToDTO(prefs *entity.UserPreferences) *dto.UserPreferencesResponse {
	return &dto.UserPreferencesResponse{
		Age:                 prefs.Age,
		Gender:              prefs.Gender,
		WeightKg:            prefs.WeightKg,
		HeightCm:            prefs.HeightCm,
		ActivityLevel:       prefs.ActivityLevel,
		HealthGoal:          prefs.HealthGoal,
		DietaryRestrictions: prefs.DietaryRestrictions,
	}
}
