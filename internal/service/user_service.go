package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

// UserPage is one page of users plus paging totals.
type UserPage struct {
	Users []models.User `json:"users"`
	Total int64         `json:"total"`
	Pages int           `json:"pages"`
}

// UserStats counts users by status.
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Banned   int64 `json:"banned"`
}

// UserUpdate is a partial profile update. Nil fields are left untouched.
// RoleIDs, when present, replaces the full role set.
type UserUpdate struct {
	FirstName *string            `json:"first_name"`
	LastName  *string            `json:"last_name"`
	Avatar    *string            `json:"avatar"`
	Status    *models.UserStatus `json:"status"`
	RoleIDs   []string           `json:"role_ids"`
}

type UserService struct {
	users  repository.UserRepository
	roles  repository.RoleRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, roles repository.RoleRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, roles: roles, logger: logger}
}

func (s *UserService) List(ctx context.Context, page, limit int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	users, total, err := s.users.FindPage(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	return &UserPage{
		Users: users,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id, repository.WithRolesAndPermissions)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.users.FindByEmail(ctx, email, repository.WithRolesAndPermissions)
}

func (s *UserService) Update(ctx context.Context, id string, update UserUpdate) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id, repository.WithRoles)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Avatar != nil {
		user.Avatar = *update.Avatar
	}
	if update.Status != nil {
		user.Status = *update.Status
	}

	if len(update.RoleIDs) > 0 {
		roles, err := s.roles.FindByIDs(ctx, update.RoleIDs)
		if err != nil {
			return nil, err
		}
		if len(roles) != len(update.RoleIDs) {
			return nil, errs.ErrNotFound
		}
		if err := s.users.ReplaceRoles(ctx, user, roles); err != nil {
			return nil, err
		}
		user.Roles = roles
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id, repository.PrincipalOnly)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, user); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return nil
}

// AssignRole attaches a role to a user. Conflict when the user already
// holds it.
func (s *UserService) AssignRole(ctx context.Context, userID, roleID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID, repository.WithRoles)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.FindByID(ctx, roleID)
	if err != nil {
		return nil, err
	}
	for _, r := range user.Roles {
		if r.ID == roleID {
			return nil, errs.ErrConflict
		}
	}
	if err := s.users.AppendRole(ctx, user, role); err != nil {
		return nil, err
	}
	user.Roles = append(user.Roles, *role)
	s.logger.Info("role assigned",
		zap.String("user_id", userID), zap.String("role", role.Name))
	return user, nil
}

func (s *UserService) RemoveRole(ctx context.Context, userID, roleID string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID, repository.WithRoles)
	if err != nil {
		return nil, err
	}
	if err := s.users.RemoveRole(ctx, user, roleID); err != nil {
		return nil, err
	}
	kept := user.Roles[:0]
	for _, r := range user.Roles {
		if r.ID != roleID {
			kept = append(kept, r)
		}
	}
	user.Roles = kept
	return user, nil
}

func (s *UserService) ChangeStatus(ctx context.Context, id string, status models.UserStatus) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id, repository.PrincipalOnly)
	if err != nil {
		return nil, err
	}
	user.Status = status
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user status changed",
		zap.String("user_id", id), zap.String("status", string(status)))
	return user, nil
}

func (s *UserService) Stats(ctx context.Context) (*UserStats, error) {
	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.users.CountByStatus(ctx, models.UserActive)
	if err != nil {
		return nil, err
	}
	inactive, err := s.users.CountByStatus(ctx, models.UserInactive)
	if err != nil {
		return nil, err
	}
	banned, err := s.users.CountByStatus(ctx, models.UserBanned)
	if err != nil {
		return nil, err
	}
	return &UserStats{Total: total, Active: active, Inactive: inactive, Banned: banned}, nil
}
