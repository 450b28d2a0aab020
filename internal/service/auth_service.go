package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"authgate/internal/auth"
	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

const defaultRoleName = "user"

// Profile is the normalized output of a successful external OAuth exchange.
// The handshake itself happens outside this core.
type Profile struct {
	Email      string              `json:"email" binding:"required,email"`
	FirstName  string              `json:"first_name" binding:"required"`
	LastName   string              `json:"last_name" binding:"required"`
	Avatar     string              `json:"avatar"`
	Provider   models.UserProvider `json:"provider" binding:"required"`
	ProviderID string              `json:"provider_id" binding:"required"`
}

// AuthService resolves login credentials and OAuth profiles into canonical
// user records and drives token issuance.
type AuthService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	tokens     *auth.TokenService
	bcryptCost int
	logger     *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	tokens *auth.TokenService,
	bcryptCost int,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		roles:      roles,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a local account. Fails with ErrConflict when the email is
// already taken; the unique index on users.email backstops the check against
// concurrent registrations.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.User, error) {
	existing, err := s.users.FindByEmailOptional(ctx, email, repository.PrincipalOnly)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.ErrConflict
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role, err := s.ensureDefaultRole(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Provider:     models.ProviderLocal,
		Roles:        []models.Role{*role},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// ValidateLocalCredentials loads the user with roles and role permissions
// and checks the password. It returns (nil, nil) for an unknown email, an
// OAuth-only account without a password hash, and a hash mismatch alike;
// absence signals an invalid attempt and the caller decides how to respond.
func (s *AuthService) ValidateLocalCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmailOptional(ctx, email, repository.WithRolesAndPermissions)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, nil
	}
	return user, nil
}

// Login validates credentials and issues a session token. Invalid
// credentials and unknown accounts both map to ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.ValidateLocalCredentials(ctx, email, password)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", errs.ErrUnauthorized
	}
	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, token, nil
}

// ResolveOAuthProfile maps an external profile onto a canonical user.
// An existing account whose providerId is still empty is silently upgraded
// to link the OAuth identity (first link wins); otherwise the stored provider
// fields stay as they are. A new account is created with the email marked
// verified, since OAuth providers have already verified it. Repeat calls
// with the same profile are no-ops.
func (s *AuthService) ResolveOAuthProfile(ctx context.Context, profile Profile) (*models.User, error) {
	user, err := s.users.FindByEmailOptional(ctx, profile.Email, repository.WithRolesAndPermissions)
	if err != nil {
		return nil, err
	}

	if user != nil {
		if user.ProviderID == "" && profile.Provider != "" {
			user.Provider = profile.Provider
			user.ProviderID = profile.ProviderID
			if profile.Avatar != "" {
				user.Avatar = profile.Avatar
			}
			if err := s.users.Save(ctx, user); err != nil {
				return nil, err
			}
			s.logger.Info("linked oauth identity",
				zap.String("user_id", user.ID),
				zap.String("provider", string(profile.Provider)))
		}
		return user, nil
	}

	role, err := s.ensureDefaultRole(ctx)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Email:           profile.Email,
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		Avatar:          profile.Avatar,
		Provider:        profile.Provider,
		ProviderID:      profile.ProviderID,
		IsEmailVerified: true,
		Roles:           []models.Role{*role},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created from oauth profile",
		zap.String("user_id", user.ID),
		zap.String("provider", string(profile.Provider)))
	return user, nil
}

// IssueToken signs a session token for an already-resolved user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	return s.tokens.Issue(user)
}

// Refresh re-issues a token from the present database state: the user is
// reloaded by subject id so the embedded role names are fresh, never copied
// from the old token.
func (s *AuthService) Refresh(ctx context.Context, userID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID, repository.WithRoles)
	if err != nil {
		return "", err
	}
	return s.tokens.Issue(user)
}

// ensureDefaultRole fetches the "user" role, creating it lazily on first
// use. A concurrent create losing the race on the unique name index is
// resolved by re-reading.
func (s *AuthService) ensureDefaultRole(ctx context.Context) (*models.Role, error) {
	role, err := s.roles.FindByNameOptional(ctx, defaultRoleName)
	if err != nil {
		return nil, err
	}
	if role != nil {
		return role, nil
	}

	role = &models.Role{Name: defaultRoleName, Description: "Default user role", IsActive: true}
	if err := s.roles.Create(ctx, role); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return s.roles.FindByName(ctx, defaultRoleName)
		}
		return nil, err
	}
	s.logger.Info("created default role", zap.String("role_id", role.ID))
	return role, nil
}
