// Package seed provisions the baseline permission catalog, roles, and
// bootstrap accounts. Run is idempotent: upserts create absent rows and
// leave existing rows untouched, junction links are inserted only when the
// pair is missing, and duplicate-key failures from a concurrent run are
// treated as already seeded. It is expected to run single-threaded at
// startup before traffic is accepted.
package seed

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"authgate/internal/auth"
	"authgate/internal/errs"
	"authgate/internal/models"
	"authgate/internal/repository"
)

// catalog is the fixed, versioned permission set. Names always equal
// resource:action.
var catalog = []models.Permission{
	{Name: "user:create", Description: "Create users", Resource: "user", Action: "create"},
	{Name: "user:read", Description: "Read users", Resource: "user", Action: "read"},
	{Name: "user:update", Description: "Update users", Resource: "user", Action: "update"},
	{Name: "user:delete", Description: "Delete users", Resource: "user", Action: "delete"},

	{Name: "role:create", Description: "Create roles", Resource: "role", Action: "create"},
	{Name: "role:read", Description: "Read roles", Resource: "role", Action: "read"},
	{Name: "role:update", Description: "Update roles", Resource: "role", Action: "update"},
	{Name: "role:delete", Description: "Delete roles", Resource: "role", Action: "delete"},

	{Name: "permission:create", Description: "Create permissions", Resource: "permission", Action: "create"},
	{Name: "permission:read", Description: "Read permissions", Resource: "permission", Action: "read"},
	{Name: "permission:update", Description: "Update permissions", Resource: "permission", Action: "update"},
	{Name: "permission:delete", Description: "Delete permissions", Resource: "permission", Action: "delete"},

	{Name: "admin:access", Description: "Access admin panel", Resource: "admin", Action: "access"},
	{Name: "admin:manage", Description: "Full admin management", Resource: "admin", Action: "manage"},
}

// The "user" role gets read/update on the user resource; "super-admin" gets
// the full catalog; "admin" gets everything except permission management.
var userRolePerms = []string{"user:read", "user:update"}

var adminExcluded = map[string]bool{
	"permission:create": true,
	"permission:update": true,
	"permission:delete": true,
}

type bootstrapAccount struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

var bootstrapAccounts = []bootstrapAccount{
	{Email: "user@example.com", Password: "password123", FirstName: "Regular", LastName: "User", Role: "user"},
	{Email: "admin@example.com", Password: "admin123", FirstName: "Admin", LastName: "User", Role: "admin"},
	{Email: "superadmin@example.com", Password: "superadmin123", FirstName: "Super", LastName: "Admin", Role: "super-admin"},
}

type Seeder struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	perms      repository.PermissionRepository
	links      repository.LinkRepository
	bcryptCost int
	logger     *zap.Logger
}

func New(users repository.UserRepository, roles repository.RoleRepository,
	perms repository.PermissionRepository, links repository.LinkRepository,
	bcryptCost int, logger *zap.Logger) *Seeder {
	return &Seeder{users: users, roles: roles, perms: perms, links: links, bcryptCost: bcryptCost, logger: logger}
}

func (s *Seeder) Run(ctx context.Context) error {
	permIDs, err := s.seedPermissions(ctx)
	if err != nil {
		return fmt.Errorf("seed permissions: %w", err)
	}
	roleIDs, err := s.seedRoles(ctx)
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := s.linkRolePermissions(ctx, roleIDs, permIDs); err != nil {
		return fmt.Errorf("link role permissions: %w", err)
	}
	if err := s.seedUsers(ctx, roleIDs); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	s.logger.Info("seeding completed",
		zap.Int("permissions", len(permIDs)), zap.Int("roles", len(roleIDs)))
	return nil
}

// seedPermissions upserts the catalog by unique name. Existing rows are
// never overwritten.
func (s *Seeder) seedPermissions(ctx context.Context) (map[string]string, error) {
	ids := make(map[string]string, len(catalog))
	for _, p := range catalog {
		existing, err := s.perms.FindByNameOptional(ctx, p.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids[existing.Name] = existing.ID
			continue
		}
		perm := p
		perm.IsActive = true
		if err := s.perms.Create(ctx, &perm); err != nil {
			if isAlreadySeeded(err) {
				if existing, err = s.perms.FindByName(ctx, p.Name); err == nil {
					ids[existing.Name] = existing.ID
					continue
				}
			}
			return nil, err
		}
		ids[perm.Name] = perm.ID
		s.logger.Info("created permission", zap.String("name", perm.Name))
	}
	return ids, nil
}

func (s *Seeder) seedRoles(ctx context.Context) (map[string]string, error) {
	defs := []models.Role{
		{Name: "user", Description: "Default user role"},
		{Name: "admin", Description: "Administrator role with elevated permissions"},
		{Name: "super-admin", Description: "Super administrator with full access"},
	}

	ids := make(map[string]string, len(defs))
	for _, d := range defs {
		existing, err := s.roles.FindByNameOptional(ctx, d.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			ids[existing.Name] = existing.ID
			continue
		}
		role := d
		role.IsActive = true
		if err := s.roles.Create(ctx, &role); err != nil {
			if isAlreadySeeded(err) {
				if existing, err = s.roles.FindByName(ctx, d.Name); err == nil {
					ids[existing.Name] = existing.ID
					continue
				}
			}
			return nil, err
		}
		ids[role.Name] = role.ID
		s.logger.Info("created role", zap.String("name", role.Name))
	}
	return ids, nil
}

// linkRolePermissions inserts missing role->permission pairs. Existing pairs
// are read as a set first so re-runs insert nothing; a duplicate-key error
// from a concurrent seeder is tolerated.
func (s *Seeder) linkRolePermissions(ctx context.Context, roleIDs, permIDs map[string]string) error {
	have, err := s.links.RolePermissionPairs(ctx)
	if err != nil {
		return err
	}

	wanted := map[string][]string{
		"user":        userRolePerms,
		"admin":       {},
		"super-admin": {},
	}
	for _, p := range catalog {
		wanted["super-admin"] = append(wanted["super-admin"], p.Name)
		if !adminExcluded[p.Name] {
			wanted["admin"] = append(wanted["admin"], p.Name)
		}
	}

	for roleName, permNames := range wanted {
		roleID, ok := roleIDs[roleName]
		if !ok {
			continue
		}
		for _, permName := range permNames {
			permID, ok := permIDs[permName]
			if !ok {
				continue
			}
			if have[repository.PairKey(roleID, permID)] {
				continue
			}
			if err := s.links.CreateRolePermission(ctx, roleID, permID); err != nil && !isAlreadySeeded(err) {
				return err
			}
		}
	}
	return nil
}

// seedUsers creates a bootstrap account per baseline role, only when no user
// with that email exists yet.
func (s *Seeder) seedUsers(ctx context.Context, roleIDs map[string]string) error {
	have, err := s.links.UserRolePairs(ctx)
	if err != nil {
		return err
	}

	for _, acct := range bootstrapAccounts {
		existing, err := s.users.FindByEmailOptional(ctx, acct.Email, repository.PrincipalOnly)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		hash, err := auth.HashPassword(acct.Password, s.bcryptCost)
		if err != nil {
			return err
		}
		user := &models.User{
			Email:           acct.Email,
			PasswordHash:    hash,
			FirstName:       acct.FirstName,
			LastName:        acct.LastName,
			Provider:        models.ProviderLocal,
			IsEmailVerified: true,
		}
		if err := s.users.Create(ctx, user); err != nil {
			if isAlreadySeeded(err) {
				continue
			}
			return err
		}

		roleID, ok := roleIDs[acct.Role]
		if !ok || have[repository.PairKey(user.ID, roleID)] {
			continue
		}
		if err := s.links.CreateUserRole(ctx, user.ID, roleID); err != nil && !isAlreadySeeded(err) {
			return err
		}
		s.logger.Info("created bootstrap user",
			zap.String("email", acct.Email), zap.String("role", acct.Role))
	}
	return nil
}

// isAlreadySeeded treats a duplicate-key failure as a concurrent seeder
// having won the race. MySQL reports duplicates as error 1062.
func isAlreadySeeded(err error) bool {
	if errors.Is(err, errs.ErrConflict) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "duplicate entry")
}
