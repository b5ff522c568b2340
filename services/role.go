package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"aboutme/models"
	"aboutme/shared"
)

// RoleService manages role definitions and user/role memberships. Roles are
// administrative data and are hard-deleted, unlike portfolio entities.
type RoleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) *RoleService {
	return &RoleService{db: db}
}

func (s *RoleService) CreateRole(name string) *shared.Response {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.BadRequest("Role name is required.")
	}
	var n int64
	s.db.Model(&models.Role{}).Where("name = ?", name).Count(&n)
	if n > 0 {
		return shared.BadRequest("Role already exists.")
	}
	if err := s.db.Create(&models.Role{Name: name}).Error; err != nil {
		if isUniqueConstraintError(err) {
			return shared.BadRequest("Role already exists.")
		}
		return shared.Internal("failed to create role")
	}
	return shared.Created(nil, "Role created successfully.")
}

func (s *RoleService) GetAllRoles() *shared.Response {
	var roles []models.Role
	if err := s.db.Order("name").Find(&roles).Error; err != nil {
		return shared.Internal("failed to query roles")
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return shared.OK(names, "Roles retrieved successfully.")
}

func (s *RoleService) DeleteRole(name string) *shared.Response {
	var role models.Role
	if err := s.db.Where("name = ?", strings.TrimSpace(name)).First(&role).Error; err != nil {
		return shared.NotFound("Role does not exist.")
	}
	if err := s.db.Delete(&role).Error; err != nil {
		return shared.Internal("failed to delete role")
	}
	return shared.OK(nil, "Role deleted successfully.")
}

func (s *RoleService) AddUserToRole(userID, roleName string) *shared.Response {
	user, role, resp := s.userAndRole(userID, roleName)
	if resp != nil {
		return resp
	}
	if err := s.db.Model(user).Association("Roles").Append(role); err != nil {
		return shared.Internal("failed to add user to role")
	}
	return shared.OK(nil, "User added to role successfully.")
}

func (s *RoleService) RemoveUserFromRole(userID, roleName string) *shared.Response {
	user, role, resp := s.userAndRole(userID, roleName)
	if resp != nil {
		return resp
	}
	if err := s.db.Model(user).Association("Roles").Delete(role); err != nil {
		return shared.Internal("failed to remove user from role")
	}
	return shared.OK(nil, "User removed from role successfully.")
}

func (s *RoleService) userAndRole(userID, roleName string) (*models.User, *models.Role, *shared.Response) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, nil, shared.NotFound("User does not exist.")
	}
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, nil, shared.NotFound("User does not exist.")
	}
	var role models.Role
	if err := s.db.Where("name = ?", strings.TrimSpace(roleName)).First(&role).Error; err != nil {
		return nil, nil, shared.NotFound("Role does not exist.")
	}
	return &user, &role, nil
}
