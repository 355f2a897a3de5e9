package models

import (
	"strings"
	"time"

	"github.com/mmdatafocus/smartpos_backend/utils"
)

type Organization struct {
	Id        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerId   string    `json:"ownerId"`
	Plan      Plan      `json:"plan"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o Organization) GetId() string { return o.Id }

type User struct {
	Id             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           Role   `json:"role"`
	OrganizationId string `json:"organizationId"`
	Image          string `json:"image,omitempty"`
}

func (u User) GetId() string { return u.Id }

func (u User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

type NewRegistration struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	OrganizationName string `json:"organizationName" validate:"required"`
}

// Build creates the organization and its owning admin.
func (input *NewRegistration) Build(now time.Time) (Organization, User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.OrganizationName = strings.TrimSpace(input.OrganizationName)
	if err := utils.ValidateStruct(input); err != nil {
		return Organization{}, User{}, err
	}

	userId := utils.NewId()
	org := Organization{
		Id:        utils.NewId(),
		Name:      input.OrganizationName,
		Slug:      utils.Slugify(input.OrganizationName),
		OwnerId:   userId,
		Plan:      PlanFree,
		CreatedAt: now,
	}
	user := User{
		Id:             userId,
		Email:          input.Email,
		Name:           input.Name,
		Role:           RoleAdmin,
		OrganizationId: org.Id,
	}
	return org, user, nil
}
