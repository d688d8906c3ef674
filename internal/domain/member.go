package domain

import "time"

type MemberRole string

const (
	MemberRoleAdmin        MemberRole = "admin"
	MemberRoleManager      MemberRole = "manager"
	MemberRoleTechnician   MemberRole = "technician"
	MemberRoleReceptionist MemberRole = "receptionist"
	MemberRolePartsManager MemberRole = "parts_manager"
)

func (r MemberRole) Valid() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleManager, MemberRoleTechnician,
		MemberRoleReceptionist, MemberRolePartsManager:
		return true
	}
	return false
}

type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
	MemberStatusPending  MemberStatus = "pending"
)

type TeamMember struct {
	ID           int32        `json:"id"`
	OrgID        int32        `json:"org_id"`
	Name         string       `json:"name"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Role         MemberRole   `json:"role"`
	Permissions  []Permission `json:"permissions"`
	Status       MemberStatus `json:"status"`
	PasswordHash string       `json:"-"`
	CreatedOn    time.Time    `json:"created_on"`
	LastActive   *time.Time   `json:"last_active,omitempty"`
}
