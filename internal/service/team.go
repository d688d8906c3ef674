package service

import (
	"context"
	"fmt"
	"regexp"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/logger"
	"fixwize-backend/internal/repository"
	"fixwize-backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-z0-9]{3,}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type teamService struct {
	memberRepo repository.MemberRepository
	orgRepo    repository.OrganizationRepository
	actRepo    repository.ActivityRepository
	emailSvc   EmailService
}

func NewTeamService(
	memberRepo repository.MemberRepository,
	orgRepo repository.OrganizationRepository,
	actRepo repository.ActivityRepository,
	emailSvc EmailService,
) TeamService {
	return &teamService{
		memberRepo: memberRepo,
		orgRepo:    orgRepo,
		actRepo:    actRepo,
		emailSvc:   emailSvc,
	}
}

func (s *teamService) AddMember(ctx context.Context, actor Actor, orgID int32, input MemberInput) (*domain.TeamMember, error) {
	if input.Username == "" {
		input.Username = utils.GenerateUsername(input.Name)
	}
	if err := validateMemberInput(input, true); err != nil {
		return nil, err
	}
	if existing, err := s.memberRepo.GetByUsername(ctx, orgID, input.Username); err == nil && existing != nil {
		return nil, invalidField("username", "username is already taken")
	}

	role := domain.MemberRole(input.Role)
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &domain.TeamMember{
		OrgID:        orgID,
		Name:         input.Name,
		Username:     input.Username,
		Email:        input.Email,
		Phone:        input.Phone,
		Role:         role,
		Permissions:  memberPermissions(role, input.Permissions),
		Status:       memberStatusOrDefault(input.Status),
		PasswordHash: string(hash),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	s.record(ctx, actor, orgID, domain.ActivityActionCreate,
		fmt.Sprintf("Added team member %s (%s)", member.Name, member.Role))

	if org, err := s.orgRepo.GetByID(ctx, orgID); err == nil {
		if err := s.emailSvc.SendMemberWelcome(ctx, member.Email, member.Name, member.Username, org.Name); err != nil {
			logger.Warn("Failed to send welcome email", "member_id", member.ID, "error", err)
		}
	}
	return member, nil
}

func (s *teamService) UpdateMember(ctx context.Context, actor Actor, orgID, memberID int32, input MemberInput) (*domain.TeamMember, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	if member.OrgID != orgID {
		return nil, ErrWrongOrganization
	}
	if err := validateMemberInput(input, false); err != nil {
		return nil, err
	}
	if input.Username != member.Username {
		if existing, err := s.memberRepo.GetByUsername(ctx, orgID, input.Username); err == nil && existing != nil {
			return nil, invalidField("username", "username is already taken")
		}
	}

	newRole := domain.MemberRole(input.Role)
	if newRole != member.Role {
		// A role change discards any customized permission set and starts
		// over from the new role's base set.
		member.Permissions = domain.BasePermissions(newRole)
	} else if input.Permissions != nil {
		member.Permissions = toPermissionSet(input.Permissions)
	}
	member.Role = newRole
	member.Name = input.Name
	member.Username = input.Username
	member.Email = input.Email
	member.Phone = input.Phone
	member.Status = memberStatusOrDefault(input.Status)
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		member.PasswordHash = string(hash)
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update team member: %w", err)
	}

	s.record(ctx, actor, orgID, domain.ActivityActionUpdate,
		fmt.Sprintf("Updated team member %s", member.Name))
	return member, nil
}

func (s *teamService) DeleteMember(ctx context.Context, actor Actor, orgID, memberID int32, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("failed to get team member: %w", err)
	}
	if member.OrgID != orgID {
		return ErrWrongOrganization
	}
	if err := s.memberRepo.Delete(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete team member: %w", err)
	}

	// Past activity entries referencing the member are left untouched.
	s.record(ctx, actor, orgID, domain.ActivityActionDelete,
		fmt.Sprintf("Removed team member %s", member.Name))
	return nil
}

func (s *teamService) GetMember(ctx context.Context, id int32) (*domain.TeamMember, error) {
	return s.memberRepo.GetByID(ctx, id)
}

func (s *teamService) ListMembers(ctx context.Context, orgID int32) ([]domain.TeamMember, error) {
	return s.memberRepo.ListByOrg(ctx, orgID)
}

func validateMemberInput(input MemberInput, isNew bool) error {
	if input.Name == "" {
		return invalidField("name", "name is required")
	}
	if input.Username == "" {
		return invalidField("username", "username is required")
	}
	if !usernamePattern.MatchString(input.Username) {
		return invalidField("username", "username must be at least 3 lowercase alphanumeric characters")
	}
	if input.Email == "" {
		return invalidField("email", "email is required")
	}
	if !emailPattern.MatchString(input.Email) {
		return invalidField("email", "invalid email address")
	}
	if !domain.MemberRole(input.Role).Valid() {
		return invalidField("role", "unknown role")
	}
	if isNew && input.Password == "" {
		return invalidField("password", "password is required for new members")
	}
	return nil
}

// memberPermissions resolves the permission set for a new member: the
// role's base set unless an explicit set was supplied.
func memberPermissions(role domain.MemberRole, explicit []string) []domain.Permission {
	if explicit == nil {
		return domain.BasePermissions(role)
	}
	return toPermissionSet(explicit)
}

func memberStatusOrDefault(status string) domain.MemberStatus {
	switch domain.MemberStatus(status) {
	case domain.MemberStatusActive, domain.MemberStatusInactive, domain.MemberStatusPending:
		return domain.MemberStatus(status)
	default:
		return domain.MemberStatusActive
	}
}

func toPermissionSet(values []string) []domain.Permission {
	perms := make([]domain.Permission, 0, len(values))
	for _, v := range values {
		perms = append(perms, domain.Permission(v))
	}
	return perms
}

func (s *teamService) record(ctx context.Context, actor Actor, orgID int32, action domain.ActivityAction, description string) {
	entry := &domain.ActivityLogEntry{
		OrgID:       orgID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		Action:      action,
		Description: description,
	}
	if err := s.actRepo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to write activity entry", "action", action, "error", err)
	}
}
