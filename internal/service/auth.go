package service

import (
	"context"
	"fmt"
	"time"

	"fixwize-backend/internal/domain"
	"fixwize-backend/internal/logger"
	"fixwize-backend/internal/repository"
	"fixwize-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	memberRepo repository.MemberRepository
	actRepo    repository.ActivityRepository
	tokens     security.TokenManager
}

func NewAuthService(memberRepo repository.MemberRepository, actRepo repository.ActivityRepository, tokens security.TokenManager) AuthService {
	return &authService{
		memberRepo: memberRepo,
		actRepo:    actRepo,
		tokens:     tokens,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.TeamMember, string, string, error) {
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	if member.Status != domain.MemberStatusActive {
		return nil, "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(member)
	if err != nil {
		return nil, "", "", err
	}

	now := time.Now()
	if err := s.memberRepo.TouchLastActive(ctx, member.ID, now); err != nil {
		logger.Warn("Failed to update last active", "member_id", member.ID, "error", err)
	}
	member.LastActive = &now

	entry := &domain.ActivityLogEntry{
		OrgID:       member.OrgID,
		UserID:      member.ID,
		UserName:    member.Name,
		Action:      domain.ActivityActionLogin,
		Description: fmt.Sprintf("%s logged in", member.Name),
	}
	if err := s.actRepo.Create(ctx, entry); err != nil {
		logger.Warn("Failed to write login activity entry", "member_id", member.ID, "error", err)
	}

	return member, access, refresh, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", ErrInvalidToken
	}

	member, err := s.memberRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if member.Status != domain.MemberStatusActive {
		return "", "", ErrInvalidToken
	}
	return s.issueTokens(member)
}

func (s *authService) Logout(ctx context.Context, actor Actor, orgID int32) error {
	entry := &domain.ActivityLogEntry{
		OrgID:       orgID,
		UserID:      actor.ID,
		UserName:    actor.Name,
		Action:      domain.ActivityActionLogout,
		Description: fmt.Sprintf("%s logged out", actor.Name),
	}
	return s.actRepo.Create(ctx, entry)
}

func (s *authService) issueTokens(member *domain.TeamMember) (string, string, error) {
	perms := make([]string, len(member.Permissions))
	for i, p := range member.Permissions {
		perms[i] = string(p)
	}
	access, err := s.tokens.GenerateAccessToken(member.ID, member.OrgID, member.Email, member.Name, string(member.Role), perms)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(member.ID, member.Email)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}
