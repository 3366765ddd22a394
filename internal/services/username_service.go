package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/models"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,20}$`)

type UsernameService struct {
	DB *gorm.DB
}

func NewUsernameService(db *gorm.DB) *UsernameService {
	return &UsernameService{DB: db}
}

// CheckUsername reports whether username is free, ignoring the account
// excludeUserID (the user renaming themselves). Usernames are stored lowercase.
func (s *UsernameService) CheckUsername(ctx context.Context, username, excludeUserID string) (bool, string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return false, "", models.ErrUsernameRequired
	}
	if !usernamePattern.MatchString(username) {
		return false, "", models.ErrInvalidUsername
	}
	normalized := strings.ToLower(username)

	q := s.DB.WithContext(ctx).Model(&models.User{}).Where("username = ?", normalized)
	if excludeUserID != "" {
		q = q.Where("id <> ?", excludeUserID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, normalized, fmt.Errorf("username: lookup: %w", err)
	}
	return n == 0, normalized, nil
}
