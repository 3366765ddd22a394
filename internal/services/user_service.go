package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

// Sync outcomes.
const (
	SyncCreated = "created"
	SyncUpdated = "updated"
)

// UserService keeps the BPOC users table in step with the auth provider and
// applies profile edits.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Sync creates or refreshes the user described by req. Names are
// capitalized; a missing first name falls back to the email's local part and
// a missing full name to the email.
func (s *UserService) Sync(ctx context.Context, req *dtos.SyncUserRequest) (*models.User, string, error) {
	id := strings.TrimSpace(req.ID)
	email := strings.TrimSpace(req.Email)
	if id == "" || email == "" {
		return nil, "", models.ErrMissingUserFields
	}
	birthday, err := parseDate(req.Birthday)
	if err != nil {
		return nil, "", err
	}

	var user models.User
	action := SyncUpdated
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&user, "id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			action = SyncCreated
			user = models.User{ID: id}
		case err != nil:
			return err
		}

		user.Email = email
		user.FirstName = wizard.TitleCase(req.FirstName)
		if user.FirstName == "" {
			user.FirstName, _, _ = strings.Cut(email, "@")
		}
		user.LastName = wizard.TitleCase(req.LastName)
		user.FullName = wizard.TitleCase(req.FullName)
		if user.FullName == "" {
			user.FullName = email
		}
		user.Location = req.Location
		user.AvatarURL = req.AvatarURL
		user.Phone = req.Phone
		user.Bio = req.Bio
		user.Position = req.Position
		user.Company = req.Company
		user.Birthday = birthday
		user.Gender = req.Gender
		user.AdminLevel = orDefault(req.AdminLevel, models.AdminLevelUser)
		// A completed profile stays completed.
		if !user.CompletedData && req.CompletedData != nil {
			user.CompletedData = *req.CompletedData
		}

		if action == SyncCreated {
			return tx.Create(&user).Error
		}
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, "", fmt.Errorf("users: sync %s: %w", id, err)
	}
	log.Info().Str("user", id).Str("action", action).Str("admin_level", user.AdminLevel).Msg("user synced")
	return &user, action, nil
}

// UpdateProfile overwrites the non-empty fields of req on the user.
// Setting a username also sets the profile slug.
func (s *UserService) UpdateProfile(ctx context.Context, req *dtos.UpdateProfileRequest) (*models.User, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, models.ErrUserIDRequired
	}
	updates := map[string]any{}
	set := func(col, v string) {
		if v = strings.TrimSpace(v); v != "" {
			updates[col] = v
		}
	}
	set("first_name", req.FirstName)
	set("last_name", req.LastName)
	set("full_name", req.FullName)
	set("location", req.Location)
	set("position", req.Position)
	set("gender", req.Gender)
	set("gender_custom", req.GenderCustom)
	if u := strings.TrimSpace(req.Username); u != "" {
		if !usernamePattern.MatchString(u) {
			return nil, models.ErrInvalidUsername
		}
		updates["username"] = strings.ToLower(u)
		updates["slug"] = strings.ToLower(u)
	}
	birthday, err := parseDate(req.Birthday)
	if err != nil {
		return nil, err
	}
	if birthday != nil {
		updates["birthday"] = *birthday
	}

	var user models.User
	if err := updateRow(ctx, s.DB, &user, "id = ?", req.UserID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("users: update profile: %w", err)
	}
	return &user, nil
}

// UpdateWorkStatus overwrites the non-empty fields of req on the user's
// work status row.
func (s *UserService) UpdateWorkStatus(ctx context.Context, req *dtos.UpdateWorkStatusRequest) (*models.WorkStatus, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, models.ErrUserIDRequired
	}
	updates := map[string]any{}
	set := func(col, v string) {
		if v = strings.TrimSpace(v); v != "" {
			updates[col] = v
		}
	}
	set("current_employer", req.CurrentEmployer)
	set("current_position", req.CurrentPosition)
	set("current_salary", string(req.CurrentSalary))
	set("current_mood", req.CurrentMood)
	set("work_status", req.WorkStatus)
	set("preferred_shift", req.PreferredShift)
	set("expected_salary", string(req.ExpectedSalary))
	set("minimum_salary_range", string(req.ExpectedSalaryMin))
	set("maximum_salary_range", string(req.ExpectedSalaryMax))
	set("work_setup", req.WorkSetup)
	if req.NoticePeriodDays > 0 {
		updates["notice_period_days"] = req.NoticePeriodDays
	}

	var ws models.WorkStatus
	if err := updateRow(ctx, s.DB, &ws, "user_id = ?", req.UserID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrWorkStatusNotFound
		}
		return nil, fmt.Errorf("users: update work status: %w", err)
	}
	return &ws, nil
}

// updateRow loads the row matching where into dst, applies updates and
// reloads it. A missing row is gorm.ErrRecordNotFound.
func updateRow(ctx context.Context, db *gorm.DB, dst any, where string, key string, updates map[string]any) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(dst, where, key).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(dst).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(dst, where, key).Error
	})
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.DateOnly, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, models.ErrInvalidDate
}
