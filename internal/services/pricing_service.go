package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

type PricingService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db, Now: time.Now}
}

var _ wizard.PricingSaver = (*PricingService)(nil)

// AnonymousUserID is the id given to visitors who aren't signed in.
func AnonymousUserID(now time.Time) string {
	return fmt.Sprintf("anonymous_%d", now.UnixMilli())
}

// Save stores a pricing request posted directly to the API.
func (s *PricingService) Save(ctx context.Context, req *dtos.SavePricingRequest) (*models.PricingInfo, error) {
	teamSize, err := wizard.ParseTeamSize(req.TeamSize)
	if err != nil {
		return nil, models.ErrInvalidTeamSize
	}
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = AnonymousUserID(s.now())
	}
	info := &models.PricingInfo{
		UserID:        userID,
		TeamSize:      teamSize,
		RoleType:      req.RoleType,
		Roles:         req.Roles,
		Experience:    req.Experience,
		Industry:      req.Industry,
		Description:   req.Description,
		WorkplaceType: req.WorkplaceType,
		FormData:      req.FormData,
	}
	if err := s.DB.WithContext(ctx).Create(info).Error; err != nil {
		return nil, fmt.Errorf("pricing: save: %w", err)
	}
	return info, nil
}

// SavePricingInfo stores a submission confirmed in the wizard.
func (s *PricingService) SavePricingInfo(ctx context.Context, sub wizard.PricingSubmission) error {
	f := sub.Form
	if f.TeamSize < 1 || f.TeamSize > wizard.MaxTeamSize {
		return models.ErrInvalidTeamSize
	}
	if sub.UserID == "" {
		return errors.New("pricing: submission has no user id")
	}
	members := make([]models.MemberInfo, len(f.Members))
	for i, m := range f.Members {
		members[i] = models.MemberInfo{Role: m.Role, Experience: m.Experience, Workplace: m.Workplace}
	}
	info := &models.PricingInfo{
		UserID:        sub.UserID,
		TeamSize:      f.TeamSize,
		RoleType:      f.RoleType,
		Roles:         strings.Join(f.Roles(), ", "),
		Experience:    f.Experience,
		Industry:      f.Industry,
		Description:   f.Description,
		WorkplaceType: f.WorkplaceType,
		Members:       members,
		FormData:      f.Fields(),
	}
	if err := s.DB.WithContext(ctx).Create(info).Error; err != nil {
		return fmt.Errorf("pricing: save: %w", err)
	}
	return nil
}

func (s *PricingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
