package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justsurfingit/maya-pricing/internal/database/dbtest"
	"github.com/justsurfingit/maya-pricing/internal/dtos"
	"github.com/justsurfingit/maya-pricing/internal/models"
	"github.com/justsurfingit/maya-pricing/internal/wizard"
)

func TestSaveAssignsAnonymousUser(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewPricingService(db)
	svc.Now = func() time.Time { return time.UnixMilli(1741942800000) }

	info, err := svc.Save(context.Background(), &dtos.SavePricingRequest{
		TeamSize: " 3 ", RoleType: "same", Roles: "Accountant", Experience: "mid", Industry: "Finance",
	})
	require.NoError(t, err)
	assert.Equal(t, "anonymous_1741942800000", info.UserID)
	assert.Equal(t, 3, info.TeamSize)
	assert.NotZero(t, info.ID)

	var n int64
	require.NoError(t, db.Model(&models.PricingInfo{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestSaveRejectsBadTeamSize(t *testing.T) {
	svc := NewPricingService(dbtest.Open(t))
	for _, raw := range []string{"", "abc", "0", "-2", "101", "9999999999999"} {
		_, err := svc.Save(context.Background(), &dtos.SavePricingRequest{TeamSize: raw})
		assert.ErrorIs(t, err, models.ErrInvalidTeamSize, raw)
	}
}

func TestSavePricingInfoStoresMembers(t *testing.T) {
	db := dbtest.Open(t)
	svc := NewPricingService(db)
	form := wizard.FormData{
		TeamSize:        2,
		RoleType:        wizard.RoleTypeDifferent,
		Industry:        "Tech",
		ExperienceSetup: wizard.AnswerNo,
		Description:     wizard.NotProvided,
		WorkplaceSetup:  wizard.AnswerYes,
		WorkplaceType:   wizard.WorkplaceHybrid,
		Members: []wizard.Member{
			{Role: "Dev", Experience: "entry"},
			{Role: "QA", Experience: "senior"},
		},
	}

	require.NoError(t, svc.SavePricingInfo(context.Background(), wizard.PricingSubmission{UserID: "user-1", Form: form}))
	// Repeat submissions are kept as separate rows.
	require.NoError(t, svc.SavePricingInfo(context.Background(), wizard.PricingSubmission{UserID: "user-1", Form: form}))

	var rows []models.PricingInfo
	require.NoError(t, db.Order("id").Find(&rows).Error)
	require.Len(t, rows, 2)
	got := rows[0]
	assert.Equal(t, "Dev, QA", got.Roles)
	assert.Equal(t, []models.MemberInfo{{Role: "Dev", Experience: "entry"}, {Role: "QA", Experience: "senior"}}, got.Members)
	assert.Equal(t, "senior", got.FormData["member2Experience"])
	assert.Equal(t, "hybrid", got.WorkplaceType)
}

func TestSavePricingInfoValidates(t *testing.T) {
	svc := NewPricingService(dbtest.Open(t))
	err := svc.SavePricingInfo(context.Background(), wizard.PricingSubmission{UserID: "u"})
	assert.ErrorIs(t, err, models.ErrInvalidTeamSize)

	err = svc.SavePricingInfo(context.Background(), wizard.PricingSubmission{UserID: "u", Form: wizard.FormData{TeamSize: wizard.MaxTeamSize + 1}})
	assert.ErrorIs(t, err, models.ErrInvalidTeamSize)

	err = svc.SavePricingInfo(context.Background(), wizard.PricingSubmission{Form: wizard.FormData{TeamSize: 1}})
	assert.Error(t, err)
}
