package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

func TestProfileSetup_RoleDataAppearsAfterSetup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.givenUser(models.RoleCouple)
	f.profiles.On("CoupleByUserID", mock.Anything, user.ID).Return(nil, repository.ErrNotFound).Once()

	before, err := f.profileSvc.ResolveAuthUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, before.RoleData)

	var stored *models.Couple
	f.profiles.On("Attach", mock.Anything,
		mock.MatchedBy(func(u *models.User) bool { return u.ID == user.ID && u.Role == models.RoleCouple }),
		mock.MatchedBy(func(c *models.Couple) bool { return c.UserID == user.ID }),
	).Run(func(args mock.Arguments) {
		stored = args.Get(2).(*models.Couple)
	}).Return(nil).Once()

	profile, err := f.profileSvc.CompleteProfileSetup(ctx, user.ID, &dto.SetupProfileRequest{
		Role:       "couple",
		CoupleName: "Alex & Sam",
		Email:      "a@x.com",
	})
	require.NoError(t, err)
	couple, ok := profile.(*models.Couple)
	require.True(t, ok)
	assert.Equal(t, "Alex & Sam", couple.CoupleName)
	assert.Equal(t, "a@x.com", couple.Email)
	assert.Empty(t, couple.PartnerName)
	assert.NotEqual(t, uuid.Nil, couple.ID)

	f.profiles.On("CoupleByUserID", mock.Anything, user.ID).Return(stored, nil).Once()
	after, err := f.profileSvc.ResolveAuthUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Same(t, stored, after.RoleData)
}

func TestProfileSetup_ConsultsOnlyTheRoleTable(t *testing.T) {
	f := newFixture(t)
	user, vendor := f.givenVendor()

	auth, err := f.profileSvc.ResolveAuthUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Same(t, vendor, auth.RoleData)
	f.profiles.AssertNotCalled(t, "CoupleByUserID", mock.Anything, mock.Anything)
	f.profiles.AssertNotCalled(t, "IndividualByUserID", mock.Anything, mock.Anything)
}

func TestProfileSetup_Vendor(t *testing.T) {
	f := newFixture(t)
	user := f.givenUser(models.RoleCouple)

	f.profiles.On("Attach", mock.Anything,
		mock.MatchedBy(func(u *models.User) bool {
			return u.Role == models.RoleVendor && u.FirstName == "Lu" && u.LastName == "Ma"
		}),
		mock.Anything,
	).Return(nil).Once()

	profile, err := f.profileSvc.CompleteProfileSetup(context.Background(), user.ID, &dto.SetupProfileRequest{
		Role:         "vendor",
		FirstName:    "Lu",
		LastName:     "Ma",
		BusinessName: " Luma Photography ",
		Category:     "photography",
		Description:  "Film and digital",
		Country:      "USA",
		State:        "TX",
		City:         "Austin",
		Instagram:    "@luma",
	})
	require.NoError(t, err)

	vendor := profile.(*models.Vendor)
	assert.Equal(t, "Luma Photography", vendor.BusinessName)
	assert.Equal(t, "Photography", vendor.Category)
	assert.Equal(t, "Austin, TX, USA", vendor.Location)
	assert.Equal(t, "@luma", vendor.Instagram)
	assert.True(t, vendor.IsActive)
}

func TestProfileSetup_VendorOnboardingCategories(t *testing.T) {
	tests := map[string]string{
		"photography": "Photography",
		"catering":    "Catering",
		"venue":       "Venue",
		"music":       "Music",
		"flowers":     "Flowers & Decoration",
		"planning":    "Wedding Planning",
		"other":       "Other",
	}
	for id, name := range tests {
		t.Run(id, func(t *testing.T) {
			f := newFixture(t)
			user := f.givenUser(models.RoleCouple)
			f.profiles.On("Attach", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

			profile, err := f.profileSvc.CompleteProfileSetup(context.Background(), user.ID, &dto.SetupProfileRequest{
				Role:         "vendor",
				BusinessName: "Bloom & Co",
				Category:     id,
				Description:  "Full service",
				Country:      "USA",
				State:        "OR",
				City:         "Portland",
			})
			require.NoError(t, err)
			assert.Equal(t, name, profile.(*models.Vendor).Category)
		})
	}
}

func TestProfileSetup_VendorValidation(t *testing.T) {
	f := newFixture(t)
	user := f.givenUser(models.RoleCouple)

	_, err := f.profileSvc.CompleteProfileSetup(context.Background(), user.ID, &dto.SetupProfileRequest{
		Role:         "vendor",
		BusinessName: "Luma",
		Category:     "Astrology",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "description")
	assert.Contains(t, verr.Fields, "city")
	assert.NotContains(t, verr.Fields, "businessName")
	f.profiles.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileSetup_InvalidRole(t *testing.T) {
	f := newFixture(t)

	_, err := f.profileSvc.CompleteProfileSetup(context.Background(), uuid.New(), &dto.SetupProfileRequest{Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidRole)
	f.users.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestProfileSetup_SecondSetupConflicts(t *testing.T) {
	f := newFixture(t)
	user := f.givenUser(models.RoleCouple)
	f.profiles.On("Attach", mock.Anything, mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

	_, err := f.profileSvc.CompleteProfileSetup(context.Background(), user.ID, &dto.SetupProfileRequest{
		Role:     "individual",
		FullName: "Jordan Lee",
	})
	assert.ErrorIs(t, err, ErrProfileExists)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestProfileSetup_NameFallsBackToUserName(t *testing.T) {
	f := newFixture(t)
	user := f.givenUser(models.RoleCouple)
	f.profiles.On("Attach", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	profile, err := f.profileSvc.CompleteProfileSetup(context.Background(), user.ID, &dto.SetupProfileRequest{Role: "individual"})
	require.NoError(t, err)
	assert.Equal(t, "Alex Sam", profile.(*models.Individual).FullName)
}

func TestProfileSetup_UnknownUser(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	f.users.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

	_, err := f.profileSvc.CompleteProfileSetup(context.Background(), id, &dto.SetupProfileRequest{Role: "couple"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateConsumerProfile(t *testing.T) {
	f := newFixture(t)
	user, couple := f.givenCouple()
	f.profiles.On("Save", mock.Anything, couple).Return(nil).Once()

	profile, err := f.profileSvc.UpdateConsumerProfile(context.Background(), user.ID, &dto.UpdateConsumerProfileRequest{
		Budget:     ptr(25000.0),
		Venue:      ptr(" Lakeside Barn "),
		GuestCount: ptr(120),
	})
	require.NoError(t, err)

	updated := profile.(*models.Couple)
	assert.Equal(t, 25000.0, *updated.Budget)
	assert.Equal(t, "Lakeside Barn", updated.Venue)
	assert.Equal(t, 120, *updated.GuestCount)
	assert.Equal(t, "Alex & Sam", updated.CoupleName)
}

func TestUpdateConsumerProfile_VendorRejected(t *testing.T) {
	f := newFixture(t)
	user, _ := f.givenVendor()

	_, err := f.profileSvc.UpdateConsumerProfile(context.Background(), user.ID, &dto.UpdateConsumerProfileRequest{})
	assert.ErrorIs(t, err, ErrConsumerProfileRequired)
}

func TestResolveConsumer(t *testing.T) {
	f := newFixture(t)
	user, individual := f.givenIndividual()

	ref, err := f.profileSvc.ResolveConsumer(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ConsumerRef{Role: models.RoleIndividual, ProfileID: individual.ID, UserID: user.ID}, ref)
	assert.Equal(t, "individual_id", ref.Column())
}

func TestResolveConsumer_NoProfileYet(t *testing.T) {
	f := newFixture(t)
	user := f.givenUser(models.RoleCouple)
	f.profiles.On("CoupleByUserID", mock.Anything, user.ID).Return(nil, repository.ErrNotFound).Once()

	_, err := f.profileSvc.ResolveConsumer(context.Background(), user.ID)
	assert.ErrorIs(t, err, ErrConsumerProfileRequired)
	assert.ErrorIs(t, err, ErrNotFound)
}
