package services

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wedsimplify/wedsimplify-backend/internal/catalog"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository/repotest"
)

type memoryCache struct {
	mu          sync.Mutex
	entries     map[uuid.UUID]*dto.VendorDetail
	invalidated []uuid.UUID
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[uuid.UUID]*dto.VendorDetail{}}
}

func (c *memoryCache) Get(_ context.Context, id uuid.UUID) (*dto.VendorDetail, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.entries[id]
	return d, ok
}

func (c *memoryCache) Set(_ context.Context, d *dto.VendorDetail) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[d.ID] = d
}

func (c *memoryCache) Invalidate(_ context.Context, id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	c.invalidated = append(c.invalidated, id)
}

type fixture struct {
	users         *repotest.UserRepository
	tokens        *repotest.TokenRepository
	profiles      *repotest.ProfileRepository
	vendors       *repotest.VendorRepository
	inquiries     *repotest.InquiryRepository
	planning      *repotest.PlanningRepository
	calendar      *repotest.CalendarRepository
	saved         *repotest.SavedVendorRepository
	notifications *repotest.NotificationRepository
	settings      *repotest.SettingsRepository
	cache         *memoryCache

	profileSvc      *ProfileService
	vendorSvc       *VendorService
	settingsSvc     *SettingsService
	notificationSvc *NotificationService
	inquirySvc      *InquiryService
	planningSvc     *PlanningService
	calendarSvc     *CalendarService
	savedSvc        *SavedVendorService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:         &repotest.UserRepository{},
		tokens:        &repotest.TokenRepository{},
		profiles:      &repotest.ProfileRepository{},
		vendors:       &repotest.VendorRepository{},
		inquiries:     &repotest.InquiryRepository{},
		planning:      &repotest.PlanningRepository{},
		calendar:      &repotest.CalendarRepository{},
		saved:         &repotest.SavedVendorRepository{},
		notifications: &repotest.NotificationRepository{},
		settings:      &repotest.SettingsRepository{},
		cache:         newMemoryCache(),
	}
	categories := catalog.Default()
	f.profileSvc = NewProfileService(f.users, f.profiles, categories)
	f.vendorSvc = NewVendorService(f.vendors, f.profileSvc, categories, f.cache)
	f.settingsSvc = NewSettingsService(f.settings)
	f.notificationSvc = NewNotificationService(f.notifications, f.settingsSvc)
	f.inquirySvc = NewInquiryService(f.inquiries, f.profileSvc, f.vendorSvc, f.notificationSvc)
	f.planningSvc = NewPlanningService(f.planning, f.profileSvc)
	f.calendarSvc = NewCalendarService(f.calendar, f.profileSvc)
	f.savedSvc = NewSavedVendorService(f.saved, f.vendorSvc)

	t.Cleanup(func() {
		mock.AssertExpectationsForObjects(t,
			f.users, f.tokens, f.profiles, f.vendors, f.inquiries,
			f.planning, f.calendar, f.saved, f.notifications, f.settings,
		)
	})
	return f
}

func (f *fixture) givenUser(role models.Role) *models.User {
	u := &models.User{ID: uuid.New(), Email: "someone@example.com", Role: role, FirstName: "Alex", LastName: "Sam"}
	f.users.On("GetByID", mock.Anything, u.ID).Return(u, nil).Maybe()
	return u
}

func (f *fixture) givenCouple() (*models.User, *models.Couple) {
	u := f.givenUser(models.RoleCouple)
	c := &models.Couple{ID: uuid.New(), UserID: u.ID, CoupleName: "Alex & Sam"}
	f.profiles.On("CoupleByUserID", mock.Anything, u.ID).Return(c, nil).Maybe()
	return u, c
}

func (f *fixture) givenIndividual() (*models.User, *models.Individual) {
	u := f.givenUser(models.RoleIndividual)
	i := &models.Individual{ID: uuid.New(), UserID: u.ID, FullName: "Jordan Lee"}
	f.profiles.On("IndividualByUserID", mock.Anything, u.ID).Return(i, nil).Maybe()
	return u, i
}

func (f *fixture) givenVendor() (*models.User, *models.Vendor) {
	u := f.givenUser(models.RoleVendor)
	v := &models.Vendor{
		ID:           uuid.New(),
		UserID:       u.ID,
		BusinessName: "Luma Photography",
		Category:     "Photography",
		IsActive:     true,
	}
	f.profiles.On("VendorByUserID", mock.Anything, u.ID).Return(v, nil).Maybe()
	f.vendors.On("GetByID", mock.Anything, v.ID).Return(v, nil).Maybe()
	return u, v
}

// alertsOn makes userID fall back to default settings, which have inquiry alerts on.
func (f *fixture) alertsOn(userID uuid.UUID) {
	f.settings.On("Get", mock.Anything, userID).Return(nil, repository.ErrNotFound).Maybe()
}

func ptr[T any](v T) *T { return &v }
