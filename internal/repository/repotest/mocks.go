// Package repotest provides testify mocks of the repository interfaces.
package repotest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

var (
	_ repository.UserRepository         = (*UserRepository)(nil)
	_ repository.TokenRepository        = (*TokenRepository)(nil)
	_ repository.ProfileRepository      = (*ProfileRepository)(nil)
	_ repository.VendorRepository       = (*VendorRepository)(nil)
	_ repository.InquiryRepository      = (*InquiryRepository)(nil)
	_ repository.PlanningRepository     = (*PlanningRepository)(nil)
	_ repository.CalendarRepository     = (*CalendarRepository)(nil)
	_ repository.SavedVendorRepository  = (*SavedVendorRepository)(nil)
	_ repository.NotificationRepository = (*NotificationRepository)(nil)
	_ repository.SettingsRepository     = (*SettingsRepository)(nil)
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type TokenRepository struct {
	mock.Mock
}

func (m *TokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *TokenRepository) FindActive(ctx context.Context, hash string) (*models.RefreshToken, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *TokenRepository) Revoke(ctx context.Context, hash string) (bool, error) {
	args := m.Called(ctx, hash)
	return args.Bool(0), args.Error(1)
}

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) CoupleByUserID(ctx context.Context, userID uuid.UUID) (*models.Couple, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Couple), args.Error(1)
}

func (m *ProfileRepository) IndividualByUserID(ctx context.Context, userID uuid.UUID) (*models.Individual, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Individual), args.Error(1)
}

func (m *ProfileRepository) VendorByUserID(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *ProfileRepository) Attach(ctx context.Context, user *models.User, profile models.Profile) error {
	return m.Called(ctx, user, profile).Error(0)
}

func (m *ProfileRepository) Save(ctx context.Context, profile models.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type VendorRepository struct {
	mock.Mock
}

func (m *VendorRepository) Search(ctx context.Context, f repository.VendorFilter) ([]models.Vendor, int64, error) {
	args := m.Called(ctx, f)
	vendors, _ := args.Get(0).([]models.Vendor)
	return vendors, args.Get(1).(int64), args.Error(2)
}

func (m *VendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vendor), args.Error(1)
}

func (m *VendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return m.Called(ctx, vendor).Error(0)
}

func (m *VendorRepository) ListPackages(ctx context.Context, vendorID uuid.UUID, activeOnly bool) ([]models.VendorPackage, error) {
	args := m.Called(ctx, vendorID, activeOnly)
	packages, _ := args.Get(0).([]models.VendorPackage)
	return packages, args.Error(1)
}

func (m *VendorRepository) GetPackage(ctx context.Context, vendorID, id uuid.UUID) (*models.VendorPackage, error) {
	args := m.Called(ctx, vendorID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VendorPackage), args.Error(1)
}

func (m *VendorRepository) CreatePackage(ctx context.Context, pkg *models.VendorPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *VendorRepository) UpdatePackage(ctx context.Context, pkg *models.VendorPackage) error {
	return m.Called(ctx, pkg).Error(0)
}

func (m *VendorRepository) ListPortfolio(ctx context.Context, vendorID uuid.UUID) ([]models.PortfolioItem, error) {
	args := m.Called(ctx, vendorID)
	items, _ := args.Get(0).([]models.PortfolioItem)
	return items, args.Error(1)
}

func (m *VendorRepository) CreatePortfolioItem(ctx context.Context, item *models.PortfolioItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *VendorRepository) DeletePortfolioItem(ctx context.Context, vendorID, id uuid.UUID) error {
	return m.Called(ctx, vendorID, id).Error(0)
}

type InquiryRepository struct {
	mock.Mock
}

func (m *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func (m *InquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *InquiryRepository) ListByConsumer(ctx context.Context, ref models.ConsumerRef) ([]models.Inquiry, error) {
	args := m.Called(ctx, ref)
	list, _ := args.Get(0).([]models.Inquiry)
	return list, args.Error(1)
}

func (m *InquiryRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]models.Inquiry, error) {
	args := m.Called(ctx, vendorID)
	list, _ := args.Get(0).([]models.Inquiry)
	return list, args.Error(1)
}

func (m *InquiryRepository) Respond(ctx context.Context, id uuid.UUID, status models.InquiryStatus, response string, at time.Time) error {
	return m.Called(ctx, id, status, response, at).Error(0)
}

type PlanningRepository struct {
	mock.Mock
}

func (m *PlanningRepository) ListBudget(ctx context.Context, owner models.ConsumerRef) ([]models.BudgetItem, error) {
	args := m.Called(ctx, owner)
	items, _ := args.Get(0).([]models.BudgetItem)
	return items, args.Error(1)
}

func (m *PlanningRepository) GetBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.BudgetItem, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BudgetItem), args.Error(1)
}

func (m *PlanningRepository) CreateBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *PlanningRepository) UpdateBudgetItem(ctx context.Context, item *models.BudgetItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *PlanningRepository) DeleteBudgetItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error {
	return m.Called(ctx, owner, id).Error(0)
}

func (m *PlanningRepository) ListTimeline(ctx context.Context, owner models.ConsumerRef) ([]models.TimelineItem, error) {
	args := m.Called(ctx, owner)
	items, _ := args.Get(0).([]models.TimelineItem)
	return items, args.Error(1)
}

func (m *PlanningRepository) GetTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) (*models.TimelineItem, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimelineItem), args.Error(1)
}

func (m *PlanningRepository) CreateTimelineItem(ctx context.Context, item *models.TimelineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *PlanningRepository) UpdateTimelineItem(ctx context.Context, item *models.TimelineItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *PlanningRepository) DeleteTimelineItem(ctx context.Context, owner models.ConsumerRef, id uuid.UUID) error {
	return m.Called(ctx, owner, id).Error(0)
}

type CalendarRepository struct {
	mock.Mock
}

func (m *CalendarRepository) List(ctx context.Context, vendorID uuid.UUID, from, to *time.Time) ([]models.VendorAvailability, error) {
	args := m.Called(ctx, vendorID, from, to)
	days, _ := args.Get(0).([]models.VendorAvailability)
	return days, args.Error(1)
}

func (m *CalendarRepository) ListBooked(ctx context.Context, vendorID uuid.UUID) ([]models.VendorAvailability, error) {
	args := m.Called(ctx, vendorID)
	days, _ := args.Get(0).([]models.VendorAvailability)
	return days, args.Error(1)
}

func (m *CalendarRepository) Upsert(ctx context.Context, day *models.VendorAvailability) error {
	return m.Called(ctx, day).Error(0)
}

type SavedVendorRepository struct {
	mock.Mock
}

func (m *SavedVendorRepository) Save(ctx context.Context, userID, vendorID uuid.UUID) (*models.SavedVendor, error) {
	args := m.Called(ctx, userID, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SavedVendor), args.Error(1)
}

func (m *SavedVendorRepository) List(ctx context.Context, userID uuid.UUID) ([]models.SavedVendor, error) {
	args := m.Called(ctx, userID)
	saved, _ := args.Get(0).([]models.SavedVendor)
	return saved, args.Error(1)
}

func (m *SavedVendorRepository) Delete(ctx context.Context, userID, vendorID uuid.UUID) error {
	return m.Called(ctx, userID, vendorID).Error(0)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *NotificationRepository) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]models.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit)
	list, _ := args.Get(0).([]models.Notification)
	return list, args.Error(1)
}

func (m *NotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type SettingsRepository struct {
	mock.Mock
}

func (m *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

func (m *SettingsRepository) Upsert(ctx context.Context, settings *models.UserSettings) error {
	return m.Called(ctx, settings).Error(0)
}
