package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/wedsimplify/wedsimplify-backend/internal/dto"
	"github.com/wedsimplify/wedsimplify-backend/internal/models"
	"github.com/wedsimplify/wedsimplify-backend/internal/repository"
)

// CategoryCatalog resolves a vendor category to its canonical name.
type CategoryCatalog interface {
	Lookup(name string) (dto.Category, bool)
	All() []dto.Category
}

// AuthUser is the user row plus the profile matching its role, if any.
type AuthUser struct {
	*models.User
	RoleData models.Profile
}

type ProfileService struct {
	users      repository.UserRepository
	profiles   repository.ProfileRepository
	categories CategoryCatalog
}

func NewProfileService(users repository.UserRepository, profiles repository.ProfileRepository, categories CategoryCatalog) *ProfileService {
	return &ProfileService{users: users, profiles: profiles, categories: categories}
}

// ResolveAuthUser returns the user and, when setup is complete, its profile.
// Exactly one profile table is consulted, chosen by the user's role.
func (s *ProfileService) ResolveAuthUser(ctx context.Context, userID uuid.UUID) (*AuthUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	profile, err := s.lookupProfile(ctx, user.Role, userID)
	if err != nil {
		return nil, err
	}
	return &AuthUser{User: user, RoleData: profile}, nil
}

func (s *ProfileService) lookupProfile(ctx context.Context, role models.Role, userID uuid.UUID) (models.Profile, error) {
	var (
		profile models.Profile
		err     error
	)
	switch role {
	case models.RoleCouple:
		var c *models.Couple
		if c, err = s.profiles.CoupleByUserID(ctx, userID); err == nil {
			profile = c
		}
	case models.RoleIndividual:
		var i *models.Individual
		if i, err = s.profiles.IndividualByUserID(ctx, userID); err == nil {
			profile = i
		}
	case models.RoleVendor:
		var v *models.Vendor
		if v, err = s.profiles.VendorByUserID(ctx, userID); err == nil {
			profile = v
		}
	default:
		return nil, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s profile: %w", role, err)
	}
	return profile, nil
}

// CompleteProfileSetup attaches the first and only profile to the user.
func (s *ProfileService) CompleteProfileSetup(ctx context.Context, userID uuid.UUID, req *dto.SetupProfileRequest) (models.Profile, error) {
	role, ok := models.ParseRole(strings.TrimSpace(req.Role))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	update := &models.User{
		ID:        userID,
		Role:      role,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	}
	displayName := user.FullName()
	if n := update.FullName(); n != "" {
		displayName = n
	}

	var profile models.Profile
	switch role {
	case models.RoleCouple:
		profile, err = newCouple(userID, displayName, req)
	case models.RoleIndividual:
		profile, err = newIndividual(userID, displayName, req)
	case models.RoleVendor:
		profile, err = s.newVendor(userID, req)
	}
	if err != nil {
		return nil, err
	}

	err = s.profiles.Attach(ctx, update, profile)
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrProfileExists
	}
	if err != nil {
		return nil, fmt.Errorf("attach %s profile: %w", role, err)
	}
	return profile, nil
}

func newCouple(userID uuid.UUID, fallbackName string, req *dto.SetupProfileRequest) (*models.Couple, error) {
	name := firstNonEmpty(req.CoupleName, fallbackName)
	if name == "" {
		return nil, NewValidationError("coupleName", "is required")
	}
	return &models.Couple{
		ID:          uuid.New(),
		UserID:      userID,
		CoupleName:  name,
		Email:       strings.TrimSpace(req.Email),
		PartnerName: strings.TrimSpace(req.PartnerName),
		WeddingDate: req.WeddingDate.Ptr(),
		Budget:      req.Budget,
		Venue:       strings.TrimSpace(req.Venue),
		GuestCount:  req.GuestCount,
		Style:       strings.TrimSpace(req.Style),
		Location:    strings.TrimSpace(req.Location),
	}, nil
}

func newIndividual(userID uuid.UUID, fallbackName string, req *dto.SetupProfileRequest) (*models.Individual, error) {
	name := firstNonEmpty(req.FullName, fallbackName)
	if name == "" {
		return nil, NewValidationError("fullName", "is required")
	}
	return &models.Individual{
		ID:        uuid.New(),
		UserID:    userID,
		FullName:  name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		EventType: strings.TrimSpace(req.EventType),
		EventDate: req.EventDate.Ptr(),
		Budget:    req.Budget,
		Location:  strings.TrimSpace(req.Location),
	}, nil
}

func (s *ProfileService) newVendor(userID uuid.UUID, req *dto.SetupProfileRequest) (*models.Vendor, error) {
	verr := &ValidationError{}
	required := map[string]string{
		"businessName": req.BusinessName,
		"category":     req.Category,
		"description":  req.Description,
		"country":      req.Country,
		"state":        req.State,
		"city":         req.City,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			verr.Add(field, "is required")
		}
	}

	category := strings.TrimSpace(req.Category)
	if category != "" && s.categories != nil {
		c, ok := s.categories.Lookup(category)
		if !ok {
			verr.Add("category", "is not a known vendor category")
		} else {
			category = c.Name
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	city := strings.TrimSpace(req.City)
	state := strings.TrimSpace(req.State)
	country := strings.TrimSpace(req.Country)
	return &models.Vendor{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: strings.TrimSpace(req.BusinessName),
		Category:     category,
		Description:  strings.TrimSpace(req.Description),
		Country:      country,
		State:        state,
		City:         city,
		Location:     strings.Join([]string{city, state, country}, ", "),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Website:      strings.TrimSpace(req.Website),
		Instagram:    strings.TrimSpace(req.Instagram),
		Facebook:     strings.TrimSpace(req.Facebook),
		TikTok:       strings.TrimSpace(req.TikTok),
		Pinterest:    strings.TrimSpace(req.Pinterest),
		IsActive:     true,
	}, nil
}

// UpdateConsumerProfile edits the caller's couple or individual profile.
func (s *ProfileService) UpdateConsumerProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateConsumerProfileRequest) (models.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if !user.Role.IsConsumer() {
		return nil, ErrConsumerProfileRequired
	}

	profile, err := s.lookupProfile(ctx, user.Role, userID)
	if err != nil {
		return nil, err
	}

	switch p := profile.(type) {
	case *models.Couple:
		if req.CoupleName != nil {
			if strings.TrimSpace(*req.CoupleName) == "" {
				return nil, NewValidationError("coupleName", "must not be empty")
			}
			p.CoupleName = strings.TrimSpace(*req.CoupleName)
		}
		setString(&p.Email, req.Email)
		setString(&p.PartnerName, req.PartnerName)
		if req.WeddingDate != nil {
			p.WeddingDate = req.WeddingDate.Ptr()
		}
		if req.Budget != nil {
			p.Budget = req.Budget
		}
		if req.SpentAmount != nil {
			p.SpentAmount = *req.SpentAmount
		}
		setString(&p.Venue, req.Venue)
		if req.GuestCount != nil {
			p.GuestCount = req.GuestCount
		}
		setString(&p.Style, req.Style)
		setString(&p.Location, req.Location)
	case *models.Individual:
		if req.FullName != nil {
			if strings.TrimSpace(*req.FullName) == "" {
				return nil, NewValidationError("fullName", "must not be empty")
			}
			p.FullName = strings.TrimSpace(*req.FullName)
		}
		setString(&p.Email, req.Email)
		setString(&p.Phone, req.Phone)
		setString(&p.EventType, req.EventType)
		if req.EventDate != nil {
			p.EventDate = req.EventDate.Ptr()
		}
		if req.Budget != nil {
			p.Budget = req.Budget
		}
		setString(&p.Location, req.Location)
	default:
		return nil, ErrConsumerProfileRequired
	}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profile, nil
}

// ResolveConsumer returns the reference used to scope consumer-owned rows.
func (s *ProfileService) ResolveConsumer(ctx context.Context, userID uuid.UUID) (models.ConsumerRef, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return models.ConsumerRef{}, ErrUserNotFound
	}
	if err != nil {
		return models.ConsumerRef{}, fmt.Errorf("load user: %w", err)
	}
	if !user.Role.IsConsumer() {
		return models.ConsumerRef{}, ErrConsumerProfileRequired
	}

	profile, err := s.lookupProfile(ctx, user.Role, userID)
	if err != nil {
		return models.ConsumerRef{}, err
	}
	if profile == nil {
		return models.ConsumerRef{}, ErrConsumerProfileRequired
	}
	return models.ConsumerRef{Role: user.Role, ProfileID: profile.ProfileID(), UserID: userID}, nil
}

// ResolveVendor returns the caller's vendor row.
func (s *ProfileService) ResolveVendor(ctx context.Context, userID uuid.UUID) (*models.Vendor, error) {
	vendor, err := s.profiles.VendorByUserID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrVendorProfileRequired
	}
	if err != nil {
		return nil, fmt.Errorf("load vendor profile: %w", err)
	}
	return vendor, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
