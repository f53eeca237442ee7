package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"impactohub-backend/internal/auth"
	"impactohub-backend/internal/database/models"
	apperrors "impactohub-backend/internal/errors"
	"impactohub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomizationService handles per-tenant branding. Writes are
// admin-category; a tenant may read its own theme and landing page, and a
// missing row resolves to defaults instead of an error.
type CustomizationService struct {
	repo       repository.CustomizationRepositoryInterface
	tenantRepo repository.TenantRepositoryInterface
	validator  *validator.Validate
}

// NewCustomizationService creates a new customization service
func NewCustomizationService(
	repo repository.CustomizationRepositoryInterface,
	tenantRepo repository.TenantRepositoryInterface,
	validator *validator.Validate,
) *CustomizationService {
	return &CustomizationService{repo: repo, tenantRepo: tenantRepo, validator: validator}
}

// UpdateThemeRequest represents the request to update a tenant's theme
type UpdateThemeRequest struct {
	PrimaryColor    string `json:"primary_color,omitempty" validate:"omitempty,hexcolor"`
	SecondaryColor  string `json:"secondary_color,omitempty" validate:"omitempty,hexcolor"`
	TextColor       string `json:"text_color,omitempty" validate:"omitempty,hexcolor"`
	BackgroundColor string `json:"background_color,omitempty" validate:"omitempty,hexcolor"`
	LogoURL         string `json:"logo_url,omitempty" validate:"omitempty,max=500"`
	FaviconURL      string `json:"favicon_url,omitempty" validate:"omitempty,max=500"`
	PlatformName    string `json:"platform_name,omitempty" validate:"omitempty,max=255"`
	FontFamily      string `json:"font_family,omitempty" validate:"omitempty,max=100"`
}

// UpdatePageRequest represents the request to update a tenant's landing page
type UpdatePageRequest struct {
	HeroTitle          string          `json:"hero_title,omitempty"`
	HeroDescription    string          `json:"hero_description,omitempty"`
	HeroImage          string          `json:"hero_image,omitempty" validate:"omitempty,max=500"`
	FeaturesSection    json.RawMessage `json:"features_section,omitempty" swaggertype:"object"`
	TestimonialSection json.RawMessage `json:"testimonial_section,omitempty" swaggertype:"object"`
	CTAText            string          `json:"cta_text,omitempty" validate:"omitempty,max=255"`
	FooterText         string          `json:"footer_text,omitempty"`
}

// GetTheme retrieves a tenant's theme, admin-side
func (s *CustomizationService) GetTheme(caller *auth.Identity, tenantID uuid.UUID) (*models.ThemeCustomization, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}
	return s.themeOrDefault(tenantID)
}

// GetOwnTheme retrieves the caller tenant's theme
func (s *CustomizationService) GetOwnTheme(caller *auth.Identity) (*models.ThemeCustomization, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}
	return s.themeOrDefault(tenantID)
}

// UpdateTheme replaces a tenant's theme row
func (s *CustomizationService) UpdateTheme(caller *auth.Identity, tenantID uuid.UUID, req *UpdateThemeRequest) (*models.ThemeCustomization, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	theme, err := s.themeOrDefault(tenantID)
	if err != nil {
		return nil, err
	}

	applyIfSet(&theme.PrimaryColor, req.PrimaryColor)
	applyIfSet(&theme.SecondaryColor, req.SecondaryColor)
	applyIfSet(&theme.TextColor, req.TextColor)
	applyIfSet(&theme.BackgroundColor, req.BackgroundColor)
	applyIfSet(&theme.LogoURL, req.LogoURL)
	applyIfSet(&theme.FaviconURL, req.FaviconURL)
	applyIfSet(&theme.PlatformName, req.PlatformName)
	applyIfSet(&theme.FontFamily, req.FontFamily)

	if err := s.repo.UpsertTheme(theme); err != nil {
		return nil, fmt.Errorf("failed to save theme: %w", err)
	}

	return theme, nil
}

// GetPage retrieves a tenant's landing page, admin-side
func (s *CustomizationService) GetPage(caller *auth.Identity, tenantID uuid.UUID) (*models.PageCustomization, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}
	return s.pageOrDefault(tenantID)
}

// GetOwnPage retrieves the caller tenant's landing page
func (s *CustomizationService) GetOwnPage(caller *auth.Identity) (*models.PageCustomization, error) {
	tenantID, err := auth.Authorize(caller, auth.CategoryTenantRead, nil)
	if err != nil {
		return nil, err
	}
	return s.pageOrDefault(tenantID)
}

// UpdatePage replaces a tenant's landing-page row
func (s *CustomizationService) UpdatePage(caller *auth.Identity, tenantID uuid.UUID, req *UpdatePageRequest) (*models.PageCustomization, error) {
	if _, err := auth.Authorize(caller, auth.CategoryAdmin, nil); err != nil {
		return nil, err
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.tenantRepo.GetByID(tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to verify tenant: %w", err)
	}

	page, err := s.pageOrDefault(tenantID)
	if err != nil {
		return nil, err
	}

	applyIfSet(&page.HeroTitle, req.HeroTitle)
	applyIfSet(&page.HeroDescription, req.HeroDescription)
	applyIfSet(&page.HeroImage, req.HeroImage)
	applyIfSet(&page.CTAText, req.CTAText)
	applyIfSet(&page.FooterText, req.FooterText)
	if req.FeaturesSection != nil {
		page.FeaturesSection = req.FeaturesSection
	}
	if req.TestimonialSection != nil {
		page.TestimonialSection = req.TestimonialSection
	}

	if err := s.repo.UpsertPage(page); err != nil {
		return nil, fmt.Errorf("failed to save page: %w", err)
	}

	return page, nil
}

func (s *CustomizationService) themeOrDefault(tenantID uuid.UUID) (*models.ThemeCustomization, error) {
	theme, err := s.repo.GetThemeByTenantID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultTheme(tenantID), nil
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return theme, nil
}

func (s *CustomizationService) pageOrDefault(tenantID uuid.UUID) (*models.PageCustomization, error) {
	page, err := s.repo.GetPageByTenantID(tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.PageCustomization{TenantID: tenantID}, nil
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return page, nil
}

func defaultTheme(tenantID uuid.UUID) *models.ThemeCustomization {
	return &models.ThemeCustomization{
		TenantID:        tenantID,
		PrimaryColor:    "#10b981",
		SecondaryColor:  "#059669",
		TextColor:       "#000000",
		BackgroundColor: "#ffffff",
		PlatformName:    "ImpactoHub",
		FontFamily:      "Inter",
	}
}

func applyIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
