package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ThemeCustomization holds per-tenant branding; one row per tenant
type ThemeCustomization struct {
	BaseModel
	TenantID        uuid.UUID `json:"tenant_id" gorm:"type:uuid;uniqueIndex;not null"`
	PrimaryColor    string    `json:"primary_color" gorm:"size:7;not null;default:'#10b981'"`
	SecondaryColor  string    `json:"secondary_color" gorm:"size:7;not null;default:'#059669'"`
	TextColor       string    `json:"text_color" gorm:"size:7;not null;default:'#000000'"`
	BackgroundColor string    `json:"background_color" gorm:"size:7;not null;default:'#ffffff'"`
	LogoURL         string    `json:"logo_url,omitempty" gorm:"size:500"`
	FaviconURL      string    `json:"favicon_url,omitempty" gorm:"size:500"`
	PlatformName    string    `json:"platform_name" gorm:"size:255;not null;default:'ImpactoHub'"`
	FontFamily      string    `json:"font_family" gorm:"size:100;not null;default:'Inter'"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ThemeCustomization
func (ThemeCustomization) TableName() string {
	return "theme_customizations"
}

// PageCustomization holds the per-tenant landing-page content; one row per tenant
type PageCustomization struct {
	BaseModel
	TenantID           uuid.UUID       `json:"tenant_id" gorm:"type:uuid;uniqueIndex;not null"`
	HeroTitle          string          `json:"hero_title,omitempty" gorm:"type:text"`
	HeroDescription    string          `json:"hero_description,omitempty" gorm:"type:text"`
	HeroImage          string          `json:"hero_image,omitempty" gorm:"size:500"`
	FeaturesSection    json.RawMessage `json:"features_section,omitempty" gorm:"type:jsonb"`
	TestimonialSection json.RawMessage `json:"testimonial_section,omitempty" gorm:"type:jsonb"`
	CTAText            string          `json:"cta_text,omitempty" gorm:"size:255"`
	FooterText         string          `json:"footer_text,omitempty" gorm:"type:text"`

	Tenant *Tenant `json:"tenant,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PageCustomization
func (PageCustomization) TableName() string {
	return "page_customizations"
}
