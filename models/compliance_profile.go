package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ComplianceProfile holds one organization's food-safety registration
// details. Its existence signals "compliance mode enabled" — the workflow
// stage resolver moves past "enable" once a profile row exists. Created
// and edited through the setup wizard; never auto-deleted.
type ComplianceProfile struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"orgId"`
	Organization   Organization `gorm:"foreignKey:OrganizationID" json:"-"`

	// LicenceFields carries the framework-dependent licence entries
	// (e.g. {"fssai_licence_no": "..."} vs {"fsa_registration": "..."}).
	// The active framework's LicenceFieldKey names the primary entry.
	LicenceFields    datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"licenceFields"`
	LicenceExpiry    *JSONTime      `gorm:"column:licence_expiry" json:"licenceExpiry,omitempty"`
	LicenceDisplayed bool           `gorm:"default:false" json:"licenceDisplayed"`
	LicenceType      string         `gorm:"size:50" json:"licenceType,omitempty"`

	BusinessCategory  string    `gorm:"size:100" json:"businessCategory,omitempty"`
	FostacCertified   bool      `gorm:"default:false" json:"fostacCertified"`
	NextAuditDate     *JSONTime `gorm:"column:next_audit_date" json:"nextAuditDate,omitempty"`
	GreenShieldActive bool      `gorm:"default:false" json:"greenShieldActive"`

	// Uploaded licence/certificate scans (public URLs).
	DocumentScans pq.StringArray `gorm:"type:text[]" json:"documentScans"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for ComplianceProfile
func (ComplianceProfile) TableName() string {
	return "compliance_profiles"
}

func (p *ComplianceProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}

// FoodSafetySupervisor is a trained supervisor registered for an
// organization. At most one row per organization should have
// IsPrimary=true; this is enforced by convention, not by a constraint,
// so readers take the first match.
type FoodSafetySupervisor struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID    uuid.UUID `gorm:"type:uuid;index;not null" json:"orgId"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	CertificateDate   *JSONTime `gorm:"column:certificate_date" json:"certificateDate,omitempty"`
	CertificateExpiry *JSONTime `gorm:"column:certificate_expiry" json:"certificateExpiry,omitempty"`
	NotifiedCouncil   bool      `gorm:"default:false" json:"notifiedCouncil"`
	IsPrimary         bool      `gorm:"default:false" json:"isPrimary"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TableName specifies the table name for FoodSafetySupervisor
func (FoodSafetySupervisor) TableName() string {
	return "food_safety_supervisors"
}

func (s *FoodSafetySupervisor) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// SectionToggle stores one organization's enabled/disabled state for one
// compliance section (pest control, HACCP, ...). A missing row means the
// section falls back to the framework default — only an explicit
// Enabled=false hides the section's tabs.
type SectionToggle struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_org_section" json:"orgId"`
	SectionKey     string    `gorm:"size:50;not null;uniqueIndex:idx_org_section" json:"sectionKey"`
	Enabled        bool      `gorm:"not null" json:"enabled"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// TableName specifies the table name for SectionToggle
func (SectionToggle) TableName() string {
	return "compliance_sections"
}

func (t *SectionToggle) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
