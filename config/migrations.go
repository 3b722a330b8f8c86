package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/prepsafe/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "10032026_create_core_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Organization{},
					&models.Permission{}, &models.Role{}, &models.RolePermission{},
					&models.OrgRole{}, &models.UserOrgRole{}, &models.OrgRolePermission{})
			},
		},
		{
			ID: "12032026_create_compliance_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.ComplianceLog{}, &models.ComplianceProfile{},
					&models.FoodSafetySupervisor{}, &models.SectionToggle{})
			},
		},
		{
			ID: "18032026_add_assessments_and_preferences",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.SelfAssessment{}, &models.UserPreference{})
			},
		},
		{
			ID: "02042026_add_log_query_indexes",
			Migrate: func(tx *gorm.DB) error {
				// covers the today-fetch (org, type, date, shift) and the
				// history range scan (org, type, date desc)
				if err := tx.Exec("CREATE INDEX IF NOT EXISTS idx_logs_org_type_date_shift ON daily_compliance_logs(organization_id, log_type, log_date, shift)").Error; err != nil {
					return err
				}
				return tx.Exec("CREATE INDEX IF NOT EXISTS idx_logs_org_type_date ON daily_compliance_logs(organization_id, log_type, log_date DESC)").Error
			},
		},
		{
			ID: "15042026_add_staff_health_columns",
			Migrate: func(tx *gorm.DB) error {
				for _, stmt := range []string{
					"ALTER TABLE daily_compliance_logs ADD COLUMN IF NOT EXISTS staff_name varchar(100)",
					"ALTER TABLE daily_compliance_logs ADD COLUMN IF NOT EXISTS staff_fit_to_work boolean",
					"ALTER TABLE daily_compliance_logs ADD COLUMN IF NOT EXISTS staff_illness_details text",
				} {
					if err := tx.Exec(stmt).Error; err != nil {
						return err
					}
				}
				return nil
			},
		},
	})
	return m.Migrate()
}
