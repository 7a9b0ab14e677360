package admin_test

import (
	"testing"

	"carhive/config"
	adminSvc "carhive/services/admin"
)

func TestProfileReturnsConfiguredIdentity(t *testing.T) {
	origID, origEmail := config.AppConfig.AdminID, config.AppConfig.AdminEmail
	defer func() {
		config.AppConfig.AdminID = origID
		config.AppConfig.AdminEmail = origEmail
	}()

	config.AppConfig.AdminID = "admin-7"
	config.AppConfig.AdminEmail = "ops@example.com"

	s := &adminSvc.DefaultAdminService{}
	p := s.Profile()
	if p.ID != "admin-7" || p.Email != "ops@example.com" {
		t.Fatalf("Profile = %+v; want the configured id and email", p)
	}
}
