package settings

import (
	"time"

	"github.com/workforge-hr/workforge-backend-go/internal/pkg/validator"
)

// OrganizationSettings is a singleton row of org-level configuration.
type OrganizationSettings struct {
	ID                  int
	OrganizationName    string
	CompanyAddress      *string
	WorkingDays         string // "mon-fri", "mon-sat", "mon-sun" or "custom"
	CustomWorkingDays   []string
	WorkingHoursStart   string
	WorkingHoursEnd     string
	Currency            string
	CurrencySymbol      string
	WorkingDaysPerMonth int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SystemPreferences is a singleton row of system-wide preferences.
type SystemPreferences struct {
	ID                    int
	AllowSelfRegistration bool
	SessionTimeoutMinutes int
	ForcePasswordReset    bool
	ThemeMode             string // "light", "dark" or "auto"
	DateFormat            string
	Timezone              string
	EnableNotifications   bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

var (
	validWorkingDays = []string{"mon-fri", "mon-sat", "mon-sun", "custom"}
	validThemeModes  = []string{"light", "dark", "auto"}
)

func IsValidWorkingDays(v string) bool {
	return validator.IsInSlice(v, validWorkingDays)
}

func IsValidThemeMode(v string) bool {
	return validator.IsInSlice(v, validThemeModes)
}
