package enum

type TenantPreference string

const (
	TenantPreferenceBachelor     TenantPreference = "Bachelor"
	TenantPreferenceFamily       TenantPreference = "Family"
	TenantPreferenceGirlsOnly    TenantPreference = "Girls Only"
	TenantPreferenceProfessional TenantPreference = "Working Professionals"
	TenantPreferenceAny          TenantPreference = "Any"
)

func (t TenantPreference) Valid() bool {
	switch t {
	case TenantPreferenceBachelor, TenantPreferenceFamily,
		TenantPreferenceGirlsOnly, TenantPreferenceProfessional, TenantPreferenceAny:
		return true
	}
	return false
}
