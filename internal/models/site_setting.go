package models

import "time"

// Site settings are a typed configuration map with a fixed set of known
// keys. Unknown keys are rejected on write; reads fall back to the
// per-key default when no row exists.
const (
	SettingHeroHeadline     = "hero_headline"
	SettingHeroSubheadline  = "hero_subheadline"
	SettingWhyWorkVideoURL  = "why_work_video_url"
	SettingApproachVideoURL = "approach_video_url"
	SettingValueProp1Title  = "value_prop_1_title"
	SettingValueProp1Desc   = "value_prop_1_description"
	SettingValueProp2Title  = "value_prop_2_title"
	SettingValueProp2Desc   = "value_prop_2_description"
	SettingValueProp3Title  = "value_prop_3_title"
	SettingValueProp3Desc   = "value_prop_3_description"
)

// SettingDefaults maps every known key to its fallback value.
var SettingDefaults = map[string]string{
	SettingHeroHeadline:     "Commercial Property Advice You Can Trust",
	SettingHeroSubheadline:  "Independent guidance for buyers, sellers and investors.",
	SettingWhyWorkVideoURL:  "",
	SettingApproachVideoURL: "",
	SettingValueProp1Title:  "Independent Advice",
	SettingValueProp1Desc:   "We work for you, not the agent.",
	SettingValueProp2Title:  "Proven Results",
	SettingValueProp2Desc:   "A track record of successful outcomes.",
	SettingValueProp3Title:  "Local Knowledge",
	SettingValueProp3Desc:   "Deep experience in the local market.",
}

// KnownSettingKey reports whether key is one of the enumerated settings.
func KnownSettingKey(key string) bool {
	_, ok := SettingDefaults[key]
	return ok
}

type SiteSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}
