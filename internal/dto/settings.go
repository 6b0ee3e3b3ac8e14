package dto

import "github.com/fixora/adminapi/internal/domain"

type SaveSettingsRequestDTO struct {
	App     domain.SettingGroup `json:"app" validate:"required"`
	General domain.SettingGroup `json:"general" validate:"required"`
	Policy  domain.SettingGroup `json:"policy" validate:"required"`
	Payment domain.SettingGroup `json:"payment" validate:"required"`
}
