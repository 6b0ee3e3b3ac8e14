package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// SettingKind discriminates the value stored in a SettingValue.
type SettingKind int

const (
	SettingString SettingKind = iota
	SettingBool
	SettingNumber
)

// SettingValue is a string/bool/number union. Settings groups are free-form
// key sets (payment providers bring their own keys), so the value has to be
// dynamic, but its type set stays closed.
type SettingValue struct {
	Kind SettingKind
	Str  string
	Bool bool
	Num  float64
}

func StringSetting(s string) SettingValue  { return SettingValue{Kind: SettingString, Str: s} }
func BoolSetting(b bool) SettingValue      { return SettingValue{Kind: SettingBool, Bool: b} }
func NumberSetting(n float64) SettingValue { return SettingValue{Kind: SettingNumber, Num: n} }

func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case SettingBool:
		return json.Marshal(v.Bool)
	case SettingNumber:
		return json.Marshal(v.Num)
	default:
		return json.Marshal(v.Str)
	}
}

func (v *SettingValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolSetting(b)
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberSetting(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = StringSetting(s)
		return nil
	}
	return errors.New("setting value must be a string, boolean or number")
}

// SettingGroup is one named bag of settings (app, general, policy, payment).
type SettingGroup map[string]SettingValue

// Settings is a singleton record; a missing row means empty defaults.
type Settings struct {
	App       SettingGroup `db:"app"      json:"app"`
	General   SettingGroup `db:"general"  json:"general"`
	Policy    SettingGroup `db:"policy"   json:"policy"`
	Payment   SettingGroup `db:"payment"  json:"payment"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

func EmptySettings() *Settings {
	return &Settings{
		App:     SettingGroup{},
		General: SettingGroup{},
		Policy:  SettingGroup{},
		Payment: SettingGroup{},
	}
}
