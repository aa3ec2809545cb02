package settings

import (
	"bytes"
	"encoding/json"
	"strings"

	log "github.com/sirupsen/logrus"
)

type WeightUnit string

const (
	Kilograms WeightUnit = "kg"
	Pounds    WeightUnit = "lbs"

	DefaultWeightUnit = Kilograms
	DefaultRestTime   = 90

	poundsPerKilogram = 2.20462262
	maxRestTime       = 60 * 60
)

type Settings struct {
	DefaultRestTime     int        `json:"defaultRestTime"`
	WeightUnit          WeightUnit `json:"weightUnit"`
	AutoStartTimer      bool       `json:"autoStartTimer"`
	ShowRPE             bool       `json:"showRPE"`
	ShowLastPerformance bool       `json:"showLastPerformance"`
	Notifications       bool       `json:"notifications"`
}

func Defaults() Settings {
	return Settings{
		DefaultRestTime:     DefaultRestTime,
		WeightUnit:          DefaultWeightUnit,
		AutoStartTimer:      true,
		ShowRPE:             true,
		ShowLastPerformance: true,
		Notifications:       true,
	}
}

func ParseWeightUnit(s string) (WeightUnit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kg", "kgs", "kilograms":
		return Kilograms, true
	case "lb", "lbs", "pounds":
		return Pounds, true
	default:
		return "", false
	}
}

// ConvertWeight converts between units. Unknown units leave the weight as is.
func ConvertWeight(weight float64, from, to WeightUnit) float64 {
	switch {
	case from == to:
		return weight
	case from == Kilograms && to == Pounds:
		return weight * poundsPerKilogram
	case from == Pounds && to == Kilograms:
		return weight / poundsPerKilogram
	default:
		return weight
	}
}

// Parse reads stored settings field by field, keeping the default for every
// field that is missing or malformed.
func Parse(raw []byte) Settings {
	s := Defaults()
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return s
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		log.Tracef("settings parse, not a json object: %s", err)
		return s
	}

	var restTime float64
	if err := json.Unmarshal(fields["defaultRestTime"], &restTime); err == nil && restTime > 0 && restTime <= maxRestTime {
		s.DefaultRestTime = int(restTime)
	}

	var unit string
	if err := json.Unmarshal(fields["weightUnit"], &unit); err == nil {
		if u, ok := ParseWeightUnit(unit); ok {
			s.WeightUnit = u
		}
	}

	boolField(fields, "autoStartTimer", &s.AutoStartTimer)
	boolField(fields, "showRPE", &s.ShowRPE)
	boolField(fields, "showLastPerformance", &s.ShowLastPerformance)
	boolField(fields, "notifications", &s.Notifications)

	return s
}

func boolField(fields map[string]json.RawMessage, name string, dst *bool) {
	raw, ok := fields[name]
	if !ok {
		return
	}
	var v bool
	if err := json.Unmarshal(raw, &v); err == nil {
		*dst = v
	}
}
