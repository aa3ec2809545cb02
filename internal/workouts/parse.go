package workouts

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	maxRPE = 10
	// counts (reps, sets, seconds) are capped so they always fit an int
	maxCount = math.MaxInt32
	// weights and volumes are capped so sums over them stay finite
	maxAmount = math.MaxFloat32
)

// year 9999 in epoch milliseconds
const maxEpochMillis = 253402300800000

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Load parses the stored workouts document. It never fails: malformed input
// yields an empty list, records that are not objects are dropped, and every
// bad or missing field falls back to its neutral default.
func Load(raw []byte) []Workout {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []Workout{}
	}

	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Tracef("workouts load, not a json array: %s", err)
		return []Workout{}
	}

	workouts := make([]Workout, 0, len(records))
	for i, rec := range records {
		w, ok := parseWorkout(rec)
		if !ok {
			log.Tracef("workouts load, dropping malformed record %d", i)
			continue
		}
		workouts = append(workouts, w)
	}
	return workouts
}

// Serialize writes workouts in the canonical stored form, readable by Load.
func Serialize(workouts []Workout) ([]byte, error) {
	out := make([]Workout, len(workouts))
	for i, w := range workouts {
		exercises := make([]Exercise, len(w.Exercises))
		for j, ex := range w.Exercises {
			if ex.Sets == nil {
				ex.Sets = []Set{}
			}
			exercises[j] = ex
		}
		w.Exercises = exercises
		out[i] = w
	}
	return json.Marshal(out)
}

func parseWorkout(raw json.RawMessage) (Workout, bool) {
	fields, ok := object(raw)
	if !ok {
		return Workout{}, false
	}

	w := Workout{
		ID:              ParseID(fields["id"]),
		Name:            str(fields["name"]),
		Date:            ParseDate(fields["date"]),
		DurationSeconds: nonNegativeInt(fields["duration"]),
		Exercises:       []Exercise{},
	}

	if v, ok := Number(fields["totalVolume"]); ok {
		v = clampAmount(v)
		w.TotalVolume = &v
	}
	if v, ok := Number(fields["totalSets"]); ok {
		n := ClampCount(v)
		w.TotalSets = &n
	}

	var exercises []json.RawMessage
	if err := json.Unmarshal(fields["exercises"], &exercises); err == nil {
		for _, exRaw := range exercises {
			if ex, ok := parseExercise(exRaw); ok {
				w.Exercises = append(w.Exercises, ex)
			}
		}
	}

	return w, true
}

func parseExercise(raw json.RawMessage) (Exercise, bool) {
	fields, ok := object(raw)
	if !ok {
		return Exercise{}, false
	}

	ex := Exercise{
		Name:     str(fields["name"]),
		Category: strings.TrimSpace(str(fields["category"])),
		Notes:    str(fields["notes"]),
		Sets:     []Set{},
	}
	if ex.Category == "" {
		ex.Category = DefaultCategory
	}

	var sets []json.RawMessage
	if err := json.Unmarshal(fields["sets"], &sets); err == nil {
		for _, setRaw := range sets {
			if s, ok := parseSet(setRaw); ok {
				ex.Sets = append(ex.Sets, s)
			}
		}
	}

	return ex, true
}

func parseSet(raw json.RawMessage) (Set, bool) {
	fields, ok := object(raw)
	if !ok {
		return Set{}, false
	}

	s := Set{
		Weight:    nonNegative(fields["weight"]),
		Reps:      nonNegativeInt(fields["reps"]),
		Completed: true,
	}

	if rpe, ok := Number(fields["rpe"]); ok {
		s.RPE = clampRPE(&rpe)
	}

	// missing and null both mean completed
	var completed *bool
	if err := json.Unmarshal(fields["completed"], &completed); err == nil && completed != nil {
		s.Completed = *completed
	}

	return s, true
}

func object(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}

// Number reads a JSON number or a numeric string. NaN and Inf are rejected.
func Number(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func nonNegative(raw json.RawMessage) float64 {
	f, _ := Number(raw)
	return clampAmount(f)
}

func nonNegativeInt(raw json.RawMessage) int {
	f, _ := Number(raw)
	return ClampCount(f)
}

func clampAmount(f float64) float64 {
	return math.Min(math.Max(f, 0), maxAmount)
}

// ClampCount floors f into [0, MaxInt32].
func ClampCount(f float64) int {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= maxCount {
		return maxCount
	}
	return int(math.Floor(f))
}

// clampRPE keeps an RPE within (0, 10]. Non-positive values mean no RPE.
func clampRPE(rpe *float64) *float64 {
	if rpe == nil || math.IsNaN(*rpe) || *rpe <= 0 {
		return nil
	}
	clamped := math.Min(*rpe, maxRPE)
	return &clamped
}

func str(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// ParseID accepts string or numeric ids.
func ParseID(raw json.RawMessage) string {
	if s := str(raw); s != "" {
		return s
	}
	if f, ok := Number(raw); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return ""
}

// ParseDate accepts RFC3339 strings, a few ISO-like layouts (read as UTC) and
// epoch milliseconds. Anything else is the zero time.
func ParseDate(raw json.RawMessage) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] != '"' {
		if millis, ok := Number(raw); ok && math.Abs(millis) < maxEpochMillis {
			return time.UnixMilli(int64(millis)).UTC()
		}
		return time.Time{}
	}

	s := strings.TrimSpace(str(raw))
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
