package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/workouts"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNameEmpty        = errors.New("template name empty")
)

type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Reps   string `json:"reps"`
	Weight string `json:"weight,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

type Template struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastUsed    *time.Time `json:"lastUsed,omitempty"`
}

// Defaults are seeded when no templates were ever stored.
func Defaults(now time.Time) []Template {
	return []Template{
		{
			ID:          "1",
			Name:        "Push Day",
			Description: "Chest, shoulders and triceps",
			Exercises: []Exercise{
				{Name: "Bench Press", Sets: 4, Reps: "6-8"},
				{Name: "Incline Bench Press", Sets: 3, Reps: "8-10"},
				{Name: "Overhead Press", Sets: 3, Reps: "8-10"},
				{Name: "Lateral Raises", Sets: 3, Reps: "12-15"},
				{Name: "Tricep Dips", Sets: 3, Reps: "10-12"},
			},
			CreatedAt: now,
		},
		{
			ID:          "2",
			Name:        "Pull Day",
			Description: "Back and biceps",
			Exercises: []Exercise{
				{Name: "Deadlift", Sets: 4, Reps: "5-6"},
				{Name: "Pull-ups", Sets: 3, Reps: "8-12"},
				{Name: "Bent-over Row", Sets: 3, Reps: "8-10"},
				{Name: "Lat Pulldown", Sets: 3, Reps: "10-12"},
				{Name: "Bicep Curls", Sets: 3, Reps: "12-15"},
			},
			CreatedAt: now,
		},
		{
			ID:          "3",
			Name:        "Leg Day",
			Description: "Complete lower body",
			Exercises: []Exercise{
				{Name: "Squat", Sets: 4, Reps: "6-8"},
				{Name: "Leg Press", Sets: 3, Reps: "12-15"},
				{Name: "Lunges", Sets: 3, Reps: "10-12"},
				{Name: "Leg Curl", Sets: 3, Reps: "12-15"},
			},
			CreatedAt: now,
		},
	}
}

// Clean trims the template and drops exercises without a name.
func (t Template) Clean() (Template, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Description = strings.TrimSpace(t.Description)
	if t.Name == "" {
		return Template{}, ErrNameEmpty
	}

	exercises := make([]Exercise, 0, len(t.Exercises))
	for _, ex := range t.Exercises {
		ex.Name = strings.TrimSpace(ex.Name)
		if ex.Name == "" {
			continue
		}
		if ex.Sets < 0 {
			ex.Sets = 0
		}
		exercises = append(exercises, ex)
	}
	t.Exercises = exercises
	return t, nil
}

// Load parses stored templates with the same tolerance as workouts: records
// that are not objects are dropped, bad fields get zero values.
func Load(raw []byte) []Template {
	raw = bytes.TrimSpace(raw)
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Tracef("templates load, not a json array: %s", err)
		return []Template{}
	}

	list := make([]Template, 0, len(records))
	for _, rec := range records {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(rec, &fields); err != nil || fields == nil {
			continue
		}

		t := Template{
			ID:          workouts.ParseID(fields["id"]),
			Name:        str(fields["name"]),
			Description: str(fields["description"]),
			CreatedAt:   workouts.ParseDate(fields["createdAt"]),
			Exercises:   []Exercise{},
		}
		if lastUsed := workouts.ParseDate(fields["lastUsed"]); !lastUsed.IsZero() {
			t.LastUsed = &lastUsed
		}

		var exercises []json.RawMessage
		if err := json.Unmarshal(fields["exercises"], &exercises); err == nil {
			for _, exRaw := range exercises {
				var exFields map[string]json.RawMessage
				if err := json.Unmarshal(exRaw, &exFields); err != nil || exFields == nil {
					continue
				}
				sets, _ := workouts.Number(exFields["sets"])
				t.Exercises = append(t.Exercises, Exercise{
					Name:   str(exFields["name"]),
					Sets:   workouts.ClampCount(sets),
					Reps:   textOrNumber(exFields["reps"]),
					Weight: textOrNumber(exFields["weight"]),
					Notes:  str(exFields["notes"]),
				})
			}
		}
		list = append(list, t)
	}
	return list
}

func str(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func textOrNumber(raw json.RawMessage) string {
	if s := str(raw); s != "" {
		return s
	}
	if _, ok := workouts.Number(raw); ok {
		return string(bytes.TrimSpace(raw))
	}
	return ""
}
