package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymtracker/internal/analytics"
	"github.com/2beens/gymtracker/internal/workouts"
)

func main() {
	file := flag.String("file", "", "backup export or workouts json file (stdin when empty)")
	window := flag.String("window", string(analytics.DefaultWindow), "time window [1month | 3months | 6months | 1year | all]")
	nowStr := flag.String("now", "", "reference time, RFC3339 (defaults to the current time)")
	timezone := flag.String("tz", "UTC", "timezone for day based reports")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	if level, err := log.ParseLevel(*logLevel); err == nil {
		log.SetLevel(level)
	}
	log.SetOutput(os.Stderr)

	if err := run(*file, *window, *nowStr, *timezone, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("analyze: %s", err)
	}
}

func run(file, window, nowStr, timezone string, stdin io.Reader, out io.Writer) error {
	var raw []byte
	var err error
	if file == "" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	now := time.Now()
	if nowStr != "" {
		now, err = time.Parse(time.RFC3339, nowStr)
		if err != nil {
			return fmt.Errorf("parse now [%s]: %w", nowStr, err)
		}
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return fmt.Errorf("timezone [%s]: %w", timezone, err)
	}

	ws := workouts.Load(workoutsSection(raw))
	log.Debugf("loaded %d workouts", len(ws))

	report := analytics.BuildFullReport(ws, analytics.ParseWindow(window), now, loc)
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// workoutsSection takes the workouts list out of a backup export. Anything
// else is handed to the loader as is.
func workoutsSection(raw []byte) []byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}
	var doc struct {
		Workouts json.RawMessage `json:"workouts"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		log.Warnf("input is not a valid backup document: %s", err)
		return nil
	}
	return doc.Workouts
}
