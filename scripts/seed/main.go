// Command seed writes a sample planner data file for local development.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/noah-isme/smart-timetable-api/internal/models"
)

func main() {
	var (
		outPath   string
		startDate string
		startWeek int
	)

	flag.StringVar(&outPath, "out", filepath.Join("data", "planner.json"), "Path of the data file to write")
	flag.StringVar(&startDate, "start-date", models.DefaultStartDate, "Semester start date (YYYY-MM-DD, a Monday)")
	flag.IntVar(&startWeek, "start-week", models.DefaultStartWeek, "Absolute number of the first semester week")
	flag.Parse()

	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		log.Fatalf("invalid start date %q: %v", startDate, err)
	}

	data := sampleData(startDate, startWeek)
	data.Normalize()

	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Fatalf("marshal sample data: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("create data directory: %v", err)
	}
	if err := os.WriteFile(outPath, payload, 0o644); err != nil {
		log.Fatalf("write data file: %v", err)
	}
	fmt.Printf("wrote %d courses, %d holidays to %s\n", len(data.Courses), len(data.Holidays), outPath)
}

func sampleData(startDate string, startWeek int) models.PlannerData {
	weeks := make([]int, 0, 10)
	for w := startWeek; w < startWeek+10; w++ {
		weeks = append(weeks, w)
	}

	return models.PlannerData{
		Courses: []models.Course{
			{ID: 1, Name: "Databases", Day: models.DayMonday, StartPeriod: 1, PeriodCount: 3, Room: "B101", Teacher: "Dr. Lam", Weeks: weeks, IsFavorite: true},
			{ID: 2, Name: "Operating Systems", Day: models.DayTuesday, StartPeriod: 4, PeriodCount: 2, Room: "A204", Weeks: weeks},
			{ID: 3, Name: "Algorithms", Day: models.DayThursday, StartPeriod: 7, PeriodCount: 3, Room: "C305", Weeks: weeks},
			{ID: 4, Name: "English Speaking Club", Day: models.DaySaturday, StartPeriod: 1, PeriodCount: 2, Room: "Online", Weeks: weeks[:5]},
			{ID: 5, Name: "Revision checklist", Day: models.DayNote, Notes: "Redo chapter 4 exercises before midterm"},
		},
		Holidays: []models.Holiday{
			{Name: "Mid-semester break", Weeks: []int{startWeek + 4}},
		},
		Settings: models.SemesterSettings{StartDate: startDate, StartWeek: startWeek},
	}
}
