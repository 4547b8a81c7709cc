// Package catalog holds the built-in exam subject catalogs. Subject order is
// significant: the scheduler's rotation cycles through these lists by index,
// so the slices here are the canonical ordering.
package catalog

import (
	"fmt"

	"github.com/prepsheet/prepsheet/internal/models"
)

// Exam describes one supported exam type and its ordered subject list.
type Exam struct {
	Key      string
	Name     string
	Subjects []models.Subject
}

var exams = []Exam{
	{
		Key:  "neet",
		Name: "NEET UG",
		Subjects: []models.Subject{
			{Key: "physics", Label: "Physics"},
			{Key: "chemistry", Label: "Chemistry"},
			{Key: "botany", Label: "Botany"},
			{Key: "zoology", Label: "Zoology"},
		},
	},
	{
		Key:  "jee",
		Name: "JEE Main",
		Subjects: []models.Subject{
			{Key: "physics", Label: "Physics"},
			{Key: "chemistry", Label: "Chemistry"},
			{Key: "mathematics", Label: "Mathematics"},
		},
	},
	{
		Key:  "upsc",
		Name: "UPSC Prelims",
		Subjects: []models.Subject{
			{Key: "history", Label: "History"},
			{Key: "geography", Label: "Geography"},
			{Key: "polity", Label: "Polity"},
			{Key: "economy", Label: "Economy"},
			{Key: "environment", Label: "Environment"},
			{Key: "science-tech", Label: "Science & Technology"},
		},
	},
	{
		Key:  "ssc-cgl",
		Name: "SSC CGL",
		Subjects: []models.Subject{
			{Key: "quant", Label: "Quantitative Aptitude"},
			{Key: "reasoning", Label: "Reasoning"},
			{Key: "english", Label: "English"},
			{Key: "general-awareness", Label: "General Awareness"},
		},
	},
	{
		Key:  "cbse-12",
		Name: "CBSE Class 12 (Science)",
		Subjects: []models.Subject{
			{Key: "physics", Label: "Physics"},
			{Key: "chemistry", Label: "Chemistry"},
			{Key: "mathematics", Label: "Mathematics"},
			{Key: "biology", Label: "Biology"},
			{Key: "english", Label: "English"},
		},
	},
}

// Exams returns all supported exams in catalog order.
func Exams() []Exam {
	out := make([]Exam, len(exams))
	copy(out, exams)
	return out
}

// Subjects returns the ordered subject list for an exam type.
func Subjects(examType string) ([]models.Subject, error) {
	for _, e := range exams {
		if e.Key == examType {
			subjects := make([]models.Subject, len(e.Subjects))
			copy(subjects, e.Subjects)
			return subjects, nil
		}
	}
	return nil, fmt.Errorf("unknown exam type: %s", examType)
}

// Partition splits a subject list into focus and other subjects based on the
// selected keys, preserving catalog order in both halves.
func Partition(subjects []models.Subject, focusKeys []string) (focus, other []models.Subject) {
	keySet := make(map[string]bool, len(focusKeys))
	for _, k := range focusKeys {
		keySet[k] = true
	}
	for _, s := range subjects {
		if keySet[s.Key] {
			focus = append(focus, s)
		} else {
			other = append(other, s)
		}
	}
	return focus, other
}
