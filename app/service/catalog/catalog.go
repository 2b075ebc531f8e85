package catalog

import (
	"strings"

	"github.com/samber/oops"
)

// Symptom is one known symptom keyword together with its scripted follow-up
// questions, asked in declared order.
type Symptom struct {
	Name      string
	Questions []string
}

// Catalog is an ordered, immutable set of known symptoms. Order matters:
// detection iterates symptoms in declared order, which fixes the order of
// follow-up questions for multi-symptom messages.
type Catalog struct {
	symptoms []Symptom
}

// New validates and normalizes the symptom table: names are lower-cased,
// must be unique and every symptom needs at least one follow-up question.
func New(symptoms []Symptom) (*Catalog, error) {
	seen := make(map[string]bool, len(symptoms))
	normalized := make([]Symptom, 0, len(symptoms))

	for _, s := range symptoms {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			return nil, oops.Errorf("symptom with empty name")
		}
		if seen[name] {
			return nil, oops.Errorf("duplicate symptom %q", name)
		}
		if len(s.Questions) == 0 {
			return nil, oops.Errorf("symptom %q has no follow-up questions", name)
		}

		seen[name] = true
		normalized = append(normalized, Symptom{Name: name, Questions: s.Questions})
	}

	return &Catalog{symptoms: normalized}, nil
}

// Default returns the compiled-in symptom table.
func Default() *Catalog {
	c, err := New([]Symptom{
		{
			Name: "headache",
			Questions: []string{
				"On a scale of 1 to 10, how severe is it?",
				"Where is the pain located?",
			},
		},
		{
			Name: "fever",
			Questions: []string{
				"Have you measured your temperature? If so, what is it?",
				"How long have you felt feverish?",
			},
		},
		{
			Name: "cough",
			Questions: []string{
				"Is it a dry cough, or are you coughing anything up?",
				"How frequently are you coughing?",
			},
		},
	})
	if err != nil {
		panic(err)
	}

	return c
}

// Detect returns the names of all symptoms mentioned in text, in catalog
// declared order. Matching is a case-insensitive substring check, and a
// symptom mentioned more than once is still detected once.
func (c *Catalog) Detect(text string) []string {
	lower := strings.ToLower(text)

	detected := make([]string, 0, len(c.symptoms))
	for _, s := range c.symptoms {
		if strings.Contains(lower, s.Name) {
			detected = append(detected, s.Name)
		}
	}

	return detected
}

// Questions returns the follow-up questions for a symptom, nil if unknown.
func (c *Catalog) Questions(name string) []string {
	name = strings.ToLower(name)

	for _, s := range c.symptoms {
		if s.Name == name {
			return s.Questions
		}
	}

	return nil
}

func (c *Catalog) Symptoms() []Symptom {
	return c.symptoms
}
