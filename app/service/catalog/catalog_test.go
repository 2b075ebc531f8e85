package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects empty name", func(t *testing.T) {
		_, err := New([]Symptom{{Name: "  ", Questions: []string{"q"}}})
		assert.Error(t, err)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		_, err := New([]Symptom{
			{Name: "fever", Questions: []string{"q1"}},
			{Name: "Fever", Questions: []string{"q2"}},
		})
		assert.Error(t, err)
	})

	t.Run("rejects symptom without questions", func(t *testing.T) {
		_, err := New([]Symptom{{Name: "fever"}})
		assert.Error(t, err)
	})

	t.Run("normalizes names to lower case", func(t *testing.T) {
		c, err := New([]Symptom{{Name: "Fever", Questions: []string{"q"}}})
		require.NoError(t, err)

		assert.Equal(t, []string{"fever"}, c.Detect("i have a fever"))
	})
}

func TestDetect(t *testing.T) {
	c := Default()

	t.Run("detection follows catalog declared order, not input order", func(t *testing.T) {
		assert.Equal(t, []string{"headache", "fever"}, c.Detect("I have a fever and a headache"))
	})

	t.Run("case-insensitive", func(t *testing.T) {
		assert.Equal(t, []string{"headache"}, c.Detect("terrible HEADACHE"))
	})

	t.Run("repeated mention is detected once", func(t *testing.T) {
		assert.Equal(t, []string{"cough"}, c.Detect("cough cough cough"))
	})

	t.Run("no known symptom yields empty result", func(t *testing.T) {
		assert.Empty(t, c.Detect("I feel a bit off today"))
	})
}

func TestQuestions(t *testing.T) {
	c := Default()

	t.Run("every default symptom has two follow-ups", func(t *testing.T) {
		for _, s := range c.Symptoms() {
			assert.Len(t, c.Questions(s.Name), 2, "symptom: %s", s.Name)
		}
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		assert.Equal(t, c.Questions("fever"), c.Questions("FEVER"))
	})

	t.Run("unknown symptom yields nil", func(t *testing.T) {
		assert.Nil(t, c.Questions("vertigo"))
	})
}
