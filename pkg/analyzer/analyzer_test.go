package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	a := New()

	t.Run("known foods are summed", func(t *testing.T) {
		res := a.Analyze("Grilled chicken with rice")
		assert.InDelta(t, 485, res.Calories, 0.01)
		assert.InDelta(t, 39, res.ProteinG, 0.01)
		assert.NotEmpty(t, res.Recommendation)
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		upper := a.Analyze("CHICKEN AND RICE")
		lower := a.Analyze("chicken and rice")
		assert.Equal(t, lower.Calories, upper.Calories)
	})

	t.Run("unknown description gets default estimate", func(t *testing.T) {
		res := a.Analyze("mystery casserole")
		assert.Equal(t, defaultMeal.Calories, res.Calories)
		assert.Equal(t, defaultMeal.ProteinG, res.ProteinG)
	})

	t.Run("each profile counted once per description", func(t *testing.T) {
		one := a.Analyze("chicken")
		twice := a.Analyze("chicken chicken")
		assert.Equal(t, one.Calories, twice.Calories)
	})

	t.Run("sugary meal flagged", func(t *testing.T) {
		res := a.Analyze("chocolate cake and cola")
		assert.Greater(t, res.SugarG, 30.0)
		assert.Contains(t, res.Recommendation, "sugar")
	})

	t.Run("low protein meal flagged", func(t *testing.T) {
		res := a.Analyze("apple")
		assert.Less(t, res.ProteinG, 15.0)
		assert.Contains(t, res.Recommendation, "Protein")
	})
}
