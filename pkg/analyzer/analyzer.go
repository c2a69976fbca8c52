package analyzer

import (
	"strings"
)

// Result holds the estimated macro breakdown for one logged meal.
type Result struct {
	Calories       float64
	ProteinG       float64
	CarbsG         float64
	FatG           float64
	SugarG         float64
	FiberG         float64
	Recommendation string
}

type foodProfile struct {
	keywords []string
	calories float64
	protein  float64
	carbs    float64
	fat      float64
	sugar    float64
	fiber    float64
}

// Analyzer estimates nutrition from free-text meal descriptions using a
// keyword lookup table. Estimates are per matched item, summed across the
// description.
type Analyzer struct {
	profiles []foodProfile
}

func New() *Analyzer {
	return &Analyzer{
		profiles: []foodProfile{
			{keywords: []string{"chicken", "ayam"}, calories: 280, protein: 35, carbs: 0, fat: 14},
			{keywords: []string{"beef", "steak"}, calories: 350, protein: 32, carbs: 0, fat: 24},
			{keywords: []string{"fish", "salmon", "tuna"}, calories: 230, protein: 28, carbs: 0, fat: 12},
			{keywords: []string{"egg"}, calories: 78, protein: 6, carbs: 1, fat: 5},
			{keywords: []string{"tofu", "tempeh"}, calories: 180, protein: 18, carbs: 6, fat: 10, fiber: 2},
			{keywords: []string{"rice", "nasi"}, calories: 205, protein: 4, carbs: 45, fat: 0.5, fiber: 1},
			{keywords: []string{"bread", "toast", "sandwich"}, calories: 160, protein: 6, carbs: 28, fat: 2, fiber: 2, sugar: 3},
			{keywords: []string{"pasta", "noodle", "mie"}, calories: 310, protein: 11, carbs: 60, fat: 2, fiber: 3},
			{keywords: []string{"oat", "porridge"}, calories: 150, protein: 5, carbs: 27, fat: 3, fiber: 4, sugar: 1},
			{keywords: []string{"potato"}, calories: 160, protein: 4, carbs: 37, fat: 0.2, fiber: 4, sugar: 2},
			{keywords: []string{"salad", "vegetable", "broccoli", "spinach"}, calories: 60, protein: 3, carbs: 10, fat: 0.5, fiber: 4, sugar: 3},
			{keywords: []string{"fruit", "apple", "banana", "orange"}, calories: 95, protein: 1, carbs: 25, fat: 0.3, fiber: 3, sugar: 18},
			{keywords: []string{"yogurt", "yoghurt"}, calories: 120, protein: 10, carbs: 9, fat: 5, sugar: 9},
			{keywords: []string{"cheese"}, calories: 110, protein: 7, carbs: 1, fat: 9},
			{keywords: []string{"milk"}, calories: 120, protein: 8, carbs: 12, fat: 5, sugar: 12},
			{keywords: []string{"nuts", "almond", "peanut"}, calories: 170, protein: 6, carbs: 6, fat: 15, fiber: 3},
			{keywords: []string{"pizza"}, calories: 560, protein: 22, carbs: 66, fat: 24, fiber: 4, sugar: 8},
			{keywords: []string{"burger"}, calories: 540, protein: 26, carbs: 45, fat: 28, sugar: 9},
			{keywords: []string{"fries", "fried"}, calories: 320, protein: 4, carbs: 40, fat: 16, fiber: 3},
			{keywords: []string{"cake", "cookie", "dessert", "chocolate"}, calories: 380, protein: 4, carbs: 50, fat: 18, sugar: 35},
			{keywords: []string{"soda", "cola", "juice"}, calories: 140, protein: 0, carbs: 38, fat: 0, sugar: 36},
			{keywords: []string{"soup"}, calories: 130, protein: 7, carbs: 16, fat: 4, fiber: 2},
		},
	}
}

// defaultMeal is used when no keyword matches so every log still yields an
// analysis row.
var defaultMeal = Result{Calories: 400, ProteinG: 18, CarbsG: 45, FatG: 15, SugarG: 8, FiberG: 3}

func (a *Analyzer) Analyze(description string) Result {
	lowered := strings.ToLower(description)

	var res Result
	matched := false
	for _, p := range a.profiles {
		for _, kw := range p.keywords {
			if strings.Contains(lowered, kw) {
				res.Calories += p.calories
				res.ProteinG += p.protein
				res.CarbsG += p.carbs
				res.FatG += p.fat
				res.SugarG += p.sugar
				res.FiberG += p.fiber
				matched = true
				break
			}
		}
	}

	if !matched {
		res = defaultMeal
	}

	res.Recommendation = recommend(res)
	return res
}

func recommend(r Result) string {
	switch {
	case r.SugarG > 30:
		return "This meal is high in sugar. Swap sweetened items for fruit or unsweetened alternatives."
	case r.Calories > 700:
		return "This is a calorie-dense meal. Balance the rest of the day with lighter, vegetable-forward meals."
	case r.ProteinG < 15:
		return "Protein is on the low side. Add a palm-sized portion of lean meat, fish, eggs or legumes."
	case r.FiberG < 3:
		return "Fiber is low here. Add vegetables, fruit or wholegrains to support digestion and satiety."
	default:
		return "Nicely balanced meal. Keep portions consistent and stay hydrated."
	}
}
