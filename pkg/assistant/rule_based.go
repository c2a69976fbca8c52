package assistant

import (
	"context"
	"fmt"
	"strings"
)

// RuleBasedGenerator answers nutrition questions from a fixed set of topic
// rules. It is the default backend when no external model is configured and
// keeps the chat flow testable without network calls.
type RuleBasedGenerator struct {
	rules []topicRule
}

type topicRule struct {
	keywords []string
	reply    string
}

func NewRuleBasedGenerator() *RuleBasedGenerator {
	return &RuleBasedGenerator{
		rules: []topicRule{
			{
				keywords: []string{"protein"},
				reply: "A practical protein target is 1.6-2.2 g per kg of body weight per day. " +
					"Spread it across 3-4 meals, with lean meat, fish, eggs, dairy or legumes as anchors.",
			},
			{
				keywords: []string{"lose weight", "weight loss", "fat loss", "deficit"},
				reply: "Sustainable fat loss comes from a moderate calorie deficit of 300-500 kcal per day. " +
					"Keep protein high to preserve muscle and favour whole foods that keep you full.",
			},
			{
				keywords: []string{"gain", "bulk", "muscle"},
				reply: "For muscle gain aim for a small surplus of 200-300 kcal per day above maintenance, " +
					"at least 1.8 g protein per kg, and progressive resistance training.",
			},
			{
				keywords: []string{"breakfast"},
				reply: "A balanced breakfast pairs protein with slow carbs. Greek yogurt with oats and berries, " +
					"or eggs with wholegrain toast, keeps energy steady until lunch.",
			},
			{
				keywords: []string{"carb", "carbohydrate"},
				reply: "Carbohydrates are your main training fuel. Prefer wholegrains, fruit and starchy " +
					"vegetables, and time larger portions around activity.",
			},
			{
				keywords: []string{"fat", "oil"},
				reply: "Dietary fat should be roughly 20-35% of calories. Prioritise olive oil, nuts, seeds " +
					"and oily fish, and keep trans fats out entirely.",
			},
			{
				keywords: []string{"water", "hydrat"},
				reply: "A reasonable baseline is 30-35 ml of water per kg of body weight daily, more in heat " +
					"or with heavy training. Pale urine is the simplest check.",
			},
			{
				keywords: []string{"vegan", "vegetarian", "plant"},
				reply: "On a plant-based diet combine legumes, grains, tofu and tempeh to cover all essential " +
					"amino acids, and watch B12, iron and omega-3 intake.",
			},
		},
	}
}

func (g *RuleBasedGenerator) Generate(ctx context.Context, history []Message, options ...Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	last := lastUserMessage(history)
	if last == "" {
		return "Hi! I'm your nutrition assistant. Ask me about meals, macros or your goals.", nil
	}

	lowered := strings.ToLower(last)
	for _, rule := range g.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.reply, nil
			}
		}
	}

	return fmt.Sprintf(
		"Thanks for sharing. Regarding %q: focus on whole foods, adequate protein and consistent meal timing. "+
			"Tell me more about your goal and I can be more specific.",
		truncate(last, 60),
	), nil
}

func lastUserMessage(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return strings.TrimSpace(history[i].Content)
		}
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
