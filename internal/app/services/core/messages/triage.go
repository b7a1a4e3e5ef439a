package messages

import (
	"postcare-service/internal/pkg/constvars"
	"strings"
)

// urgencyKeywords force a message to urgent status regardless of its
// category. Matching is case-insensitive substring matching.
var urgencyKeywords = []string{
	"emergency",
	"urgent",
	"pain",
	"help",
	"severe",
	"critical",
}

// categoryRules are evaluated in order; the first rule with a matching
// keyword wins. Medication questions mentioning side-effect symptoms should
// still land in medication, so it is checked first.
var categoryRules = []struct {
	category string
	keywords []string
}{
	{
		category: constvars.MessageCategoryMedication,
		keywords: []string{"medication", "medicine", "pill", "dose", "dosage", "prescription", "refill"},
	},
	{
		category: constvars.MessageCategorySymptom,
		keywords: []string{"pain", "fever", "swelling", "swollen", "nausea", "dizzy", "bleeding", "symptom", "hurt", "infection"},
	},
	{
		category: constvars.MessageCategoryEmergency,
		keywords: []string{"emergency", "urgent", "critical", "severe", "help"},
	},
}

// IsUrgent reports whether the message body contains an urgency keyword.
func IsUrgent(message string) bool {
	lowered := strings.ToLower(message)
	for _, keyword := range urgencyKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}

// ClassifyCategory assigns a category from the message body. It falls back
// to general when no rule matches.
func ClassifyCategory(message string) string {
	lowered := strings.ToLower(message)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lowered, keyword) {
				return rule.category
			}
		}
	}
	return constvars.MessageCategoryGeneral
}
