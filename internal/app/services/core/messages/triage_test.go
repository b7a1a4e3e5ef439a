package messages

import (
	"postcare-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUrgent(t *testing.T) {
	t.Run("Urgency Keywords", func(t *testing.T) {
		assert.True(t, IsUrgent("I have severe pain in my leg"))
		assert.True(t, IsUrgent("This is an EMERGENCY"))
		assert.True(t, IsUrgent("please HELP me"))
		assert.True(t, IsUrgent("feeling critical after surgery"))
	})

	t.Run("Routine Messages", func(t *testing.T) {
		assert.False(t, IsUrgent("When is my next checkup?"))
		assert.False(t, IsUrgent("Thank you doctor"))
		assert.False(t, IsUrgent(""))
	})
}

func TestClassifyCategory(t *testing.T) {
	t.Run("Medication Before Symptom", func(t *testing.T) {
		// Mentions both a medication keyword and a symptom keyword; the
		// medication rule runs first.
		category := ClassifyCategory("The medication gives me nausea")
		assert.Equal(t, constvars.MessageCategoryMedication, category)
	})

	t.Run("Symptom", func(t *testing.T) {
		assert.Equal(t, constvars.MessageCategorySymptom, ClassifyCategory("I have a fever and swelling"))
		assert.Equal(t, constvars.MessageCategorySymptom, ClassifyCategory("my wound is bleeding"))
	})

	t.Run("Emergency", func(t *testing.T) {
		assert.Equal(t, constvars.MessageCategoryEmergency, ClassifyCategory("this is an emergency"))
	})

	t.Run("General Fallback", func(t *testing.T) {
		assert.Equal(t, constvars.MessageCategoryGeneral, ClassifyCategory("see you at the appointment"))
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		assert.Equal(t, constvars.MessageCategoryMedication, ClassifyCategory("Need a REFILL please"))
	})
}
