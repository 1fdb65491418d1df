package seed

import (
	"github.com/google/uuid"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// SupportResources returns the national bereavement organisations served by
// the support directory.
func SupportResources() []domain.SupportResource {
	resources := []domain.SupportResource{
		{
			Name:         "Cruse Bereavement Support",
			Description:  "Free bereavement support, counselling services, and information.",
			Contact:      "0808 808 1677",
			Availability: "Mon-Fri 9:30am-5pm, Sat 10am-2pm",
			Type:         "Counselling",
			Category:     "emotional",
			Specialties:  []string{"Individual counselling", "Group support", "Children's support"},
		},
		{
			Name:         "Samaritans",
			Description:  "Emotional support for anyone in emotional distress, thinking of suicide, or worried about someone else.",
			Contact:      "116 123",
			Availability: "24/7",
			Type:         "Crisis support",
			Category:     "emotional",
			Specialties:  []string{"Crisis support", "Suicide prevention", "Emotional listening"},
		},
		{
			Name:         "Citizens Advice",
			Description:  "Free, confidential advice on legal, financial, and practical matters.",
			Contact:      "0808 223 1133",
			Availability: "Mon-Fri 9am-5pm",
			Type:         "Advice",
			Category:     "practical",
			Services:     []string{"Legal advice", "Financial guidance", "Benefits information", "Debt advice"},
		},
		{
			Name:         "Age UK",
			Description:  "Support and advice for older people, including bereavement support.",
			Contact:      "0800 169 6565",
			Availability: "Daily 8am-7pm",
			Type:         "Age-specific",
			Category:     "practical",
			Services:     []string{"Practical support", "Befriending", "Legal advice", "Benefits guidance"},
		},
	}

	for i := range resources {
		resources[i].ID = uuid.NewString()
	}
	return resources
}
