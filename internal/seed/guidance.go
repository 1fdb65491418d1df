package seed

import (
	"time"

	"github.com/google/uuid"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

func task(title, description string, extra map[string]string) map[string]any {
	m := map[string]any{
		"title":       title,
		"description": description,
	}
	for k, v := range extra {
		m[k] = v
	}
	return m
}

func contact(c string) map[string]string { return map[string]string{"contact": c} }
func notes(n string) map[string]string   { return map[string]string{"notes": n} }

// GuidanceItems returns the canonical guidance catalogue: immediate task
// lists per place of death, funeral planning notes per religion, and cost
// guides per budget band.
func GuidanceItems(now time.Time) []domain.GuidanceData {
	items := []domain.GuidanceData{
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "home",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Call 999 if death was unexpected",
						"If the death was sudden, unexpected, or you're unsure of the cause, call 999 immediately.",
						contact("Emergency: 999")),
					task("Call GP or out-of-hours service",
						"If the death was expected, contact the GP or out-of-hours service to verify the death.",
						contact("GP or call 111 for out-of-hours")),
					task("Contact funeral director",
						"Arrange for the body to be moved to a funeral home. Most funeral directors offer 24/7 service.",
						notes("You can change funeral directors later if needed")),
				},
				"important": []map[string]any{
					task("Inform close family and friends",
						"Contact immediate family members and close friends. Consider asking someone to help with calls.",
						notes("You don't need to inform everyone immediately")),
					task("Secure the property",
						"Ensure the home is secure and consider who has keys. Cancel any regular services if needed.",
						notes("Consider staying with family or having someone stay with you")),
					task("Look for important documents",
						"Locate will, insurance policies, pension details, and any funeral plans.",
						notes("Check for a safe, filing cabinet, or solicitor's details")),
				},
			},
		},
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "hospital",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Collect death certificate",
						"The hospital will provide a medical certificate of cause of death. You'll need this to register the death.",
						contact("Hospital bereavement office")),
					task("Arrange body collection",
						"Decide if you want the body moved to a funeral home or mortuary. Hospital can store temporarily.",
						notes("You have time to make this decision")),
					task("Contact funeral director",
						"Choose a funeral director to handle arrangements. They can collect from the hospital.",
						notes("Hospital can provide local recommendations")),
				},
				"important": []map[string]any{
					task("Collect personal belongings",
						"Gather all personal items from the hospital. Check with nursing staff about what needs collecting.",
						notes("Hospital will keep items safe for a reasonable time")),
					task("Inform close family and friends",
						"Contact immediate family members and close friends. Hospital may have a quiet room for calls.",
						notes("Hospital chaplain or bereavement officer can help if needed")),
					task("Register the death",
						"Register the death with the local registrar within 5 days. You'll need the medical certificate.",
						contact("Local registrar office")),
				},
			},
		},
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "care_home",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Speak with care home manager",
						"The care home will have procedures in place. They'll guide you through the immediate steps.",
						contact("Care home manager or senior staff")),
					task("Collect death certificate",
						"The care home will arrange for GP to issue medical certificate of cause of death.",
						notes("Care home will coordinate with GP")),
					task("Arrange funeral director",
						"Choose a funeral director. The care home may have recommendations and can coordinate collection.",
						notes("Care home can help with arrangements")),
				},
				"important": []map[string]any{
					task("Collect personal belongings",
						"Gather all personal items from the care home room. Staff will help identify everything.",
						notes("No rush - care home will keep items safe")),
					task("Inform family and friends",
						"Contact immediate family members and close friends. Care home may have a quiet space available.",
						notes("Care home staff can provide support")),
					task("Settle care home account",
						"Discuss final payments and any deposits with the care home finance team.",
						notes("This can usually wait a few days")),
				},
			},
		},
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "hospice",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Speak with hospice staff",
						"Hospice team will guide you through the process. They have experience with all procedures.",
						contact("Hospice nursing staff or manager")),
					task("Collect death certificate",
						"Hospice will arrange for medical certificate of cause of death to be issued.",
						notes("Usually handled by hospice doctor")),
					task("Arrange funeral director",
						"Choose a funeral director. Hospice can recommend local services and coordinate collection.",
						notes("Hospice can help with arrangements")),
				},
				"important": []map[string]any{
					task("Collect personal belongings",
						"Gather all personal items from the hospice room. Staff will help you identify everything.",
						notes("Take your time - hospice will keep items safe")),
					task("Speak with bereavement support",
						"Most hospices offer ongoing bereavement support. Speak with the support team.",
						notes("Support continues after death")),
					task("Inform family and friends",
						"Contact immediate family members and close friends. Hospice has quiet spaces available.",
						notes("Hospice staff can provide emotional support")),
				},
			},
		},
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "public",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Call 999 immediately",
						"Any death in a public place requires immediate emergency response.",
						contact("Emergency: 999")),
					task("Wait for police/ambulance",
						"Stay at the scene until emergency services arrive. They will take control of the situation.",
						notes("Police will investigate any sudden death")),
					task("Contact coroner's office",
						"Deaths in public places typically require coroner involvement. Police will coordinate this.",
						notes("Coroner will decide if inquest is needed")),
				},
				"important": []map[string]any{
					task("Inform close family",
						"Contact immediate family members. Consider asking someone to help with calls.",
						notes("You may need emotional support")),
					task("Gather witness information",
						"If there were witnesses, police will take statements. Note any relevant information.",
						notes("Police will handle formal witness statements")),
					task("Contact family solicitor",
						"Consider legal advice, especially if circumstances are complex.",
						notes("May be needed depending on circumstances")),
				},
			},
		},
		{
			Category: domain.GuidanceImmediateTasks,
			Location: "other",
			Data: map[string]any{
				"critical": []map[string]any{
					task("Contact appropriate authorities",
						"Depending on location, contact police, medical services, or relevant authorities.",
						contact("Emergency: 999 or 111")),
					task("Secure death certificate",
						"Ensure medical certificate of cause of death is properly issued.",
						notes("Required for registration")),
					task("Arrange funeral director",
						"Choose a funeral director to handle collection and arrangements.",
						notes("They can guide you through the process")),
				},
				"important": []map[string]any{
					task("Inform close family",
						"Contact immediate family members and close friends.",
						notes("Consider asking for help with calls")),
					task("Gather important documents",
						"Collect all relevant documents and identification.",
						notes("Will be needed for various procedures")),
					task("Secure arrangements",
						"Ensure all immediate arrangements are properly coordinated.",
						notes("Take time to understand all requirements")),
				},
			},
		},

		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "christian",
			Data: map[string]any{
				"title":       "Christian Funeral",
				"description": "Christian funerals typically include a church service with prayers, hymns, and readings from the Bible.",
				"considerations": []string{
					"Contact the church where the service will be held",
					"Arrange for a priest, minister, or pastor to officiate",
					"Choose appropriate hymns and Bible readings",
					"Consider communion if appropriate to the denomination",
					"Decide on burial or cremation based on family beliefs",
					"Plan for church flowers and decorations",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "muslim",
			Data: map[string]any{
				"title":       "Islamic Funeral",
				"description": "Islamic funerals follow specific religious requirements including ritual washing, shrouding, and burial.",
				"considerations": []string{
					"Contact the local mosque or Islamic centre immediately",
					"Arrange for ritual washing (Ghusl) and shrouding (Kafan)",
					"Burial should occur as soon as possible, ideally within 24 hours",
					"Funeral prayer (Salat al-Janazah) at mosque or graveside",
					"Burial (not cremation) in Muslim section of cemetery",
					"Consider arrangements for three days of mourning",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "jewish",
			Data: map[string]any{
				"title":       "Jewish Funeral",
				"description": "Jewish funerals emphasize simplicity and respect, with specific rituals and timing requirements.",
				"considerations": []string{
					"Contact the synagogue or Jewish burial society (Chevra Kadisha)",
					"Arrange for ritual washing and preparation of the body",
					"Burial should occur as soon as possible, preferably within 24 hours",
					"Simple wooden coffin is traditional",
					"Burial (not cremation) in Jewish cemetery",
					"Plan for seven days of mourning (Shiva) after funeral",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "hindu",
			Data: map[string]any{
				"title":       "Hindu Funeral",
				"description": "Hindu funerals traditionally involve cremation with specific rituals and ceremonies.",
				"considerations": []string{
					"Contact the local Hindu temple or community centre",
					"Arrange for ritual bathing and dressing of the body",
					"Cremation is preferred, usually within 24 hours",
					"Family may wish to perform last rites (Antyesti)",
					"Consider arrangements for 13 days of mourning",
					"Plan for scattering of ashes in sacred water if possible",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "buddhist",
			Data: map[string]any{
				"title":       "Buddhist Funeral",
				"description": "Buddhist funerals focus on meditation, chanting, and helping the deceased's spiritual journey.",
				"considerations": []string{
					"Contact the local Buddhist temple or community",
					"Arrange for monks to perform chanting and rituals",
					"Both burial and cremation are acceptable",
					"Consider period of meditation and prayer",
					"Simple, peaceful ceremony reflecting Buddhist values",
					"Plan for merit-making activities for the deceased",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "sikh",
			Data: map[string]any{
				"title":       "Sikh Funeral",
				"description": "Sikh funerals emphasize equality and simplicity with specific prayers and cremation.",
				"considerations": []string{
					"Contact the local Gurdwara (Sikh temple)",
					"Arrange for ritual bathing and the five Ks",
					"Cremation is preferred religious practice",
					"Sikh prayers (Ardas) and hymns (Kirtan) during service",
					"Simple ceremony reflecting Sikh values of equality",
					"Plan for community meal (Langar) after service",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "secular",
			Data: map[string]any{
				"title":       "Secular/Non-religious Funeral",
				"description": "Secular funerals focus on celebrating the person's life without religious content.",
				"considerations": []string{
					"Choose a celebrant or family member to officiate",
					"Select meaningful music, poems, or readings",
					"Include personal stories and memories",
					"Consider both burial and cremation options",
					"Plan tributes that reflect the person's values and interests",
					"Create a service that celebrates their unique life",
				},
			},
		},
		{
			Category: domain.GuidanceFuneralPlanning,
			Religion: "other",
			Data: map[string]any{
				"title":       "Other Religious/Cultural Funeral",
				"description": "Different faiths and cultures have unique funeral traditions and requirements.",
				"considerations": []string{
					"Contact the relevant religious or cultural leader",
					"Research specific requirements for the faith/culture",
					"Arrange appropriate rituals and ceremonies",
					"Consider timing requirements and restrictions",
					"Plan for community involvement as appropriate",
					"Respect traditional practices and customs",
				},
			},
		},

		{
			Category: domain.GuidanceBudgetGuide,
			Budget:   "low",
			Data: map[string]any{
				"title":       "Budget-Conscious Funeral (Under £3,000)",
				"description": "A simple but dignified funeral focusing on essential elements.",
				"costs": []map[string]string{
					{"item": "Funeral director fees", "range": "£800-£1,200"},
					{"item": "Cremation", "range": "£300-£500"},
					{"item": "Simple coffin", "range": "£200-£400"},
					{"item": "Hearse", "range": "£200-£300"},
					{"item": "Simple service", "range": "£100-£200"},
					{"item": "Death certificates", "range": "£20-£40"},
					{"item": "Flowers (basic)", "range": "£50-£100"},
					{"item": "Catering (simple)", "range": "£200-£400"},
				},
				"tips": []string{
					"Choose cremation over burial to save on grave costs",
					"Select a simple coffin - it doesn't affect the dignity of the service",
					"Limit the number of cars in the funeral procession",
					"Hold the wake at home or community centre",
					"Ask family to provide flowers instead of hiring a florist",
					"Consider direct cremation for very low cost option",
				},
			},
		},
		{
			Category: domain.GuidanceBudgetGuide,
			Budget:   "medium",
			Data: map[string]any{
				"title":       "Standard Funeral (£3,000 - £6,000)",
				"description": "A traditional funeral with most standard elements included.",
				"costs": []map[string]string{
					{"item": "Funeral director fees", "range": "£1,200-£2,000"},
					{"item": "Cremation/burial", "range": "£500-£1,000"},
					{"item": "Standard coffin", "range": "£400-£800"},
					{"item": "Hearse + family car", "range": "£400-£600"},
					{"item": "Church/ceremony", "range": "£200-£400"},
					{"item": "Death certificates", "range": "£20-£40"},
					{"item": "Flowers", "range": "£150-£300"},
					{"item": "Catering", "range": "£400-£800"},
				},
				"tips": []string{
					"Compare quotes from multiple funeral directors",
					"Consider pre-paid funeral plans for future savings",
					"Ask about package deals that include most services",
					"Choose flowers that are in season",
					"Consider buffet-style catering to reduce costs",
					"Ask about payment plans if needed",
				},
			},
		},
		{
			Category: domain.GuidanceBudgetGuide,
			Budget:   "high",
			Data: map[string]any{
				"title":       "Premium Funeral (£6,000 - £10,000)",
				"description": "A more elaborate funeral with additional services and higher-quality options.",
				"costs": []map[string]string{
					{"item": "Funeral director fees", "range": "£2,000-£3,000"},
					{"item": "Burial plot + service", "range": "£1,000-£2,000"},
					{"item": "Premium coffin", "range": "£800-£1,500"},
					{"item": "Multiple cars", "range": "£600-£1,000"},
					{"item": "Church + organist", "range": "£400-£600"},
					{"item": "Memorial stone", "range": "£500-£1,000"},
					{"item": "Elaborate flowers", "range": "£300-£600"},
					{"item": "Catering venue", "range": "£800-£1,500"},
				},
				"tips": []string{
					"Choose a reputable funeral director with good reviews",
					"Consider the long-term costs of grave maintenance",
					"Premium doesn't always mean better - focus on what matters",
					"Ask about eco-friendly premium options",
					"Plan the service to reflect the person's personality",
					"Consider live streaming for distant relatives",
				},
			},
		},
		{
			Category: domain.GuidanceBudgetGuide,
			Budget:   "premium",
			Data: map[string]any{
				"title":       "Luxury Funeral (Over £10,000)",
				"description": "An elaborate funeral with premium services and personalized touches.",
				"costs": []map[string]string{
					{"item": "Premium funeral director", "range": "£3,000-£5,000"},
					{"item": "Prime burial plot", "range": "£2,000-£4,000"},
					{"item": "Luxury coffin/casket", "range": "£1,500-£3,000"},
					{"item": "Full car procession", "range": "£1,000-£2,000"},
					{"item": "Cathedral/premium venue", "range": "£600-£1,200"},
					{"item": "Elaborate memorial", "range": "£1,000-£3,000"},
					{"item": "Designer flowers", "range": "£600-£1,200"},
					{"item": "Premium catering", "range": "£1,500-£3,000"},
				},
				"tips": []string{
					"Work with experienced funeral directors for complex arrangements",
					"Consider unique personalization options",
					"Plan well in advance for premium venues",
					"Think about lasting memorials and tributes",
					"Consider the wishes of the deceased above all else",
					"Ensure all legal requirements are met despite complexity",
				},
			},
		},
		{
			Category: domain.GuidanceBudgetGuide,
			Budget:   "unsure",
			Data: map[string]any{
				"title":       "Flexible Budget Planning",
				"description": "Guidelines for planning when budget is uncertain or flexible.",
				"costs": []map[string]string{
					{"item": "Basic funeral director", "range": "£800-£3,000"},
					{"item": "Cremation or burial", "range": "£300-£2,000"},
					{"item": "Coffin (various options)", "range": "£200-£2,000"},
					{"item": "Transport options", "range": "£200-£1,000"},
					{"item": "Service venue", "range": "£100-£800"},
					{"item": "Flowers (flexible)", "range": "£50-£800"},
					{"item": "Catering (various)", "range": "£200-£2,000"},
					{"item": "Additional services", "range": "£100-£1,000"},
				},
				"tips": []string{
					"Start with essential services and add extras as budget allows",
					"Get detailed quotes from multiple providers",
					"Consider what the deceased would have wanted",
					"Ask about payment plans and financial assistance",
					"Remember that meaningful doesn't have to be expensive",
					"Focus on creating a service that honors their memory",
				},
			},
		},
	}

	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].CreatedAt = now
	}
	return items
}
