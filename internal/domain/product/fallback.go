package product

// Catalog is a finite, read-only map of product records keyed by id. The
// resolver consults it when the live store is unreachable or has no row for
// the requested id.
type Catalog map[string]Product

// FallbackCatalog returns the fixed records served when the live store cannot
// answer. The id scheme matches the live table.
func FallbackCatalog() Catalog {
	return Catalog{
		"1": {
			ID:            "1",
			Name:          "AI Tools Mastery Guide 2025",
			Description:   "Step by step how to create an online business in full with 30 lessons: 10x on LLMs (ChatGPT/Gemini/etc), 10x on Replit/Claude, 10x on Cursor/Trae - 90% of what you need to build an online business yourself.",
			Price:         25.00,
			OriginalPrice: 50.00,
			ImageURL:      "/images/products/ai-tools-mastery-guide.svg",
			Category:      "courses",
			IsActive:      true,
			ProductType:   TypeDigital,
			Benefits: []string{
				"10x lessons on LLMs: ChatGPT, Gemini & AI tools for business building",
				"10x lessons on Replit & Claude for development and automation",
				"10x lessons on Cursor & Trae AI for advanced coding and implementation",
				"Complete step-by-step guide covering 90% of online business creation",
				"Comprehensive 30-lesson structure for complete business mastery",
				"Everything you need to build an online business yourself",
			},
			Details: map[string]any{
				"lessons":        30,
				"format":         "PDF Guide",
				"language":       "English",
				"level":          "Beginner to Advanced",
				"downloadSize":   "3.2 MB",
				"completionTime": "2-3 weeks",
			},
		},
		"2": {
			ID:            "2",
			Name:          "30x AI Prompts",
			Description:   "Full project structure split into 30x prompts, feed into ChatGPT. Save the project, adjust prompts best suited for your goals & get to work. This is the most cost effective option because it requires the most work from you to put everything together.",
			Price:         10.00,
			OriginalPrice: 25.00,
			ImageURL:      "/images/products/ai-prompts-arsenal.svg",
			Category:      "tools",
			IsFeatured:    true,
			IsActive:      true,
			ProductType:   TypeDigital,
			Benefits: []string{
				"30x proven AI prompts for instant business planning",
				"Prompts structured for start-finish online business build",
				"Complete ecommerce, marketing & scaling strategies included",
				"No experience required, follow the steps, ask your project questions, this structure will set the foundation",
			},
			Details: map[string]any{
				"promptCount":   30,
				"format":        "PDF",
				"language":      "English",
				"compatibility": "ChatGPT, Claude, Gemini, and other AI tools",
				"downloadSize":  "1.2 MB",
			},
		},
		"3": {
			ID:          "3",
			Name:        "Complete Business Deployment Coaching",
			Description: "The ultimate solution for entrepreneurs who want complete knowledge and guidance to deploy a custom-built website or online business from start to finish. Take full ownership of your front-end and back-end with the ability to edit and customize on the fly.",
			Price:       500.00,
			ImageURL:    "/images/products/ai-business-strategy-session.svg",
			Category:    "services",
			IsActive:    true,
			ProductType: TypeDigital,
			Benefits: []string{
				"Complete knowledge transfer for full business ownership",
				"Custom website/business deployment from start to finish",
				"Front-end and back-end mastery for total control",
				"Edit and customize your site on the fly without dependencies",
				"Personalized coaching tailored to your specific business",
				"Comprehensive implementation support and guidance",
				"Long-term independence and self-sufficiency",
			},
			Details: map[string]any{
				"duration":     "Multiple sessions",
				"format":       "Screen-recorded Google Meet sessions",
				"language":     "English",
				"deliverables": "Technical documentation, Implementation guides, Session recordings",
				"followUp":     "Email support included",
			},
		},
	}
}
