package blocks

import "landing-builder-backend/internal/models"

// Template is a prebuilt section with placeholder content. Tags drive the
// free-text matching in Library.Match; the Section value itself is never
// handed out directly, callers get deep copies from Instantiate.
type Template struct {
	ID          string
	Type        models.SectionType
	Name        string
	Description string
	Tags        []string
	Section     models.Section
}

func defaultCatalog() []Template {
	return []Template{
		{
			ID:          "hero-full-width",
			Type:        models.SectionHero,
			Name:        "Full Width Hero",
			Description: "Large headline with subheadline and CTA",
			Tags:        []string{"business", "professional", "wide"},
			Section: &models.HeroSection{
				SectionBase:     models.SectionBase{Type: models.SectionHero, Order: 0},
				Variant:         "full-width",
				Headline:        "Transform Your Business with Our Solution",
				Subheadline:     "Join thousands of satisfied customers who have revolutionized their workflow",
				CTAText:         "Get Started",
				CTAURL:          "#",
				BackgroundImage: "https://placehold.co/1200x600?text=Hero+Background",
				ShowForm:        false,
				FormFields:      []models.FormField{},
			},
		},
		{
			ID:          "hero-split",
			Type:        models.SectionHero,
			Name:        "Split Layout Hero",
			Description: "Image on one side, text and CTA on the other",
			Tags:        []string{"split", "modern", "product"},
			Section: &models.HeroSection{
				SectionBase:     models.SectionBase{Type: models.SectionHero, Order: 0},
				Variant:         "split",
				Headline:        "Innovative Solutions for Modern Problems",
				Subheadline:     "Our cutting-edge technology delivers results you can measure",
				CTAText:         "Try Free Demo",
				CTAURL:          "#",
				BackgroundImage: "https://placehold.co/600x400?text=Product+Image",
				ShowForm:        false,
				FormFields:      []models.FormField{},
			},
		},
		{
			ID:          "hero-academia",
			Type:        models.SectionHero,
			Name:        "Hero para Academia",
			Description: "Hero com chamada de matricula para academias e estudios fitness",
			Tags:        []string{"academia", "gym", "fitness", "treino", "musculacao"},
			Section: &models.HeroSection{
				SectionBase:     models.SectionBase{Type: models.SectionHero, Order: 0},
				Variant:         "full-width",
				Headline:        "Transforme Seu Corpo, Transforme Sua Vida",
				Subheadline:     "Treinos personalizados, equipamentos de ponta e professores dedicados ao seu resultado",
				CTAText:         "Agende uma Aula Experimental",
				CTAURL:          "#",
				BackgroundImage: "https://placehold.co/1200x600?text=Academia",
				ShowForm:        true,
				FormFields: []models.FormField{
					{ID: "nome-field", Type: "text", Label: "Nome", Placeholder: "Seu nome", Required: true},
					{ID: "whatsapp-field", Type: "tel", Label: "WhatsApp", Placeholder: "Seu WhatsApp", Required: true},
				},
			},
		},
		{
			ID:          "social-proof-testimonials",
			Type:        models.SectionSocialProof,
			Name:        "Customer Testimonials",
			Description: "Display customer testimonials and company logos",
			Tags:        []string{"testimonials", "ratings", "logos"},
			Section: &models.SocialProofSection{
				SectionBase: models.SectionBase{Type: models.SectionSocialProof, Order: 1},
				Testimonials: []models.Testimonial{
					{
						ID:      "testimonial-1",
						Name:    "John Doe",
						Role:    "CEO, Company Inc.",
						Content: "This product completely transformed our business operations.",
						Avatar:  "https://placehold.co/80x80?text=JD",
						Rating:  5,
					},
				},
				Logos: []string{
					"https://placehold.co/120x60?text=Logo+1",
					"https://placehold.co/120x60?text=Logo+2",
					"https://placehold.co/120x60?text=Logo+3",
				},
				ShowRatings: true,
			},
		},
		{
			ID:          "features-grid",
			Type:        models.SectionFeatures,
			Name:        "Feature Grid",
			Description: "3-column grid showcasing key features",
			Tags:        []string{"grid", "icons", "benefits"},
			Section: &models.FeaturesSection{
				SectionBase: models.SectionBase{Type: models.SectionFeatures, Order: 2},
				Title:       "Amazing Features",
				Subtitle:    "Everything you need to succeed",
				Items: []models.FeatureItem{
					{ID: "feature-1", Title: "Easy Integration", Description: "Connect with your existing tools in minutes", Icon: "Zap"},
					{ID: "feature-2", Title: "Secure Platform", Description: "Enterprise-grade security for your peace of mind", Icon: "Shield"},
					{ID: "feature-3", Title: "24/7 Support", Description: "Our team is always ready to help", Icon: "Headphones"},
				},
				Columns: 3,
			},
		},
		{
			ID:          "features-academia",
			Type:        models.SectionFeatures,
			Name:        "Diferenciais da Academia",
			Description: "Grade de beneficios para academias e estudios de treino",
			Tags:        []string{"academia", "gym", "fitness", "beneficios", "estrutura"},
			Section: &models.FeaturesSection{
				SectionBase: models.SectionBase{Type: models.SectionFeatures, Order: 1},
				Title:       "Por Que Treinar Conosco",
				Subtitle:    "Estrutura completa para voce alcancar seus objetivos",
				Items: []models.FeatureItem{
					{ID: "feature-equip", Title: "Equipamentos Modernos", Description: "Aparelhos novos e revisados para treinos seguros", Icon: "Dumbbell"},
					{ID: "feature-prof", Title: "Professores Qualificados", Description: "Acompanhamento individual em todos os horarios", Icon: "Users"},
					{ID: "feature-horario", Title: "Horario Estendido", Description: "Aberto das 6h as 23h, todos os dias", Icon: "Clock"},
				},
				Columns: 3,
			},
		},
		{
			ID:          "pricing-table",
			Type:        models.SectionPricing,
			Name:        "Simple Pricing Table",
			Description: "Three-tier pricing with clear value proposition",
			Tags:        []string{"table", "tiers", "value"},
			Section: &models.PricingSection{
				SectionBase: models.SectionBase{Type: models.SectionPricing, Order: 3},
				Tiers: []models.PricingTier{
					{
						ID: "tier-basic", Name: "Basic", Price: "$19", Period: "/month",
						Features: []string{"Up to 5 users", "1GB storage", "Email support"},
						CTAText:  "Get Started", CTAURL: "#", Highlighted: false,
					},
					{
						ID: "tier-pro", Name: "Professional", Price: "$49", Period: "/month",
						Features: []string{"Up to 20 users", "10GB storage", "Priority support", "Advanced features"},
						CTAText:  "Try Free", CTAURL: "#", Highlighted: true,
					},
					{
						ID: "tier-enterprise", Name: "Enterprise", Price: "$99", Period: "/month",
						Features: []string{"Unlimited users", "Unlimited storage", "24/7 dedicated support", "Custom integrations"},
						CTAText:  "Contact Sales", CTAURL: "#", Highlighted: false,
					},
				},
			},
		},
		{
			ID:          "faq-basic",
			Type:        models.SectionFAQ,
			Name:        "Basic FAQ",
			Description: "Common questions with expandable answers",
			Tags:        []string{"questions", "answers", "support"},
			Section: &models.FAQSection{
				SectionBase: models.SectionBase{Type: models.SectionFAQ, Order: 4},
				Items: []models.FAQItem{
					{ID: "faq-1", Question: "How does it work?", Answer: "Our platform connects seamlessly with your existing systems to provide instant value."},
					{ID: "faq-2", Question: "What is your refund policy?", Answer: "We offer a 30-day money-back guarantee on all plans."},
					{ID: "faq-3", Question: "Can I change plans later?", Answer: "Yes, you can upgrade or downgrade at any time."},
				},
				DefaultOpen: "faq-1",
			},
		},
		{
			ID:          "contact-form",
			Type:        models.SectionContact,
			Name:        "Contact Form",
			Description: "Simple contact form with business information",
			Tags:        []string{"form", "information", "support"},
			Section: &models.ContactSection{
				SectionBase: models.SectionBase{Type: models.SectionContact, Order: 5},
				Title:       "Get in Touch",
				Subtitle:    "Have questions? We're here to help.",
				Email:       "contact@example.com",
				Phone:       "+1 (555) 123-4567",
				Address:     "123 Business Ave, Suite 100, City, Country",
				ShowForm:    true,
				FormFields: []models.FormField{
					{ID: "name-field", Type: "text", Label: "Name", Placeholder: "Your name", Required: true},
					{ID: "email-field", Type: "email", Label: "Email", Placeholder: "Your email", Required: true},
					{ID: "message-field", Type: "textarea", Label: "Message", Placeholder: "How can we help you?", Required: true},
				},
				CTAText: "Send Message",
			},
		},
		{
			ID:          "gallery-grid",
			Type:        models.SectionGallery,
			Name:        "Image Gallery Grid",
			Description: "Responsive grid of portfolio or product images",
			Tags:        []string{"portfolio", "images", "projects"},
			Section: &models.GallerySection{
				SectionBase: models.SectionBase{Type: models.SectionGallery, Order: 6},
				Title:       "Our Work",
				Subtitle:    "See what we've accomplished",
				Images: []models.GalleryImage{
					{ID: "img-1", URL: "https://placehold.co/400x300?text=Project+1", Alt: "Project 1", Caption: "Project 1 Description"},
					{ID: "img-2", URL: "https://placehold.co/400x300?text=Project+2", Alt: "Project 2", Caption: "Project 2 Description"},
					{ID: "img-3", URL: "https://placehold.co/400x300?text=Project+3", Alt: "Project 3", Caption: "Project 3 Description"},
				},
				Layout: "grid",
			},
		},
		{
			ID:          "carousel-showcase",
			Type:        models.SectionCarousel,
			Name:        "Image Carousel",
			Description: "Rotating showcase of products or services",
			Tags:        []string{"slider", "products", "showcase"},
			Section: &models.CarouselSection{
				SectionBase: models.SectionBase{Type: models.SectionCarousel, Order: 7},
				Title:       "Featured Products",
				Items: []models.CarouselItem{
					{ID: "slide-1", Title: "Product Feature 1", Description: "Description of the amazing feature", ImageURL: "https://placehold.co/800x400?text=Product+1"},
					{ID: "slide-2", Title: "Product Feature 2", Description: "Another great feature worth highlighting", ImageURL: "https://placehold.co/800x400?text=Product+2"},
					{ID: "slide-3", Title: "Product Feature 3", Description: "Final feature that seals the deal", ImageURL: "https://placehold.co/800x400?text=Product+3"},
				},
				AutoPlay: true,
			},
		},
		{
			ID:          "testimonials-grid",
			Type:        models.SectionTestimonials,
			Name:        "Testimonial Grid",
			Description: "Grid of customer testimonials with ratings",
			Tags:        []string{"reviews", "feedback", "success"},
			Section: &models.TestimonialsSection{
				SectionBase: models.SectionBase{Type: models.SectionTestimonials, Order: 8},
				Title:       "What Our Customers Say",
				Subtitle:    "Don't just take our word for it",
				Testimonials: []models.Testimonial{
					{
						ID: "cust-testimonial-1", Name: "Sarah Johnson", Role: "Marketing Director",
						Content: "This platform helped increase our conversion rate by 40% in just two months.",
						Avatar:  "https://placehold.co/80x80?text=SJ", Rating: 5,
					},
					{
						ID: "cust-testimonial-2", Name: "Michael Chen", Role: "CTO",
						Content: "Implementation was seamless and the ROI was immediate.",
						Avatar:  "https://placehold.co/80x80?text=MC", Rating: 5,
					},
				},
			},
		},
		{
			ID:          "cta-primary",
			Type:        models.SectionCTA,
			Name:        "Primary Call to Action",
			Description: "Bold section encouraging user action",
			Tags:        []string{"action", "conversion", "button"},
			Section: &models.CTASection{
				SectionBase: models.SectionBase{Type: models.SectionCTA, Order: 9},
				Title:       "Ready to Get Started?",
				Subtitle:    "Join thousands of satisfied customers today",
				CTAText:     "Sign Up Now",
				CTAURL:      "#",
				Variant:     "primary",
			},
		},
		{
			ID:          "footer-standard",
			Type:        models.SectionFooter,
			Name:        "Standard Footer",
			Description: "Professional footer with links and copyright",
			Tags:        []string{"links", "legal", "copyright"},
			Section: &models.FooterSection{
				SectionBase:  models.SectionBase{Type: models.SectionFooter, Order: 10},
				FinalCTAText: "Subscribe to our newsletter",
				FinalCTAURL:  "#",
				SocialLinks: []models.SocialLink{
					{Platform: "Twitter", URL: "#"},
					{Platform: "LinkedIn", URL: "#"},
					{Platform: "Facebook", URL: "#"},
				},
				LegalLinks: []models.LegalLink{
					{Text: "Privacy Policy", URL: "#"},
					{Text: "Terms of Service", URL: "#"},
					{Text: "Cookie Policy", URL: "#"},
				},
				CopyrightText: "© 2026 Your Company. All rights reserved.",
			},
		},
	}
}
