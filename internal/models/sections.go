package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// SectionType identifies one of the closed set of section variants a landing
// page may contain.
type SectionType string

const (
	SectionHero         SectionType = "hero"
	SectionSocialProof  SectionType = "social-proof"
	SectionFAQ          SectionType = "faq"
	SectionPricing      SectionType = "pricing"
	SectionContact      SectionType = "contact"
	SectionFeatures     SectionType = "features"
	SectionGallery      SectionType = "gallery"
	SectionCarousel     SectionType = "carousel"
	SectionTestimonials SectionType = "testimonials"
	SectionCTA          SectionType = "cta"
	SectionFooter       SectionType = "footer"
)

// SectionTypes lists every known section type in catalog order.
func SectionTypes() []SectionType {
	return []SectionType{
		SectionHero,
		SectionSocialProof,
		SectionFAQ,
		SectionPricing,
		SectionContact,
		SectionFeatures,
		SectionGallery,
		SectionCarousel,
		SectionTestimonials,
		SectionCTA,
		SectionFooter,
	}
}

// Section is the interface implemented by every section variant. The concrete
// type is determined by the "type" discriminator on the wire.
type Section interface {
	SectionType() SectionType
	Base() *SectionBase
}

// SectionBase carries the fields shared by every section variant.
type SectionBase struct {
	ID        string            `json:"id" validate:"required"`
	Type      SectionType       `json:"type" validate:"required"`
	Order     int               `json:"order"`
	ClassName string            `json:"className,omitempty"`
	Styles    map[string]string `json:"styles,omitempty"`
}

// FormField describes a single input of a lead-capture form.
type FormField struct {
	ID          string `json:"id" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=text email tel textarea"`
	Label       string `json:"label" validate:"required"`
	Placeholder string `json:"placeholder"`
	Required    bool   `json:"required"`
}

// Testimonial is a customer quote owned by a social-proof or testimonials
// section.
type Testimonial struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role" validate:"required"`
	Content string `json:"content" validate:"required"`
	Avatar  string `json:"avatar,omitempty"`
	Rating  int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	ID       string `json:"id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// PricingTier is one column of a pricing table.
type PricingTier struct {
	ID          string   `json:"id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	Period      string   `json:"period" validate:"required"`
	Features    []string `json:"features" validate:"required"`
	CTAText     string   `json:"ctaText" validate:"required"`
	CTAURL      string   `json:"ctaUrl,omitempty"`
	Highlighted bool     `json:"highlighted,omitempty"`
}

// FeatureItem is one cell of a features grid.
type FeatureItem struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon,omitempty"`
}

// GalleryImage is one entry of a gallery section.
type GalleryImage struct {
	ID      string `json:"id" validate:"required"`
	URL     string `json:"url" validate:"required"`
	Alt     string `json:"alt" validate:"required"`
	Caption string `json:"caption,omitempty"`
}

// CarouselItem is one slide of a carousel section.
type CarouselItem struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl" validate:"required"`
	Link        string `json:"link,omitempty"`
}

// SocialLink points at a social network profile.
type SocialLink struct {
	Platform string `json:"platform" validate:"required"`
	URL      string `json:"url" validate:"required"`
}

// LegalLink points at a legal document (privacy policy, terms, ...).
type LegalLink struct {
	Text string `json:"text" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

type HeroSection struct {
	SectionBase
	Variant         string      `json:"variant" validate:"required,oneof=full-width split video-bg vsl"`
	Headline        string      `json:"headline" validate:"required"`
	Subheadline     string      `json:"subheadline" validate:"required"`
	CTAText         string      `json:"ctaText" validate:"required"`
	CTAURL          string      `json:"ctaUrl,omitempty"`
	BackgroundImage string      `json:"backgroundImage,omitempty"`
	VideoURL        string      `json:"videoUrl,omitempty"`
	ShowForm        bool        `json:"showForm"`
	FormFields      []FormField `json:"formFields,omitempty" validate:"omitempty,dive"`
}

type SocialProofSection struct {
	SectionBase
	Testimonials []Testimonial `json:"testimonials" validate:"required,dive"`
	Logos        []string      `json:"logos"`
	ShowRatings  bool          `json:"showRatings"`
}

type FAQSection struct {
	SectionBase
	Items       []FAQItem `json:"items" validate:"required,dive"`
	DefaultOpen string    `json:"defaultOpen,omitempty"`
}

type PricingSection struct {
	SectionBase
	Tiers []PricingTier `json:"tiers" validate:"required,dive"`
}

type ContactSection struct {
	SectionBase
	Title      string      `json:"title" validate:"required"`
	Subtitle   string      `json:"subtitle,omitempty"`
	Email      string      `json:"email,omitempty"`
	Phone      string      `json:"phone,omitempty"`
	Address    string      `json:"address,omitempty"`
	ShowForm   bool        `json:"showForm"`
	FormFields []FormField `json:"formFields,omitempty" validate:"omitempty,dive"`
	CTAText    string      `json:"ctaText,omitempty"`
}

type FeaturesSection struct {
	SectionBase
	Title    string        `json:"title" validate:"required"`
	Subtitle string        `json:"subtitle,omitempty"`
	Items    []FeatureItem `json:"items" validate:"required,dive"`
	Columns  int           `json:"columns" validate:"oneof=2 3 4"`
}

type GallerySection struct {
	SectionBase
	Title    string         `json:"title,omitempty"`
	Subtitle string         `json:"subtitle,omitempty"`
	Images   []GalleryImage `json:"images" validate:"required,dive"`
	Layout   string         `json:"layout" validate:"required,oneof=grid masonry"`
}

type CarouselSection struct {
	SectionBase
	Title    string         `json:"title,omitempty"`
	Items    []CarouselItem `json:"items" validate:"required,dive"`
	AutoPlay bool           `json:"autoPlay"`
}

type TestimonialsSection struct {
	SectionBase
	Title        string        `json:"title" validate:"required"`
	Subtitle     string        `json:"subtitle,omitempty"`
	Testimonials []Testimonial `json:"testimonials" validate:"required,dive"`
}

type CTASection struct {
	SectionBase
	Title    string `json:"title" validate:"required"`
	Subtitle string `json:"subtitle,omitempty"`
	CTAText  string `json:"ctaText" validate:"required"`
	CTAURL   string `json:"ctaUrl,omitempty"`
	Variant  string `json:"variant,omitempty" validate:"omitempty,oneof=primary secondary"`
}

type FooterSection struct {
	SectionBase
	FinalCTAText  string       `json:"finalCtaText,omitempty"`
	FinalCTAURL   string       `json:"finalCtaUrl,omitempty"`
	SocialLinks   []SocialLink `json:"socialLinks,omitempty" validate:"omitempty,dive"`
	LegalLinks    []LegalLink  `json:"legalLinks,omitempty" validate:"omitempty,dive"`
	CopyrightText string       `json:"copyrightText" validate:"required"`
}

func (s *HeroSection) SectionType() SectionType         { return SectionHero }
func (s *SocialProofSection) SectionType() SectionType  { return SectionSocialProof }
func (s *FAQSection) SectionType() SectionType          { return SectionFAQ }
func (s *PricingSection) SectionType() SectionType      { return SectionPricing }
func (s *ContactSection) SectionType() SectionType      { return SectionContact }
func (s *FeaturesSection) SectionType() SectionType     { return SectionFeatures }
func (s *GallerySection) SectionType() SectionType      { return SectionGallery }
func (s *CarouselSection) SectionType() SectionType     { return SectionCarousel }
func (s *TestimonialsSection) SectionType() SectionType { return SectionTestimonials }
func (s *CTASection) SectionType() SectionType          { return SectionCTA }
func (s *FooterSection) SectionType() SectionType       { return SectionFooter }

func (s *HeroSection) Base() *SectionBase         { return &s.SectionBase }
func (s *SocialProofSection) Base() *SectionBase  { return &s.SectionBase }
func (s *FAQSection) Base() *SectionBase          { return &s.SectionBase }
func (s *PricingSection) Base() *SectionBase      { return &s.SectionBase }
func (s *ContactSection) Base() *SectionBase      { return &s.SectionBase }
func (s *FeaturesSection) Base() *SectionBase     { return &s.SectionBase }
func (s *GallerySection) Base() *SectionBase      { return &s.SectionBase }
func (s *CarouselSection) Base() *SectionBase     { return &s.SectionBase }
func (s *TestimonialsSection) Base() *SectionBase { return &s.SectionBase }
func (s *CTASection) Base() *SectionBase          { return &s.SectionBase }
func (s *FooterSection) Base() *SectionBase       { return &s.SectionBase }

// NewSection returns an empty section value for the given discriminator, or an
// error when the type is not part of the closed set.
func NewSection(t SectionType) (Section, error) {
	switch t {
	case SectionHero:
		return &HeroSection{}, nil
	case SectionSocialProof:
		return &SocialProofSection{}, nil
	case SectionFAQ:
		return &FAQSection{}, nil
	case SectionPricing:
		return &PricingSection{}, nil
	case SectionContact:
		return &ContactSection{}, nil
	case SectionFeatures:
		return &FeaturesSection{}, nil
	case SectionGallery:
		return &GallerySection{}, nil
	case SectionCarousel:
		return &CarouselSection{}, nil
	case SectionTestimonials:
		return &TestimonialsSection{}, nil
	case SectionCTA:
		return &CTASection{}, nil
	case SectionFooter:
		return &FooterSection{}, nil
	default:
		return nil, fmt.Errorf("unknown section type %q", string(t))
	}
}

// SectionList is an ordered collection of sections that decodes each element
// into its concrete variant based on the "type" discriminator.
type SectionList []Section

func (l *SectionList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	sections := make(SectionList, 0, len(raws))
	for i, raw := range raws {
		var probe struct {
			Type SectionType `json:"type"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}

		section, err := NewSection(probe.Type)
		if err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		if err := json.Unmarshal(raw, section); err != nil {
			return fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, section)
	}

	*l = sections
	return nil
}

// SortByOrder returns the sections sorted by their explicit order field.
// Ties keep the original array position (stable sort).
func (l SectionList) SortByOrder() SectionList {
	sorted := make(SectionList, len(l))
	copy(sorted, l)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Base().Order < sorted[j].Base().Order
	})
	return sorted
}
