package landing

// FormField describes one input of a landing page lead form.
type FormField struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// Page represents an item of the landing_pages collection.
type Page struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Template        string      `json:"template"`
	Status          string      `json:"status"`
	HeroTitle       string      `json:"hero_title"`
	HeroSubtitle    string      `json:"hero_subtitle"`
	HeroImage       string      `json:"hero_image"`
	HeroVideo       string      `json:"hero_video"`
	CTAText         string      `json:"cta_text"`
	FormFields      []FormField `json:"form_fields"`
	Content         string      `json:"content"`
	MetaTitle       string      `json:"meta_title"`
	MetaDescription string      `json:"meta_description"`
	TrackingCode    string      `json:"tracking_code"`
}

// Headline returns the hero title, falling back to the page title.
func (p Page) Headline() string {
	if p.HeroTitle != "" {
		return p.HeroTitle
	}
	return p.Title
}
