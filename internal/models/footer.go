package models

type FooterData struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Logo           string `json:"logo"`
	CopyrightText  string `json:"copyright_text"`
	DesignerText   string `json:"designer_text"`
	PrivacyLink    string `json:"privacy_link"`
	TermsLink      string `json:"terms_link"`
	DisclaimerLink string `json:"disclaimer_link"`
	FacebookURL    string `json:"facebook_url,omitempty"`
	TwitterURL     string `json:"twitter_url,omitempty"`
	InstagramURL   string `json:"instagram_url,omitempty"`
	PinterestURL   string `json:"pinterest_url,omitempty"`
	LinkedInURL    string `json:"linkedin_url,omitempty"`
	IsActive       bool   `json:"is_active"`
}

type HeaderMenu struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Position int    `json:"position"`
	IsActive bool   `json:"is_active"`
}

type SiteSetting struct {
	ID       string   `json:"id"`
	SiteName string   `json:"site_name"`
	Logo     string   `json:"logo"`
	NavItems []string `json:"nav_items,omitempty"`
	IsActive bool     `json:"is_active"`
}
