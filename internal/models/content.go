package models

// Hero — верхний блок главной страницы: первый слайд по порядку.
type Hero struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// HeroSlide — один слайд карусели. Порядок задаёт order_index.
type HeroSlide struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	Image       string `json:"image"`
	OrderIndex  int    `json:"order_index"`
}

type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Facebook string `json:"facebook,omitempty"`
}

type Service struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description,omitempty"`
	Features         []string `json:"features,omitempty"`
}

type TeamMember struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Position    string      `json:"position"`
	Image       string      `json:"image"`
	SocialLinks SocialLinks `json:"social_links,omitempty"`
}

type About struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

type Contact struct {
	ID      string `json:"id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

type ContactForm struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	SuccessMessage string `json:"success_message"`
}

// ContentDocument — агрегат, из которого рендерится публичный сайт.
// Бэкенд отдаёт "abouts" списком; в документе живёт только первый (активный).
type ContentDocument struct {
	Hero        Hero         `json:"hero"`
	Services    []Service    `json:"services"`
	Team        []TeamMember `json:"team"`
	About       About        `json:"about"`
	Contact     Contact      `json:"contact"`
	ContactForm ContactForm  `json:"contact_form"`
	Footer      FooterData   `json:"footer"`
}
