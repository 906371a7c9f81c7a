// Package forms — черновики сущностей, которые редактирует админка.
// Каждая форма валидирует обязательные поля ДО обращения к бэкенду и
// возвращает ошибки по полям для показа рядом с полями. Бинарные поля
// (картинки) живут в памяти до успешной записи; после неё превью
// вытесняется серверным URL.
package forms

import (
	"strconv"
	"strings"

	"thrivecms/internal/contentapi"
	"thrivecms/internal/models"
)

// Errors: имя поля -> сообщение. Пустая карта — форма валидна.
type Errors map[string]string

func (e Errors) Valid() bool {
	return len(e) == 0
}

func required(e Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		e[field] = "обязательное поле"
	}
}

func validEmail(e Errors, field, value string) {
	v := strings.TrimSpace(value)
	if v == "" {
		e[field] = "обязательное поле"
		return
	}
	at := strings.Index(v, "@")
	if at <= 0 || at == len(v)-1 || !strings.Contains(v[at:], ".") {
		e[field] = "некорректный email"
	}
}

type ServiceForm struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description"`
	Features         []string `json:"features"`
}

func (f *ServiceForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	required(e, "short_description", f.ShortDescription)
	return e
}

func (f *ServiceForm) ToModel() models.Service {
	return models.Service{
		Title:            strings.TrimSpace(f.Title),
		ShortDescription: strings.TrimSpace(f.ShortDescription),
		LongDescription:  strings.TrimSpace(f.LongDescription),
		Features:         f.Features,
	}
}

type TeamMemberForm struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`

	// либо уже известный URL, либо загружаемый файл — не оба сразу
	ImageURL string
	Image    *contentapi.Upload
}

func (f *TeamMemberForm) Validate() Errors {
	e := Errors{}
	required(e, "name", f.Name)
	required(e, "position", f.Position)
	return e
}

// Multipart — поля и файлы для транспорта.
func (f *TeamMemberForm) Multipart() (map[string]string, []contentapi.Upload) {
	fields := map[string]string{
		"name":     strings.TrimSpace(f.Name),
		"position": strings.TrimSpace(f.Position),
		"twitter":  f.Twitter,
		"linkedin": f.LinkedIn,
		"facebook": f.Facebook,
	}
	var uploads []contentapi.Upload
	if f.Image != nil {
		uploads = append(uploads, *f.Image)
	} else if f.ImageURL != "" {
		fields["image"] = f.ImageURL
	}
	return fields, uploads
}

type AboutForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`

	ImageURL string
	Image    *contentapi.Upload
}

func (f *AboutForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	return e
}

func (f *AboutForm) Multipart() (map[string]string, []contentapi.Upload) {
	fields := map[string]string{
		"title":       strings.TrimSpace(f.Title),
		"description": f.Description,
	}
	var uploads []contentapi.Upload
	if f.Image != nil {
		uploads = append(uploads, *f.Image)
	} else if f.ImageURL != "" {
		fields["image"] = f.ImageURL
	}
	return fields, uploads
}

type HeroSlideForm struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`

	ImageURL string
	Image    *contentapi.Upload
}

func (f *HeroSlideForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	return e
}

func (f *HeroSlideForm) Multipart() (map[string]string, []contentapi.Upload) {
	fields := map[string]string{
		"title":       strings.TrimSpace(f.Title),
		"subtitle":    f.Subtitle,
		"description": f.Description,
		"order_index": strconv.Itoa(f.OrderIndex),
	}
	var uploads []contentapi.Upload
	if f.Image != nil {
		uploads = append(uploads, *f.Image)
	} else if f.ImageURL != "" {
		fields["image"] = f.ImageURL
	}
	return fields, uploads
}

// ContactFormForm — тексты публичной контактной формы (заголовок,
// подзаголовок, сообщение об успехе).
type ContactFormForm struct {
	Title          string `json:"title"`
	Subtitle       string `json:"subtitle"`
	SuccessMessage string `json:"success_message"`
}

func (f *ContactFormForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	required(e, "success_message", f.SuccessMessage)
	return e
}

func (f *ContactFormForm) ToModel() models.ContactForm {
	return models.ContactForm{
		Title:          strings.TrimSpace(f.Title),
		Subtitle:       strings.TrimSpace(f.Subtitle),
		SuccessMessage: strings.TrimSpace(f.SuccessMessage),
	}
}

type ContactInfoForm struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

func (f *ContactInfoForm) Validate() Errors {
	e := Errors{}
	required(e, "phone", f.Phone)
	validEmail(e, "email", f.Email)
	return e
}

func (f *ContactInfoForm) ToModel() models.Contact {
	return models.Contact{
		Phone:   strings.TrimSpace(f.Phone),
		Email:   strings.TrimSpace(f.Email),
		Address: strings.TrimSpace(f.Address),
		Hours:   strings.TrimSpace(f.Hours),
	}
}

type FooterForm struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	CopyrightText  string `json:"copyright_text"`
	DesignerText   string `json:"designer_text"`
	PrivacyLink    string `json:"privacy_link"`
	TermsLink      string `json:"terms_link"`
	DisclaimerLink string `json:"disclaimer_link"`
	FacebookURL    string `json:"facebook_url"`
	TwitterURL     string `json:"twitter_url"`
	InstagramURL   string `json:"instagram_url"`
	PinterestURL   string `json:"pinterest_url"`
	LinkedInURL    string `json:"linkedin_url"`

	LogoURL string
	Logo    *contentapi.Upload
}

func (f *FooterForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	required(e, "copyright_text", f.CopyrightText)
	return e
}

func (f *FooterForm) Multipart() (map[string]string, []contentapi.Upload) {
	fields := map[string]string{
		"title":           strings.TrimSpace(f.Title),
		"description":     f.Description,
		"copyright_text":  strings.TrimSpace(f.CopyrightText),
		"designer_text":   f.DesignerText,
		"privacy_link":    f.PrivacyLink,
		"terms_link":      f.TermsLink,
		"disclaimer_link": f.DisclaimerLink,
		"facebook_url":    f.FacebookURL,
		"twitter_url":     f.TwitterURL,
		"instagram_url":   f.InstagramURL,
		"pinterest_url":   f.PinterestURL,
		"linkedin_url":    f.LinkedInURL,
	}
	var uploads []contentapi.Upload
	if f.Logo != nil {
		uploads = append(uploads, *f.Logo)
	} else if f.LogoURL != "" {
		fields["logo"] = f.LogoURL
	}
	return fields, uploads
}

type SiteSettingForm struct {
	SiteName string   `json:"site_name"`
	NavItems []string `json:"nav_items"`

	LogoURL string
	Logo    *contentapi.Upload
}

func (f *SiteSettingForm) Validate() Errors {
	e := Errors{}
	required(e, "site_name", f.SiteName)
	return e
}

func (f *SiteSettingForm) Multipart() (map[string]string, []contentapi.Upload) {
	fields := map[string]string{
		"site_name": strings.TrimSpace(f.SiteName),
	}
	for i, item := range f.NavItems {
		fields["nav_items["+strconv.Itoa(i)+"]"] = item
	}
	var uploads []contentapi.Upload
	if f.Logo != nil {
		uploads = append(uploads, *f.Logo)
	} else if f.LogoURL != "" {
		fields["logo"] = f.LogoURL
	}
	return fields, uploads
}

// LegalForm — общий черновик для политики, условий и дисклеймера.
type LegalForm struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (f *LegalForm) Validate() Errors {
	e := Errors{}
	required(e, "title", f.Title)
	required(e, "content", f.Content)
	return e
}

type HeaderMenuForm struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func (f *HeaderMenuForm) Validate() Errors {
	e := Errors{}
	required(e, "label", f.Label)
	required(e, "url", f.URL)
	return e
}

func (f *HeaderMenuForm) ToModel() models.HeaderMenu {
	return models.HeaderMenu{
		Label:    strings.TrimSpace(f.Label),
		URL:      strings.TrimSpace(f.URL),
		Position: f.Position,
	}
}

// SubmissionForm — публичная контактная форма сайта.
type SubmissionForm struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
}

func (f *SubmissionForm) Validate() Errors {
	e := Errors{}
	required(e, "first_name", f.FirstName)
	required(e, "last_name", f.LastName)
	validEmail(e, "email", f.Email)
	required(e, "message", f.Message)
	return e
}

func (f *SubmissionForm) ToModel() models.ContactSubmission {
	return models.ContactSubmission{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
		Message:   strings.TrimSpace(f.Message),
		Status:    models.SubmissionStatusNew,
	}
}
