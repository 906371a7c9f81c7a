// Package content владеет агрегатом ContentDocument. Читает его публичный
// рендерер, пишут — только контроллеры секций через Merge. Других
// писателей быть не должно.
package content

import (
	"sync"

	"thrivecms/internal/models"
)

type Document struct {
	mu  sync.RWMutex
	doc models.ContentDocument
}

func NewDocument() *Document {
	return &Document{
		doc: models.ContentDocument{
			Services: []models.Service{},
			Team:     []models.TeamMember{},
		},
	}
}

// Snapshot — копия документа для чтения.
func (d *Document) Snapshot() models.ContentDocument {
	d.mu.RLock()
	defer d.mu.RUnlock()

	cp := d.doc
	cp.Services = append([]models.Service(nil), d.doc.Services...)
	cp.Team = append([]models.TeamMember(nil), d.doc.Team...)
	return cp
}

// Merge — единственный путь записи в агрегат.
func (d *Document) Merge(apply func(doc *models.ContentDocument)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	apply(&d.doc)
}

// MergeHeroSlides и далее — готовые merge-колбэки для syncer-коллекций.

// Hero-блок документа — первый слайд карусели (коллекция приходит
// уже отсортированной по order_index).
func (d *Document) MergeHeroSlides(items []models.HeroSlide) {
	d.Merge(func(doc *models.ContentDocument) {
		if len(items) == 0 {
			return
		}
		first := items[0]
		doc.Hero = models.Hero{
			Title:       first.Title,
			Subtitle:    first.Subtitle,
			Description: first.Description,
			Image:       first.Image,
		}
	})
}

// Тексты контактной формы редактируются админкой напрямую,
// у них нет удалённой коллекции.
func (d *Document) MergeContactForm(cf models.ContactForm) {
	d.Merge(func(doc *models.ContentDocument) {
		doc.ContactForm = cf
	})
}

func (d *Document) MergeServices(items []models.Service) {
	d.Merge(func(doc *models.ContentDocument) {
		doc.Services = items
	})
}

func (d *Document) MergeTeam(items []models.TeamMember) {
	d.Merge(func(doc *models.ContentDocument) {
		doc.Team = items
	})
}

// Бэкенд отдаёт "abouts" списком; в документе живёт первый элемент.
func (d *Document) MergeAbouts(items []models.About) {
	d.Merge(func(doc *models.ContentDocument) {
		if len(items) > 0 {
			doc.About = items[0]
		}
	})
}

func (d *Document) MergeContacts(items []models.Contact) {
	d.Merge(func(doc *models.ContentDocument) {
		if len(items) > 0 {
			doc.Contact = items[0]
		}
	})
}

// Из футеров в документ попадает активный; если активного нет — первый.
func (d *Document) MergeFooters(items []models.FooterData) {
	d.Merge(func(doc *models.ContentDocument) {
		for _, f := range items {
			if f.IsActive {
				doc.Footer = f
				return
			}
		}
		if len(items) > 0 {
			doc.Footer = items[0]
		}
	})
}
