package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thrivecms/internal/models"
)

func TestMergeServices(t *testing.T) {
	d := NewDocument()

	d.MergeServices([]models.Service{{ID: "1", Title: "Consulting"}})

	snap := d.Snapshot()
	assert.Len(t, snap.Services, 1)
	assert.Equal(t, "Consulting", snap.Services[0].Title)
}

func TestMergeHeroSlides_FirstSlideWins(t *testing.T) {
	d := NewDocument()

	d.MergeHeroSlides([]models.HeroSlide{
		{ID: "h1", Title: "Добро пожаловать", Subtitle: "Мы рядом", Image: "https://cdn/hero1.jpg", OrderIndex: 0},
		{ID: "h2", Title: "Второй слайд", OrderIndex: 1},
	})

	hero := d.Snapshot().Hero
	assert.Equal(t, "Добро пожаловать", hero.Title)
	assert.Equal(t, "Мы рядом", hero.Subtitle)
	assert.Equal(t, "https://cdn/hero1.jpg", hero.Image)
}

func TestMergeHeroSlides_EmptyListKeepsCurrent(t *testing.T) {
	d := NewDocument()
	d.MergeHeroSlides([]models.HeroSlide{{ID: "h1", Title: "Добро пожаловать"}})

	d.MergeHeroSlides(nil)

	assert.Equal(t, "Добро пожаловать", d.Snapshot().Hero.Title)
}

func TestMergeContactForm(t *testing.T) {
	d := NewDocument()

	d.MergeContactForm(models.ContactForm{
		Title:          "Свяжитесь с нами",
		SuccessMessage: "Спасибо, мы ответим в ближайшее время",
	})

	cf := d.Snapshot().ContactForm
	assert.Equal(t, "Свяжитесь с нами", cf.Title)
	assert.Equal(t, "Спасибо, мы ответим в ближайшее время", cf.SuccessMessage)
}

func TestMergeAbouts_FirstItemWins(t *testing.T) {
	d := NewDocument()

	d.MergeAbouts([]models.About{
		{ID: "a1", Title: "Кто мы"},
		{ID: "a2", Title: "Второй"},
	})

	assert.Equal(t, "a1", d.Snapshot().About.ID)
}

func TestMergeAbouts_EmptyListKeepsCurrent(t *testing.T) {
	d := NewDocument()
	d.MergeAbouts([]models.About{{ID: "a1", Title: "Кто мы"}})

	d.MergeAbouts(nil)

	assert.Equal(t, "a1", d.Snapshot().About.ID)
}

func TestMergeFooters_ActiveWins(t *testing.T) {
	d := NewDocument()

	d.MergeFooters([]models.FooterData{
		{ID: "f1"},
		{ID: "f2", IsActive: true},
	})

	assert.Equal(t, "f2", d.Snapshot().Footer.ID)
}

func TestMergeFooters_NoActiveFallsBackToFirst(t *testing.T) {
	d := NewDocument()

	d.MergeFooters([]models.FooterData{{ID: "f1"}, {ID: "f2"}})

	assert.Equal(t, "f1", d.Snapshot().Footer.ID)
}

func TestSnapshot_IsolatedFromAggregate(t *testing.T) {
	d := NewDocument()
	d.MergeServices([]models.Service{{ID: "1", Title: "Consulting"}})

	snap := d.Snapshot()
	snap.Services[0].Title = "mutated"

	assert.Equal(t, "Consulting", d.Snapshot().Services[0].Title)
}
