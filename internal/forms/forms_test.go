package forms

import (
	"testing"

	"thrivecms/internal/contentapi"
)

func TestServiceForm_RequiredFields(t *testing.T) {
	f := &ServiceForm{LongDescription: "только необязательное"}

	errs := f.Validate()
	if errs.Valid() {
		t.Fatal("пустая форма не должна проходить валидацию")
	}
	if _, ok := errs["title"]; !ok {
		t.Fatal("нет ошибки по полю title")
	}
	if _, ok := errs["short_description"]; !ok {
		t.Fatal("нет ошибки по полю short_description")
	}
}

func TestServiceForm_Valid(t *testing.T) {
	f := &ServiceForm{Title: "  Consulting  ", ShortDescription: "desc"}

	if errs := f.Validate(); !errs.Valid() {
		t.Fatalf("форма должна быть валидна: %v", errs)
	}
	if got := f.ToModel().Title; got != "Consulting" {
		t.Fatalf("пробелы не обрезаны: %q", got)
	}
}

func TestSubmissionForm_EmailValidation(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"user@example.com", true},
		{"", false},
		{"no-at-sign", false},
		{"trailing@", false},
		{"user@nodot", false},
	}

	for _, tc := range cases {
		f := &SubmissionForm{FirstName: "Иван", LastName: "Петров", Email: tc.email, Message: "привет"}
		errs := f.Validate()
		if tc.ok && !errs.Valid() {
			t.Errorf("email %q должен проходить: %v", tc.email, errs)
		}
		if !tc.ok {
			if _, found := errs["email"]; !found {
				t.Errorf("email %q должен давать ошибку", tc.email)
			}
		}
	}
}

func TestTeamMemberForm_UploadPreferredOverURL(t *testing.T) {
	f := &TeamMemberForm{
		Name:     "Анна",
		Position: "CEO",
		ImageURL: "http://example.com/old.png",
		Image:    &contentapi.Upload{Field: "image", Filename: "new.png", Data: []byte("png")},
	}

	fields, uploads := f.Multipart()
	if len(uploads) != 1 {
		t.Fatalf("ожидался один файл, получено %d", len(uploads))
	}
	if _, ok := fields["image"]; ok {
		t.Fatal("при наличии файла поле image-URL не должно отправляться")
	}
}

func TestTeamMemberForm_URLWithoutUpload(t *testing.T) {
	f := &TeamMemberForm{Name: "Анна", Position: "CEO", ImageURL: "team/a.png"}

	fields, uploads := f.Multipart()
	if len(uploads) != 0 {
		t.Fatal("файлов быть не должно")
	}
	if fields["image"] != "team/a.png" {
		t.Fatalf("unexpected image field: %q", fields["image"])
	}
}

func TestFooterForm_Required(t *testing.T) {
	f := &FooterForm{Description: "x"}

	errs := f.Validate()
	if errs.Valid() {
		t.Fatal("футер без title и copyright_text не должен проходить")
	}
}

func TestLegalForm(t *testing.T) {
	f := &LegalForm{Title: "Политика"}
	if errs := f.Validate(); errs.Valid() {
		t.Fatal("content обязателен")
	}

	f.Content = "текст"
	if errs := f.Validate(); !errs.Valid() {
		t.Fatalf("форма должна быть валидна: %v", errs)
	}
}

func TestSiteSettingForm_NavItemsIndexed(t *testing.T) {
	f := &SiteSettingForm{SiteName: "THRIVE", NavItems: []string{"Home", "About"}}

	fields, _ := f.Multipart()
	if fields["nav_items[0]"] != "Home" || fields["nav_items[1]"] != "About" {
		t.Fatalf("nav_items не разложены по индексам: %v", fields)
	}
}

func TestHeroSlideForm_OrderIndexSerialized(t *testing.T) {
	f := &HeroSlideForm{Title: "Слайд", OrderIndex: 3, ImageURL: "hero/1.jpg"}

	fields, uploads := f.Multipart()
	if len(uploads) != 0 {
		t.Fatalf("без файла не должно быть загрузок, получено %d", len(uploads))
	}
	if fields["order_index"] != "3" {
		t.Fatalf("order_index не сериализован: %v", fields)
	}
	if fields["image"] != "hero/1.jpg" {
		t.Fatalf("image-URL потерян: %v", fields)
	}
}

func TestHeroSlideForm_TitleRequired(t *testing.T) {
	f := &HeroSlideForm{Subtitle: "только подзаголовок"}
	errs := f.Validate()
	if errs.Valid() {
		t.Fatal("слайд без заголовка не должен проходить валидацию")
	}
	if _, ok := errs["title"]; !ok {
		t.Fatal("нет ошибки по полю title")
	}
}

func TestContactFormForm(t *testing.T) {
	f := &ContactFormForm{Title: "Свяжитесь с нами"}
	errs := f.Validate()
	if errs.Valid() {
		t.Fatal("success_message обязателен")
	}

	f.SuccessMessage = "  Спасибо  "
	if errs := f.Validate(); !errs.Valid() {
		t.Fatalf("форма должна быть валидна: %v", errs)
	}
	if got := f.ToModel().SuccessMessage; got != "Спасибо" {
		t.Fatalf("пробелы не обрезаны: %q", got)
	}
}
