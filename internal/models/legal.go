package models

// Юридические страницы устроены одинаково: список,
// из которого активна максимум одна запись.

type PrivacyPolicy struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

type Term struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}

type Disclaimer struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive bool   `json:"is_active"`
}
