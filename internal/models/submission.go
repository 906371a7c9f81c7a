package models

import "time"

const (
	SubmissionStatusNew     = "new"
	SubmissionStatusRead    = "read"
	SubmissionStatusReplied = "replied"
)

// ContactSubmission создаётся публичной формой; админка только
// читает, меняет статус и удаляет.
type ContactSubmission struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValidStatusTransition: new→read, new/read→replied. Назад пути нет.
func ValidStatusTransition(from, to string) bool {
	switch to {
	case SubmissionStatusRead:
		return from == SubmissionStatusNew
	case SubmissionStatusReplied:
		return from == SubmissionStatusNew || from == SubmissionStatusRead
	default:
		return false
	}
}
