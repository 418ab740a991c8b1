package models

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

const (
	FeedbackSuccess = "success"
	FeedbackDanger  = "danger"
)

// Feedback est le message de statut affiché sous le formulaire.
type Feedback struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
