package models

// UserSession est l'enregistrement {name, email} de la session de démonstration.
type UserSession struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
