package userservice

// User профиль администратора без учетных данных
type User struct {
	ID             int64
	Username       string
	Name           string
	ProfessionalID string
}

// userRecord запись провайдера; может содержать пароль, который не должен покидать клиент
type userRecord struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Name           string `json:"name"`
	ProfessionalID string `json:"professionalId"`
	Password       string `json:"password,omitempty"`
}

func (r userRecord) sanitize() User {
	return User{
		ID:             r.ID,
		Username:       r.Username,
		Name:           r.Name,
		ProfessionalID: r.ProfessionalID,
	}
}
