package auth

// registration request payload
type RegisterRequest struct {
	Name         string `json:"name" validate:"required,username"`
	Email        string `json:"email" validate:"required,noroffemail"`
	Password     string `json:"password" validate:"required,min=8"`
	Bio          string `json:"bio,omitempty" validate:"max=180"`
	AvatarURL    string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	AvatarAlt    string `json:"avatarAlt,omitempty" validate:"max=120"`
	VenueManager bool   `json:"venueManager"`
}

func (r RegisterRequest) Form() RegisterForm {
	return RegisterForm{
		Name:         r.Name,
		Email:        r.Email,
		Password:     r.Password,
		Bio:          r.Bio,
		AvatarURL:    r.AvatarURL,
		AvatarAlt:    r.AvatarAlt,
		VenueManager: r.VenueManager,
	}
}

// login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,noroffemail"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r LoginRequest) Credentials() Credentials {
	return Credentials{Email: r.Email, Password: r.Password}
}
