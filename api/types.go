package api

type registerRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	PasswordConfirm string  `json:"password_confirm"`
	Email           *string `json:"email" validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updatePasswordRequest struct {
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
}

type blogRequest struct {
	Title       string `json:"title" validate:"max=255"`
	Description string `json:"description"`
}

type postRequest struct {
	Title   string `json:"title" validate:"max=255"`
	Content string `json:"content"`
}

type tagRequest struct {
	Name string `json:"name" validate:"max=255"`
}
