package dto

type RegisterInput struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
}

type RegisterOutput struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}
