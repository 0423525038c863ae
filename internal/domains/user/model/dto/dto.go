package dto

import (
	"roomlist/internal/domains/user/model"
	"roomlist/shared/constant"
)

type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Username = model.Username
	r.Email = model.Email
	r.CreatedAt = model.CreatedAt.Format(constant.DateTimeFormat)
}
