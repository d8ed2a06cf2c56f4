package authapimodels

import (
	"github.com/pkg/errors"

	"police-hr-backend/models"
	dbmodels "police-hr-backend/models/db"
)

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginData) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RefreshData struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshData) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("не указан refresh токен")
	}
	return nil
}

type TokenView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserCreateData struct {
	Email     string          `json:"email"`
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Password  string          `json:"password"`
	Role      models.UserRole `json:"role"`
}

func (r UserCreateData) Validate() error {
	if r.Email == "" {
		return errors.New("не указана почта")
	}
	if r.LastName == "" {
		return errors.New("не указана фамилия")
	}
	if len(r.Password) < 8 {
		return errors.New("пароль должен содержать не менее 8 символов")
	}
	if !r.Role.IsValid() {
		return errors.New("неизвестная роль пользователя")
	}
	return nil
}

type UserView struct {
	ID       string          `json:"id"`
	Email    string          `json:"email"`
	FIO      string          `json:"fio"`
	Role     models.UserRole `json:"role"`
	IsActive bool            `json:"is_active"`
}

func UserConvert(rec dbmodels.TenantUser) UserView {
	return UserView{
		ID:       rec.ID,
		Email:    rec.Email,
		FIO:      rec.GetFIO(),
		Role:     rec.Role,
		IsActive: rec.IsActive,
	}
}
