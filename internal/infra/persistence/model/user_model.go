// Package model holds the JSON document shapes persisted by the document store.
// Field names follow the storage format of the original browser application.
package model

import "menumaster/internal/domain/entity"

// UserModel mirrors one element of the 'users' document.
type UserModel struct {
	ID            string `json:"id"`
	Login         string `json:"login"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CPF           string `json:"cpf,omitempty"`
	Address       string `json:"address"`
	CEP           string `json:"cep"`
	HouseNumber   string `json:"houseNumber"`
	Phone         string `json:"phone"`
	PasswordPlain string `json:"passwordPlain"`
}

// FromUser converts an entity to its document form.
func FromUser(user *entity.User) UserModel {
	return UserModel{
		ID:            user.ID,
		Login:         user.Login,
		Name:          user.Name,
		Email:         user.Email,
		CPF:           user.NationalID,
		Address:       user.Address,
		CEP:           user.PostalCode,
		HouseNumber:   user.HouseNumber,
		Phone:         user.Phone,
		PasswordPlain: user.Password,
	}
}

// ToEntity converts the document form back to an entity.
func (m UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:          m.ID,
		Login:       m.Login,
		Name:        m.Name,
		Email:       m.Email,
		NationalID:  m.CPF,
		Address:     m.Address,
		PostalCode:  m.CEP,
		HouseNumber: m.HouseNumber,
		Phone:       m.Phone,
		Password:    m.PasswordPlain,
	}
}

// AdminModel mirrors one element of the 'admins' document.
type AdminModel struct {
	ID            string `json:"id"`
	Login         string `json:"login"`
	PasswordPlain string `json:"passwordPlain"`
}

func FromAdmin(admin *entity.Admin) AdminModel {
	return AdminModel{ID: admin.ID, Login: admin.Login, PasswordPlain: admin.Password}
}

func (m AdminModel) ToEntity() *entity.Admin {
	return &entity.Admin{ID: m.ID, Login: m.Login, Password: m.PasswordPlain}
}
