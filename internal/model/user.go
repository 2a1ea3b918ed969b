package model

import (
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tpc/ocean/internal/resource"
)

type User struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"column:nome;size:255;not null" json:"nome"`
	Email    string `gorm:"column:email;size:255;not null" json:"email"`
	Password string `gorm:"column:senha;size:255;not null" json:"senha,omitempty"`
	Type     string `gorm:"column:tipo;size:64" json:"tipo"`

	// storedHash is the password column as last read from or written to
	// the database. Any other value in Password is plaintext.
	storedHash string
}

func (User) TableName() string { return "usuarios" }

func (u *User) Overwrite(src *User) {
	u.Name = src.Name
	u.Email = src.Email
	u.Password = src.Password
	u.Type = src.Type
}

// MarshalJSON never exposes the password hash.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	out := plain(u)
	out.Password = ""
	return json.Marshal(out)
}

// AfterFind remembers the persisted hash so that saving the record back
// unchanged does not hash it a second time.
func (u *User) AfterFind(tx *gorm.DB) error {
	u.storedHash = u.Password
	return nil
}

// BeforeSave hashes Password unless it is still the persisted hash.
// Client input is always treated as plaintext, even when it happens to
// look like a bcrypt hash.
func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Password == "" || u.Password == u.storedHash {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	u.storedHash = u.Password
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

var UserKind = resource.Kind[User]{
	Name:        "usuarios",
	Table:       "usuarios",
	Singular:    "Usuário",
	Plural:      "Usuários",
	Description: "Gerenciamento de usuários",
	Fields: []resource.Field[User]{
		required("nome", "Nome", resource.FieldString, func(u *User) any { return u.Name }),
		required("email", "E-mail", resource.FieldString, func(u *User) any { return u.Email }),
		required("senha", "Senha", resource.FieldSecret, func(u *User) any { return u.Password }),
		optional("tipo", "Tipo", resource.FieldString, func(u *User) any { return u.Type }),
	},
	ID:        func(u *User) uint64 { return u.ID },
	SetID:     func(u *User, id uint64) { u.ID = id },
	Overwrite: (*User).Overwrite,
}
