package models

// User is an account holder. The hashed password never appears in responses;
// handlers serialize the Public projection instead.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Username       string `gorm:"uniqueIndex;size:255" json:"username"`
	Email          string `gorm:"uniqueIndex;size:255" json:"email"`
	HashedPassword string `json:"-"`
}

type UserPublic struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Public() UserPublic {
	return UserPublic{ID: u.ID, Username: u.Username, Email: u.Email}
}

type UserCreate struct {
	Username string `json:"username" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=40"`
}

// UserUpdate is a sparse patch; nil fields are left untouched.
type UserUpdate struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

type UsersPublic struct {
	Data  []UserPublic `json:"data"`
	Count int64        `json:"count"`
}
