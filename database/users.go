package database

import (
	"errors"

	"investment-tracker/models"
	"investment-tracker/security"

	"gorm.io/gorm"
)

// CreateUser hashes the password and inserts the user. The returned record
// carries the generated id.
func CreateUser(db *gorm.DB, in models.UserCreate) (*models.User, error) {
	hashed, err := security.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail returns the matching user, or nil when none exists.
func GetUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername returns the matching user, or nil when none exists.
func GetUserByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID returns the matching user, or nil when none exists.
func GetUserByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers applies the optional email/username filters with AND, then
// paginates. Count reflects the filtered set before pagination.
func ListUsers(db *gorm.DB, email, username string, skip, limit int) ([]models.User, int64, error) {
	filtered := func() *gorm.DB {
		query := db.Model(&models.User{})
		if email != "" {
			query = query.Where("email = ?", email)
		}
		if username != "" {
			query = query.Where("username = ?", username)
		}
		return query
	}

	var count int64
	if err := filtered().Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := filtered().Offset(skip).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, count, nil
}

// Authenticate looks the user up by email when given, otherwise by username,
// and verifies the password. Returns nil on any mismatch.
func Authenticate(db *gorm.DB, email, username, password string) (*models.User, error) {
	var user *models.User
	var err error
	if email != "" {
		user, err = GetUserByEmail(db, email)
	} else {
		user, err = GetUserByUsername(db, username)
	}
	if err != nil || user == nil {
		return nil, err
	}
	if !security.VerifyPassword(password, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// UpdateUser patches the supplied fields only and reloads the record.
func UpdateUser(db *gorm.DB, user *models.User, in models.UserUpdate) error {
	updates := make(map[string]interface{})
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Password != nil {
		hashed, err := security.HashPassword(*in.Password)
		if err != nil {
			return err
		}
		updates["hashed_password"] = hashed
	}

	if err := db.Model(user).Updates(updates).Error; err != nil {
		return err
	}
	return db.First(user, user.ID).Error
}

// DeleteUser removes the user row only; owned records are deleted explicitly
// by the route layer.
func DeleteUser(db *gorm.DB, user *models.User) error {
	return db.Delete(user).Error
}
