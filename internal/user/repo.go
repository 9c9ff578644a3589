package user

import "gorm.io/gorm"

func FindByName(db *gorm.DB, name string) (*User, error) {
	var u User
	if err := db.Where("name = ?", name).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
