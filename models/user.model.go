package models

import "gorm.io/gorm"

// User is created on first sign-in from the identity provider's profile data.
type User struct {
	gorm.Model
	Email          string `json:"email" gorm:"uniqueIndex"`
	DisplayName    string `json:"displayName"`
	PhotoURL       string `json:"photoURL"`
	CreationTime   string `json:"creationTime"`
	LastSignInTime string `json:"lastSignInTime"`
}
