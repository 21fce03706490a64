package models

import "time"

// User is a landlord or tenant account as seen by the lease lifecycle.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Role             string    `bson:"role" json:"role"`
	FullName         string    `bson:"fullName" json:"fullName"`
	Email            string    `bson:"email" json:"email"`
	PhoneNumber      string    `bson:"phoneNumber" json:"phoneNumber"`
	FCMToken         string    `bson:"fcmToken,omitempty" json:"-"`
	IdentityVerified bool      `bson:"identityVerified" json:"identityVerified"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
