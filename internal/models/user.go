package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleInspector UserRole = "inspector"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Name         string             `json:"name" bson:"name" validate:"required"`
	Role         UserRole           `json:"role" bson:"role" default:"inspector"`

	// UUID issued by the organisation directory; inspections reference it.
	InspectorID string `json:"inspectorId,omitempty" bson:"inspector_id,omitempty"`
	BranchID    string `json:"cabangId,omitempty" bson:"branch_id,omitempty"`

	WhatsApp      string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	WalletAddress string `json:"walletAddress,omitempty" bson:"wallet_address,omitempty"`
	GoogleID      string `json:"-" bson:"google_id,omitempty"`
	PINHash       string `json:"-" bson:"pin_hash,omitempty"`

	IsActive  bool      `json:"isActive" bson:"is_active" default:"true"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
