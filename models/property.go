package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyOccupied  PropertyStatus = "occupied"
)

// Property is the rentable unit. Only the fields the lease lifecycle reads are mapped.
type Property struct {
	ID         string          `bson:"id" json:"id"`
	LandlordID string          `bson:"landlordId" json:"landlordId"`
	Title      string          `bson:"title" json:"title"`
	Price      decimal.Decimal `bson:"price" json:"price"`
	Status     PropertyStatus  `bson:"status" json:"status"`
	UpdatedAt  time.Time       `bson:"updatedAt" json:"updatedAt"`
}
