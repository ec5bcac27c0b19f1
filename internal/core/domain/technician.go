package domain

import "time"

type TechnicianStatus string

const (
	TechnicianStatusNonRegistered TechnicianStatus = "non-registered"
	TechnicianStatusPending       TechnicianStatus = "pending"
	TechnicianStatusApproved      TechnicianStatus = "approved"
	TechnicianStatusRejected      TechnicianStatus = "rejected"
)

type TechnicianType string

const (
	TechnicianTypeFreelance TechnicianType = "freelance"
	TechnicianTypeShop      TechnicianType = "shop"
)

type Technician struct {
	ID           string           `json:"id" bson:"_id"`
	Name         string           `json:"name" bson:"name"`
	Status       TechnicianStatus `json:"status" bson:"status"`
	Type         TechnicianType   `json:"type" bson:"type"`
	Categories   []string         `json:"categories" bson:"categories"`
	Availability bool             `json:"availability" bson:"availability"`
	ShopID       string           `json:"shopId,omitempty" bson:"shopId,omitempty"`
	PhotoURL     string           `json:"photoUrl,omitempty" bson:"photoUrl,omitempty"`
	Location     *GeoPoint        `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}
