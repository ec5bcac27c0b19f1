package domain

import "time"

type GeoPoint struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lon     float64 `json:"lon" bson:"lon"`
	Address string  `json:"address" bson:"address"`
}

type User struct {
	ID               string    `json:"id" bson:"_id"`
	Name             string    `json:"name" bson:"name"`
	Phone            string    `json:"phone,omitempty" bson:"phone,omitempty"`
	SelectedLocation *GeoPoint `json:"selectedLocation,omitempty" bson:"selectedLocation,omitempty"`
	CreatedAt        time.Time `json:"createdAt" bson:"createdAt"`
}
