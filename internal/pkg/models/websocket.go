package models

import "encoding/json"

// WSMessage is an inbound frame of the trip updates socket
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// LocationPing is the outbound driver position frame
type LocationPing struct {
	Type     string           `json:"type"`
	Status   string           `json:"status"`
	Location string           `json:"location"`
	Data     LocationPingData `json:"data"`
}

// LocationPingData identifies the trip and carries the coordinates as strings
type LocationPingData struct {
	TripID int64  `json:"trip_id"`
	Lat    string `json:"lat"`
	Long   string `json:"long"`
}
