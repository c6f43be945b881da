package constants

// Trip updates socket events
const (
	// Inbound
	EventSendTripUpdate   = "send_trip_update"
	EventRemoveTripUpdate = "remove_trip_update"
	EventLocationUpdate   = "location_update"

	// Outbound
	MessageTypeLocationUpdate = "receive_location_update"
	MessageStatusSuccess      = "success"

	// Location tags of outbound pings
	LocationTagPickup = "pickup_location"
	LocationTagDrop   = "drop_location"

	TripUpdatesPath = "/ws/trip_updates/"
)
