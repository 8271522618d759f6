package models

// Collection names are the lowercased entity names, one collection
// per entity.
const (
	EventCollection          = "event"
	ReservationCollection    = "reservation"
	OwnerProfileCollection   = "ownerprofile"
	TheaterCollection        = "theater"
	ContactMessageCollection = "contactmessage"
	VideoCollection          = "video"
)
