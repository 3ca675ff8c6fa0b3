package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event is a single document in the events collection. Dates are opaque
// strings; nothing parses them as calendar dates.
type Event struct {
	ID          primitive.ObjectID `json:"_id"         bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	Organizer   string             `json:"organizer"   bson:"organizer"`
	Free        bool               `json:"free"        bson:"free"`
	Location    string             `json:"location"    bson:"location"`
	MaxPeople   int                `json:"maxPeople"   bson:"maxPeople"`
	PostDate    string             `json:"postDate"    bson:"postDate"`
	RangeDate   []string           `json:"rangeDate"   bson:"rangeDate"`
	AdultOnly   bool               `json:"adultOnly"   bson:"adultOnly"`
}

// EventRequest is the JSON body for POST /events/event and PUT
// /events/event/{id}. Required non-string fields are pointers so that a
// present false or 0 still passes the required check.
type EventRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description *string   `json:"description"`
	Organizer   string    `json:"organizer"   validate:"required"`
	Free        *bool     `json:"free"        validate:"required"`
	Location    string    `json:"location"    validate:"required"`
	MaxPeople   *int      `json:"maxPeople"   validate:"required"`
	PostDate    string    `json:"postDate"    validate:"required"`
	RangeDate   *[]string `json:"rangeDate"   validate:"required"`
	AdultOnly   *bool     `json:"adultOnly"   validate:"required"`
}

// Event converts a validated request into a document ready for the store.
func (r *EventRequest) Event() *Event {
	ev := &Event{
		Title:     r.Title,
		Organizer: r.Organizer,
		Free:      *r.Free,
		Location:  r.Location,
		MaxPeople: *r.MaxPeople,
		PostDate:  r.PostDate,
		RangeDate: *r.RangeDate,
		AdultOnly: *r.AdultOnly,
	}
	if r.Description != nil {
		ev.Description = *r.Description
	}
	return ev
}
