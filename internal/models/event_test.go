package models

import (
	"encoding/json"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventIDMarshalsAsHexString(t *testing.T) {
	oid := primitive.NewObjectID()
	ev := Event{ID: oid, Title: "Meetup"}

	data, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"_id":"`+oid.Hex()+`"`) {
		t.Errorf("got %s, want _id as %q", data, oid.Hex())
	}
}

func TestEventRequestConversion(t *testing.T) {
	free, people, adult := false, 50, true
	dates := []string{"2024-02-01", "2024-02-02"}
	req := EventRequest{
		Title:     "Meetup",
		Organizer: "Alice",
		Free:      &free,
		Location:  "Hall A",
		MaxPeople: &people,
		PostDate:  "2024-01-01",
		RangeDate: &dates,
		AdultOnly: &adult,
	}

	ev := req.Event()
	if ev.Free || ev.MaxPeople != 50 || !ev.AdultOnly {
		t.Errorf("scalar fields not carried over: %+v", ev)
	}
	if len(ev.RangeDate) != 2 {
		t.Errorf("got rangeDate %v, want 2 entries", ev.RangeDate)
	}
	// description omitted stays the empty string
	if ev.Description != "" {
		t.Errorf("got description %q, want empty", ev.Description)
	}
}
