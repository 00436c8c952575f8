package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RideStatus string

const (
	RideScheduled  RideStatus = "scheduled"
	RideInProgress RideStatus = "in_progress"
	RideCompleted  RideStatus = "completed"
	RideCancelled  RideStatus = "cancelled"
)

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceSpirited Pace = "spirited"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceAll          ExperienceLevel = "all"
)

// Location is the nested meetup point in API payloads. It flattens to
// meetup_lat/meetup_lng/meetup_address columns in storage.
type Location struct {
	Lat     float64 `json:"lat" binding:"required,latitude"`
	Lng     float64 `json:"lng" binding:"required,longitude"`
	Address string  `json:"address" binding:"omitempty,max=255"`
}

// Ride carries two overlapping field sets: the legacy ride fields and
// the newer trip fields. Both are persisted verbatim; the legacy fields
// drive listing and filtering. See DESIGN.md.
type Ride struct {
	ID              uuid.UUID       `json:"id"`
	CreatorID       uuid.UUID       `json:"creatorId"`
	Title           string          `json:"title"`
	Tagline         string          `json:"tagline,omitempty"`
	RouteSummary    string          `json:"routeSummary,omitempty"`
	StartTime       time.Time       `json:"startTime"`
	MeetupLocation  *Location       `json:"meetupLocation,omitempty"`
	Pace            Pace            `json:"pace"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	MaxRiders       int             `json:"maxRiders"`
	Status          RideStatus      `json:"status"`

	TripName         string   `json:"tripName,omitempty"`
	TripDate         string   `json:"tripDate,omitempty"`
	TripMeetupTime   string   `json:"tripMeetupTime,omitempty"`
	TripMeetLocation string   `json:"tripMeetLocation,omitempty"`
	TripDistance     string   `json:"tripDistance,omitempty"`
	TripGear         string   `json:"tripGear,omitempty"`
	TripCommSignals  []string `json:"tripCommSignals,omitempty"`
	TripSafetyChecks []string `json:"tripSafetyChecks,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

var RideFields = FieldMap{
	"id":               "id",
	"creatorId":        "creator_id",
	"title":            "title",
	"tagline":          "tagline",
	"routeSummary":     "route_summary",
	"startTime":        "start_time",
	"pace":             "pace",
	"experienceLevel":  "experience_level",
	"maxRiders":        "max_riders",
	"status":           "status",
	"tripName":         "trip_name",
	"tripDate":         "trip_date",
	"tripMeetupTime":   "trip_meetup_time",
	"tripMeetLocation": "trip_meet_location",
	"tripDistance":     "trip_distance",
	"tripGear":         "trip_gear",
	"tripCommSignals":  "trip_comm_signals",
	"tripSafetyChecks": "trip_safety_checks",
	"createdAt":        "created_at",
	"updatedAt":        "updated_at",
}

type CreateRideInput struct {
	Title            string    `json:"title" binding:"required,min=3,max=120"`
	Tagline          *string   `json:"tagline,omitempty" binding:"omitempty,max=160"`
	RouteSummary     *string   `json:"routeSummary,omitempty" binding:"omitempty,max=2000"`
	StartTime        time.Time `json:"startTime" binding:"required"`
	MeetupLocation   *Location `json:"meetupLocation,omitempty"`
	Pace             Pace      `json:"pace" binding:"required,oneof=relaxed moderate spirited"`
	ExperienceLevel  ExperienceLevel `json:"experienceLevel" binding:"required,oneof=beginner intermediate advanced all"`
	MaxRiders        int       `json:"maxRiders" binding:"required,min=2,max=50"`
	TripName         *string   `json:"tripName,omitempty" binding:"omitempty,max=120"`
	TripDate         *string   `json:"tripDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	TripMeetupTime   *string   `json:"tripMeetupTime,omitempty" binding:"omitempty,datetime=15:04"`
	TripMeetLocation *string   `json:"tripMeetLocation,omitempty" binding:"omitempty,max=255"`
	TripDistance     *string   `json:"tripDistance,omitempty" binding:"omitempty,oneof=short medium long"`
	TripGear         *string   `json:"tripGear,omitempty" binding:"omitempty,max=500"`
	TripCommSignals  []string  `json:"tripCommSignals,omitempty" binding:"omitempty,dive,max=80"`
	TripSafetyChecks []string  `json:"tripSafetyChecks,omitempty" binding:"omitempty,dive,max=120"`
}

type UpdateRideInput struct {
	Title            *string    `json:"title,omitempty" binding:"omitempty,min=3,max=120"`
	Tagline          *string    `json:"tagline,omitempty" binding:"omitempty,max=160"`
	RouteSummary     *string    `json:"routeSummary,omitempty" binding:"omitempty,max=2000"`
	StartTime        *time.Time `json:"startTime,omitempty"`
	MeetupLocation   *Location  `json:"meetupLocation,omitempty"`
	Pace             *Pace      `json:"pace,omitempty" binding:"omitempty,oneof=relaxed moderate spirited"`
	ExperienceLevel  *ExperienceLevel `json:"experienceLevel,omitempty" binding:"omitempty,oneof=beginner intermediate advanced all"`
	MaxRiders        *int       `json:"maxRiders,omitempty" binding:"omitempty,min=2,max=50"`
	Status           *RideStatus `json:"status,omitempty" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	TripName         *string    `json:"tripName,omitempty" binding:"omitempty,max=120"`
	TripDate         *string    `json:"tripDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	TripMeetupTime   *string    `json:"tripMeetupTime,omitempty" binding:"omitempty,datetime=15:04"`
	TripMeetLocation *string    `json:"tripMeetLocation,omitempty" binding:"omitempty,max=255"`
	TripDistance     *string    `json:"tripDistance,omitempty" binding:"omitempty,oneof=short medium long"`
	TripGear         *string    `json:"tripGear,omitempty" binding:"omitempty,max=500"`
	TripCommSignals  []string   `json:"tripCommSignals,omitempty" binding:"omitempty,dive,max=80"`
	TripSafetyChecks []string   `json:"tripSafetyChecks,omitempty" binding:"omitempty,dive,max=120"`
}

// RideListFilter narrows the public ride listing.
type RideListFilter struct {
	Status          string `form:"status" binding:"omitempty,oneof=scheduled in_progress completed cancelled"`
	Pace            string `form:"pace" binding:"omitempty,oneof=relaxed moderate spirited"`
	ExperienceLevel string `form:"experienceLevel" binding:"omitempty,oneof=beginner intermediate advanced all"`
	Page            int    `form:"page"`
	Limit           int    `form:"limit"`
}

// RideRowFromFields builds the storage row for a ride write, flattening
// the nested meetup location into its columns.
func RideRowFromFields(fields map[string]interface{}) map[string]interface{} {
	loc, hasLoc := fields["meetupLocation"]
	delete(fields, "meetupLocation")
	row := RideFields.ToRow(fields)
	if hasLoc && loc != nil {
		if m, ok := loc.(map[string]interface{}); ok {
			row["meetup_lat"] = m["lat"]
			row["meetup_lng"] = m["lng"]
			row["meetup_address"] = m["address"]
		}
	}
	return row
}

// DecodeRideRows converts raw PostgREST bytes into rides, rebuilding the
// nested meetup location from its flat columns.
func DecodeRideRows(raw []byte) ([]Ride, error) {
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ride rows: %v", err)
	}

	rides := make([]Ride, 0, len(rows))
	for _, row := range rows {
		fields := RideFields.FromRow(row)
		if lat, ok := row["meetup_lat"].(float64); ok {
			loc := map[string]interface{}{"lat": lat}
			if lng, ok := row["meetup_lng"].(float64); ok {
				loc["lng"] = lng
			}
			if addr, ok := row["meetup_address"].(string); ok {
				loc["address"] = addr
			}
			fields["meetupLocation"] = loc
		}

		translated, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to translate ride row: %v", err)
		}
		var ride Ride
		if err := json.Unmarshal(translated, &ride); err != nil {
			return nil, fmt.Errorf("failed to convert ride row: %v", err)
		}
		rides = append(rides, ride)
	}
	return rides, nil
}
