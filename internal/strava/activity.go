package strava

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Activity is a summary activity as returned by /athlete/activities. Every
// field is optional: a nil pointer means the provider did not send it (or
// sent null). The original JSON is retained so re-encoding is lossless.
type Activity struct {
	ID             *int64   `json:"id,omitempty"`
	Name           *string  `json:"name,omitempty"`
	StartDate      *string  `json:"start_date,omitempty"`
	StartDateLocal *string  `json:"start_date_local,omitempty"`
	Timezone       *string  `json:"timezone,omitempty"`
	UTCOffset      *float64 `json:"utc_offset,omitempty"`

	Type      *string `json:"type,omitempty"`
	SportType *string `json:"sport_type,omitempty"`

	Distance           *float64 `json:"distance,omitempty"`     // meters
	MovingTime         *float64 `json:"moving_time,omitempty"`  // seconds
	ElapsedTime        *float64 `json:"elapsed_time,omitempty"` // seconds
	TotalElevationGain *float64 `json:"total_elevation_gain,omitempty"`

	AverageSpeed     *float64 `json:"average_speed,omitempty"` // m/s
	MaxSpeed         *float64 `json:"max_speed,omitempty"`     // m/s
	HasHeartrate     *bool    `json:"has_heartrate,omitempty"`
	AverageHeartrate *float64 `json:"average_heartrate,omitempty"`
	MaxHeartrate     *float64 `json:"max_heartrate,omitempty"`
	SufferScore      *float64 `json:"suffer_score,omitempty"`
	Calories         *float64 `json:"calories,omitempty"`
	KudosCount       *int64   `json:"kudos_count,omitempty"`

	LocationCountry *string `json:"location_country,omitempty"`

	Commute *bool `json:"commute,omitempty"`
	Trainer *bool `json:"trainer,omitempty"`
	Private *bool `json:"private,omitempty"`

	raw json.RawMessage
}

type activityFields Activity

// UnmarshalJSON decodes the known fields and keeps the full object
func (a *Activity) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("activity must be a JSON object")
	}

	var f activityFields
	if err := json.Unmarshal(trimmed, &f); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
		if f, err = decodeTolerant(trimmed); err != nil {
			return err
		}
	}
	*a = Activity(f)
	a.raw = append(json.RawMessage(nil), trimmed...)
	return nil
}

// decodeTolerant decodes the known fields one at a time, leaving any field
// whose value has the wrong JSON type absent. The raw object is untouched.
func decodeTolerant(data []byte) (activityFields, error) {
	var f activityFields

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return f, err
	}

	for key, value := range fields {
		single, err := json.Marshal(map[string]json.RawMessage{key: value})
		if err != nil {
			return f, err
		}
		var probe activityFields
		if err := json.Unmarshal(single, &probe); err != nil {
			delete(fields, key)
		}
	}

	cleaned, err := json.Marshal(fields)
	if err != nil {
		return f, err
	}
	err = json.Unmarshal(cleaned, &f)
	return f, err
}

// MarshalJSON returns the object exactly as the provider sent it when the
// activity was decoded, and the known fields otherwise
func (a Activity) MarshalJSON() ([]byte, error) {
	if a.raw != nil {
		return a.raw, nil
	}
	return json.Marshal(activityFields(a))
}

// Fields returns every top-level field of the activity as raw JSON
func (a *Activity) Fields() (map[string]json.RawMessage, error) {
	data, err := a.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// Sport returns sport_type, falling back to the legacy type field
func (a *Activity) Sport() (string, bool) {
	if a.SportType != nil && *a.SportType != "" {
		return *a.SportType, true
	}
	if a.Type != nil && *a.Type != "" {
		return *a.Type, true
	}
	return "", false
}

// ParseActivities decodes a page of activities. The payload must be a JSON
// array of objects; errors name the position of the offending element.
func ParseActivities(data []byte) ([]Activity, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("expected a JSON array of activities")
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal activities: %w", err)
	}

	activities := make([]Activity, len(items))
	for i, item := range items {
		if err := activities[i].UnmarshalJSON(item); err != nil {
			return nil, fmt.Errorf("activity %d: %w", i, err)
		}
	}
	return activities, nil
}
