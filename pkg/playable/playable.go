package playable

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LogMessage is the format sent to display surfaces after an action
type LogMessage struct {
	UUID    string      `json:"uuid"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Time    time.Time   `json:"time"`
}

// Response is a container for a message pushed to a display surface
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context,omitempty"`
}

// PayloadIn is the format we expect from a caller performing an action
type PayloadIn struct {
	Action         string         `json:"action"`
	AdditionalData AdditionalData `json:"additionalData"`
}

// NewPayload returns a payload for the action with optional key/value pairs
func NewPayload(action string, keyvals ...interface{}) *PayloadIn {
	if len(keyvals)%2 != 0 {
		panic("NewPayload requires key/value pairs")
	}

	data := make(AdditionalData, len(keyvals)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			panic(fmt.Sprintf("NewPayload key must be a string, got %T", keyvals[i]))
		}

		data[key] = keyvals[i+1]
	}

	return &PayloadIn{
		Action:         action,
		AdditionalData: data,
	}
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
// Fractional numbers are rejected rather than truncated.
func (a AdditionalData) GetInt(key string) (int, bool) {
	switch val := a[key].(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		return int(val), true
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	}

	return 0, false
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// SimpleLogMessage returns a new LogMessage
func SimpleLogMessage(format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Message: fmt.Sprintf(format, a...),
		Time:    time.Now(),
	}
}
