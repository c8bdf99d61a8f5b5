package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every API endpoint writes.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// DateTime renders in local time using DateTimeFormat, both in JSON and on the terminal.
type DateTime time.Time

func (d DateTime) String() string {
	return time.Time(d).Local().Format(DateTimeFormat)
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}
