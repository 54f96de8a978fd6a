package shared

import "encoding/json"

// Envelope is the body of every API response: exactly one of data or error.
type Envelope struct {
	data any
	err  *ErrorBody
}

// ErrorBody is the error arm of an Envelope. Code is application-level, not an HTTP status.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Success wraps data.
func Success(data any) Envelope {
	return Envelope{data: data}
}

// Failure builds an error envelope.
func Failure(code int, message string) Envelope {
	return Envelope{err: &ErrorBody{Code: code, Message: message}}
}

// IsError reports whether e is the error arm.
func (e Envelope) IsError() bool { return e.err != nil }

// Data returns the success payload, nil for an error envelope.
func (e Envelope) Data() any { return e.data }

// Err returns the error arm, nil for a success envelope.
func (e Envelope) Err() *ErrorBody { return e.err }

// MarshalJSON writes {"data": ...} or {"error": {...}}.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.err != nil {
		return json.Marshal(struct {
			Error *ErrorBody `json:"error"`
		}{e.err})
	}
	return json.Marshal(struct {
		Data any `json:"data"`
	}{e.data})
}

// UnmarshalJSON reads either arm back. Data decodes into generic JSON values.
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var raw struct {
		Data  json.RawMessage `json:"data"`
		Error *ErrorBody      `json:"error"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*e = Envelope{err: raw.Error}
	if raw.Error == nil && len(raw.Data) > 0 {
		return json.Unmarshal(raw.Data, &e.data)
	}
	return nil
}
