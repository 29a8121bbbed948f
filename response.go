package workday

// Response is the standardized wrapper for Workday API call results.
type Response struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
	Message string         `json:"message,omitempty"`
}

// ToMap converts the response to a plain mapping for serialization.
// Unset optional fields are omitted.
func (r Response) ToMap() map[string]any {
	m := map[string]any{
		"success": r.Success,
	}
	if r.Data != nil {
		m["data"] = r.Data
	}
	if r.Error != "" {
		m["error"] = r.Error
	}
	if r.Message != "" {
		m["message"] = r.Message
	}

	return m
}
