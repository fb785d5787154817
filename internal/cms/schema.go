package cms

// Collection is a CMS collection definition as accepted by POST /collections.
type Collection struct {
	Collection string         `json:"collection"`
	Meta       map[string]any `json:"meta,omitempty"`
	Schema     map[string]any `json:"schema,omitempty"`
}

// Field is a CMS field definition as returned by GET /fields/{collection}.
type Field struct {
	Collection string         `json:"collection,omitempty"`
	Field      string         `json:"field"`
	Type       string         `json:"type"`
	Schema     map[string]any `json:"schema,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Nullable reports whether the field's database column accepts NULL.
// Fields without schema information are treated as nullable.
func (f Field) Nullable() bool {
	if f.Schema == nil {
		return true
	}
	v, ok := f.Schema["is_nullable"].(bool)
	if !ok {
		return true
	}
	return v
}
