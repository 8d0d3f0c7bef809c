package authstore

import "maps"

const (
	// AdminRole is the role value that marks an identity record as an administrator.
	AdminRole = "ADMIN"

	roleField = "role"
	idField   = "id"
)

// Record is an identity or collection record as returned by the backend.
// Its schema is defined by the backend, so it stays an open map.
type Record map[string]any

// Role returns the record's role field, or "" when absent or not a string.
func (r Record) Role() string {
	s, _ := r.GetString(roleField)
	return s
}

// ID returns the record's id field.
func (r Record) ID() string {
	s, _ := r.GetString(idField)
	return s
}

// IsAdmin reports whether the record carries the admin role.
func (r Record) IsAdmin() bool {
	return r.Role() == AdminRole
}

// GetString retrieves a string value.
func (r Record) GetString(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r[key].(string)
	return s, ok
}

// Clone returns a shallow copy; nil stays nil.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}
