// Package ptr provides helper functions for creating pointers to values.
// Optional document and payload fields are pointers so that an explicit
// zero is distinguishable from an absent key.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T { return &v }

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to the given int value.
func Int(i int) *int { return &i }

// String returns a pointer to the given string value.
func String(s string) *string { return &s }

// Deref returns the value p points to, or def when p is nil.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
