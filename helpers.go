package lametric

// Pointer helpers for the optional update and notification fields.

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
