package logger

import "time"

// Common field constructors for structured logging

// String creates a string field
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration creates a duration field in milliseconds
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Method creates an HTTP method field
func Method(method string) Field {
	return Field{Key: "method", Value: method}
}

// Path creates an HTTP path field
func Path(path string) Field {
	return Field{Key: "path", Value: path}
}

// Status creates an HTTP status field
func Status(status int) Field {
	return Field{Key: "status", Value: status}
}

// RemoteIP creates a remote IP field
func RemoteIP(ip string) Field {
	return Field{Key: "remote_ip", Value: ip}
}

// Username creates a username field
func Username(username string) Field {
	return Field{Key: "username", Value: username}
}

// Any creates a field with any value
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
