package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ClientID records the client identifier under the key "client_id".
func ClientID(id string) slog.Attr {
	return slog.String("client_id", id)
}

// Component records the emitting subsystem under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Duration records elapsed time in milliseconds under the key "duration_ms".
func Duration(ms int64) slog.Attr {
	return slog.Int64("duration_ms", ms)
}
