package logger

import (
	"fmt"
	"log/slog"
)

// maxUserAgentLen caps UA strings in log records; clients control their length.
const maxUserAgentLen = 256

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is empty, it returns an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// UserAgent records the raw UA under "user_agent", truncated to a safe length.
func UserAgent(ua string) slog.Attr {
	if len(ua) > maxUserAgentLen {
		ua = ua[:maxUserAgentLen]
	}
	return slog.String("user_agent", ua)
}

// Client records a short human-readable client identifier under "client".
func Client(id string) slog.Attr {
	return slog.String("client", id)
}

// DeviceType records the classified form factor under "device_type".
func DeviceType(t fmt.Stringer) slog.Attr {
	if t == nil {
		return slog.Attr{}
	}
	return slog.String("device_type", t.String())
}

// Addr records a listen address under "addr".
func Addr(addr string) slog.Attr {
	return slog.String("addr", addr)
}
