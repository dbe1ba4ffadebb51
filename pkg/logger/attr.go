package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors collects the non-nil errors under the key "errors", indexed by
// their position. All-nil input produces an empty Attr, which slog drops.
func Errors(errs ...error) slog.Attr {
	var group []slog.Attr
	for i, err := range errs {
		if err == nil {
			continue
		}
		group = append(group, slog.Any(strconv.Itoa(i), err))
	}
	if len(group) == 0 {
		return slog.Attr{}
	}
	return Group("errors", group...)
}

// Error logs err under the key "error". A nil err produces an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// DocumentID records the document identifier under the key "document_id".
// A nil id produces an empty Attr.
func DocumentID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("document_id", id)
}

// Filename records the uploaded file name under the key "filename".
func Filename(name string) slog.Attr {
	return slog.String("filename", name)
}

// RequestID records the request identifier under the key "request_id".
// A nil id produces an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Role records a template role key under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Driver records a storage driver name under the key "driver".
func Driver(name string) slog.Attr {
	return slog.String("driver", name)
}

// Pages records a document page count under the key "pages".
func Pages(n int) slog.Attr {
	return slog.Int("pages", n)
}

// ErrorFields records the number of failing field paths under the key
// "error_fields".
func ErrorFields(n int) slog.Attr {
	return slog.Int("error_fields", n)
}

// Duration records an elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records a lifecycle event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
