package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Errors groups non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under the key "error", or returns an empty Attr for nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func CacheName(name string) slog.Attr {
	return slog.String("cache", name)
}

// Key records a cache key under "key".
func Key(key any) slog.Attr {
	return slog.Any("key", key)
}

func Capacity(n int) slog.Attr {
	return slog.Int("capacity", n)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
