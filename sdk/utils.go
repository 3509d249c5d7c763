package sdk

import (
	"encoding/json"
	"strings"

	"github.com/pinpt/go-common/v10/log"
	ps "github.com/pinpt/go-common/v10/strings"
)

// StringPointer return a string pointer from a value
func StringPointer(val interface{}) *string {
	return ps.Pointer(val)
}

// IntPointer return an int pointer from a value
func IntPointer(val int) *int {
	return &val
}

// Logger is a logger interface
type Logger = log.Logger

type nopLogger struct{}

func (nopLogger) Log(keyvals ...interface{}) error { return nil }

// NewNopLogger returns a Logger that discards everything
func NewNopLogger() Logger {
	return nopLogger{}
}

// LogDebug will log an debug level log to logger
func LogDebug(logger Logger, msg string, kv ...interface{}) error {
	return log.Debug(logger, msg, kv...)
}

// LogWarn will log an warning level log to logger
func LogWarn(logger Logger, msg string, kv ...interface{}) error {
	return log.Warn(logger, msg, kv...)
}

// LogWith will return a new logger adding keyvalues to all logs
func LogWith(logger Logger, keyvals ...interface{}) Logger {
	return log.With(logger, keyvals...)
}

// MapToStruct will unmarshal a map into the target
func MapToStruct(m interface{}, target interface{}) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, target)
}

// JoinURL joins url path parts with exactly one slash between them
func JoinURL(elem ...string) string {
	var sb strings.Builder
	for i, e := range elem {
		if e == "" {
			continue
		}
		if i > 0 && sb.Len() > 0 {
			e = strings.TrimLeft(e, "/")
			if !strings.HasSuffix(sb.String(), "/") {
				sb.WriteString("/")
			}
		}
		sb.WriteString(e)
	}
	return sb.String()
}
