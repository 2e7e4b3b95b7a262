package nativesurface

import "github.com/sirupsen/logrus"

// LoggerHelper provides standardized logging for surface operations.
// Every entry carries the function name and package.
type LoggerHelper struct {
	fields logrus.Fields
}

// NewLogger creates a new logger helper for the named function.
func NewLogger(pkg, function string) *LoggerHelper {
	return &LoggerHelper{
		fields: logrus.Fields{
			"function": function,
			"package":  pkg,
		},
	}
}

// WithField adds a custom field to the logger
func (l *LoggerHelper) WithField(key string, value interface{}) *LoggerHelper {
	l.fields[key] = value
	return l
}

// WithFields adds multiple custom fields to the logger
func (l *LoggerHelper) WithFields(fields logrus.Fields) *LoggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

// WithError adds error information to the logger
func (l *LoggerHelper) WithError(err error, operation string) *LoggerHelper {
	l.fields["error"] = err.Error()
	l.fields["operation"] = operation
	return l
}

// Debug logs a debug message
func (l *LoggerHelper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

// Warn logs a warning message
func (l *LoggerHelper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}

// BufferFields creates standardized fields describing a buffer without
// logging its contents.
func BufferFields(name string, length int, released bool) logrus.Fields {
	return logrus.Fields{
		name + "_len":      length,
		name + "_released": released,
	}
}
