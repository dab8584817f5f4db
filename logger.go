package decide

import (
	"github.com/golang/glog"
)

// Logger receives diagnostic messages about the candidates considered and
// the final choice. It must not influence the decision.
type Logger interface {
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type glogLogger struct{}

// GlogLogger logs choices at glog verbosity 1 and candidates at verbosity 2.
func GlogLogger() Logger {
	return glogLogger{}
}

func (glogLogger) Infof(format string, args ...interface{}) {
	glog.V(1).Infof(format, args...)
}

func (glogLogger) Debugf(format string, args ...interface{}) {
	glog.V(2).Infof(format, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Infof(format string, args ...interface{})  {}
func (NopLogger) Debugf(format string, args ...interface{}) {}
