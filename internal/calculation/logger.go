package calculation

// Logger is the printf-style subset of *zap.SugaredLogger the projection engine writes to.
type Logger interface {
	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)
}

var _ Logger = NopLogger{}

// NopLogger discards everything; engines start with it until SetLogger is called.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
