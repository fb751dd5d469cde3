package logger

type nopLogger struct{}

// Nop returns a logger that discards everything. Handy default for tests.
func Nop() Client { return nopLogger{} }

func (nopLogger) Debug(string, ...Field) {}
func (nopLogger) Info(string, ...Field)  {}
func (nopLogger) Warn(string, ...Field)  {}
func (nopLogger) Error(string, ...Field) {}
