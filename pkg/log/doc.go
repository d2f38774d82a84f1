// Package log is the logging facade used by the maclaurin driver and CLI.
//
// Components depend on the [Logger] interface rather than on a concrete
// library. [NewZerologAdapter] is the production implementation; tests use
// [NewNoopLogger] or [NewRecorder].
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.InfoLevel)
//	logger.Info("evaluated", log.String("func", "cos"), log.Float64("x", 0.5))
package log
