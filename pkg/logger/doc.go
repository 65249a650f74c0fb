// Package logger builds *slog.Logger values with functional options.
//
// Production and staging presets write JSON. The development preset writes
// colorized records through github.com/lmittmann/tint. Every logger is wrapped
// in a LogHandlerDecorator that runs registered ContextExtractor callbacks, so
// request-scoped values such as the request id show up without being passed
// explicitly.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, cfg.Name),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "user registered", logger.UserID(id))
//
// Attribute helpers return an empty slog.Attr for nil values, so
// log.Error("x", logger.Error(err)) is safe without a nil check.
package logger
