// Package logger builds *slog.Logger values for rulekit programs and offers
// attribute helpers with stable key names.
//
// New takes functional options and returns a JSON or text logger. Context
// extractors registered with WithContextExtractors or WithContextValue run for
// every record, which is how request IDs set by HTTP middleware end up in the
// logs:
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("RULEKIT_ENV"), "rulekit"),
//	    logger.WithContextExtractors(httpvalidator.RequestIDExtractor()),
//	)
//	log.InfoContext(ctx, "rule failed", logger.Field("email"), logger.Rule("email"))
//
// Libraries in this module accept an optional logger and fall back to
// Discard. Error and Errors return an empty attribute for nil errors, so they
// can be passed without a nil check.
package logger
