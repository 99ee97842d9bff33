/*
Package logger provides leveled logging to a cairn app by defining the required behavior in [Logger]
and providing an implementation of it with [CairnLogger].

Log messages emitted by [CairnLogger] are composed of a timestamp, the log level,
the call site, the message and, when provided, a JSON-encoded [LogContext]:

	2022/04/28 15:55:21 [DEBUG] gateway/router.go:43 'rewrote path' log_context: {"data":{"path":"/docs"}}

When SENTRY_DSN is set, [New] returns a [SentryLogger],
which additionally reports the error carried by a [LogContext]
for Warn, Error and Fatal messages.
*/
package logger
