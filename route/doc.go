/*
Package route decides what happens to a request path before any content is read.

A [Table] is an ordered list of [Rule] values built from configuration.
Each Rule pairs a regular expression, anchored at the start of the path,
with an [Action] of one of three kinds, named by a prefix on the configured value:

	"/api/":  "service:backend/{0}"   delegate to the service named by the first segment
	"/old":   "location:/new{0}"      redirect to the expanded URL
	"/docs":  "/manual{0}?v=2"        rewrite the path and route it again

In an action expression, {0} expands to the remainder of the path after the matched prefix,
{1} through {n} to the capture groups, and {name} to a named capture group.

[Table.Route] applies the first matching Rule, in declaration order,
to a [RequestContext] until a Rule delegates or redirects, or no Rule matches.
*/
package route
