/*
Package cairn routes relative request paths to rendered content pages.

A request passes through an ordered table of prefix rules
that may delegate it to another registered service,
redirect it, or rewrite its path.
A request left standing after the rules resolves to one of
private.html, public.html or index.html under the content directory,
chosen by whether the session is authenticated,
and is rendered through its layout.

The root package holds what every other package shares:
the [Environment], context [Key] values and sentinel errors.
*/
package cairn
