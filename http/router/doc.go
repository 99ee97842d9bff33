/*
Package router mounts the HTTP surface of a cairn app on a [mux.Router].

A [*Router] serves static assets from a directory, any explicitly registered [Route],
and sends every other request to a single catch-all handler,
which in a cairn app is the gateway handing requests to the routing rules.

Middleware added with OnEveryRequest wraps both explicit Routes and the catch-all,
but not assets.
*/
package router
