/*
Package gateway connects HTTP requests to named services.

A Handler turns every request into a route.RequestContext
and hands it to the entry Service of a Registry, the Router unless configured otherwise.
The Router applies the routing rules and then either redirects,
delegates to another registered Service or renders content.
*/
package gateway
