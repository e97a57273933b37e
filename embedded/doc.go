// Package embedded provides a synchronous HTTP server adapter for
// constrained targets whose network stacks only expose blocking or polling
// socket APIs. It accepts connections one at a time, parses each request
// with net/http, dispatches it into an http.Handler (typically a router
// mounted with the goohttp root package), and serializes the captured
// response back onto the connection before accepting the next one.
//
// Stacks that only hand over established connections can skip the accept
// loop entirely and call HandleConn per connection.
package embedded
