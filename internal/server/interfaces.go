package server

// Server is the lifecycle contract for the listing API's transport servers.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown]. Today the only
// implementation is the HTTP server hosting the /api routes.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
