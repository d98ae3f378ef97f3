// Package alias provides a small in-memory alias registry.
//
// A Registry maps alias names to abstract (canonical) names and keeps a reverse
// index of the aliases pointing at each abstract name. Names are opaque strings;
// the package does not care whether they denote types, services or config keys.
//
// Aliases may form chains (log -> logger -> Logger). Resolve follows a chain to
// its terminal name and reports a CircularReferenceError if it loops. Direct
// self-aliasing is rejected at registration time with InvalidOperationError;
// longer cycles can be registered and are only caught on resolution.
//
// Registry is not safe for concurrent use. Use SyncRegistry when a registry is
// shared across goroutines.
//
// Expected usage:
//
//	reg := alias.New()
//	if err := reg.Alias("Logger", "log"); err != nil {
//		return err
//	}
//	name, err := reg.Resolve("log") // "Logger"
package alias
