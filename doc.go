// Package typealias is an in-memory alias registry for Go.
//
// Aliases map names to abstract (canonical) names. Chains are resolved to their
// terminal name and circular chains are reported instead of looping.
//
// Package typealias See subpackages:
//   - alias: the registry, its locked variant and the YAML config format
//   - di: a value registry that resolves lookup keys through aliases
//   - cmd/aliasctl: CLI to resolve, list and check YAML alias files
//   - examples/aliases: runnable example wiring alias + di together
package typealias
