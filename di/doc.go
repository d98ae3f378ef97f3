// Package di provides a small, explicit value registry for dependency wiring.
//
// MapRegistry stores values under abstract names. An alias.Interface can be
// attached so that lookups accept any alias of an abstract name:
//
//	aliases := alias.New()
//	_ = aliases.Alias("Logger", "log")
//
//	reg := di.NewMapRegistry().WithAliases(aliases).Provide("Logger", logger)
//	l := reg.MustGet("log")
//
// There is no reflection-based injection and no container graph; wiring stays
// explicit in your composition root (main/bootstrap).
//
// Import
//
//	"github.com/sghaida/typealias/di"
package di
