// Command aliasctl inspects an alias registry described by a YAML file.
//
// Usage:
//
//	aliasctl resolve --file aliases.yaml log db
//	aliasctl list --file aliases.yaml
//	aliasctl check --file aliases.yaml
//
// The file format is documented on alias.Config. check exits with status 1 if
// any alias chain is circular.
package main
