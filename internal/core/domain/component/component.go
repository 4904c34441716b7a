/*
Package component defines the core domain entity for a registered component.
*/
package component

import "github.com/AntonioJCosta/aliasmap/pkg/aliasmap"

/*
Component is a named unit in the registry: a primary name, the aliases it can
be addressed by, and the command it stands for. This is a core domain entity.
*/
type Component struct {
	Name        string   `yaml:"name" toml:"name"`
	Aliases     []string `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Command     string   `yaml:"command,omitempty" toml:"command,omitempty"`
	Description string   `yaml:"description,omitempty" toml:"description,omitempty"`
}

// AliasKey implements aliasmap.Keyed.
func (c Component) AliasKey() aliasmap.Key {
	return aliasmap.Key{Name: c.Name, Aliases: c.Aliases}
}

// Names returns the primary name followed by the aliases.
func (c Component) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}
