// Package mode wires the indent computations into a host editing session.
//
// The host supplies its collaborators as callbacks in Config; the mode owns
// nothing but the enabled flag and the refresh subscription. Every refresh
// replaces tables and hide regions wholesale, so a host that serializes
// lifecycle events never observes partial state.
package mode
