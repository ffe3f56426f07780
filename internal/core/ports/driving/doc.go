// Package driving defines the interfaces the core exposes to external
// actors (primary/driving ports): the cobra CLI and the interactive
// shell both talk to the core exclusively through these.
package driving
