// Package events provides a shared publish/subscribe event registry.
// A single Registry holds at most one subscription to the external
// notification source per event name and fans incoming events out to
// every registered owner. Listener is a per-owner facade that manages
// a set of named subscriptions as a unit, with bulk enable/disable.
package events
