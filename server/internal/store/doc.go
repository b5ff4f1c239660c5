// Package store holds the process-wide session state of securipass: the
// number of passwords generated since startup and a bounded, most-recent-first
// history of them. Nothing is persisted; the state lives as long as the Store.
package store
