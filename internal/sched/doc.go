// Package sched provides the cooperative scheduler loop that deferred
// event handlers run on.
//
// The hub never spawns work of its own: handlers subscribed with deferred
// delivery are posted here and execute on a later turn, after the
// triggering emission has returned to its caller. One loop lives for the
// whole process and survives hub teardown/rebuild cycles.
package sched
