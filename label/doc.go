// Package label implements the per-node label storage and addressable
// priority queue the search package drives (spec §4.2's Label Container).
//
// Unlike a scalar Dijkstra, where a node needs only one best-known
// distance, an EV route's cost is a whole tradeoff curve: a node can hold
// several mutually undominated candidate curves at once, each reachable
// via a different balance of time spent versus energy spent. Container
// tracks that per-node candidate set and prunes it with dominance as new
// candidates arrive; Queue orders nodes for processing by the best key
// any of their still-open candidates could produce.
package label
