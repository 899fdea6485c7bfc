// Package implication implements the implicational closure system: a
// set of elements E plus a set of rules premise -> conclusion, both
// subsets of E, whose closure is the least fixpoint under rule firing.
//
// The saturation loop uses the same round-based shape as a BFS layering:
// each round fires every still-applicable rule and stops when a round
// adds no element, generalized here from graph traversal to repeated premise
// containment checks.
package implication
