// Package domain contains the core value types of the idea generator: the
// input mode a user picks, the request they submit and the result shown back
// to them. It is independent of any infrastructure or delivery mechanism.
package domain
