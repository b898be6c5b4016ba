// Package token generates the folder names used to keep same-named staged
// files apart. Every generator returns lower-case hexadecimal strings.
//
// ClockHex reproduces the historical scheme (epoch milliseconds in hex) and
// can collide when two files with the same name are staged within the same
// millisecond. UUIDHex and Sequence do not have that limitation.
package token
