// Command wsprbits prints the first symbols of a .bits dump.
//
// Usage:
//
//	wsprbits [-n COUNT] [file]
//
// The file defaults to wspr_normal.bits and COUNT to 14.
package main
