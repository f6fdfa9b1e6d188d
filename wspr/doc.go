// Package wspr provides WSPR symbol sequences and the operations used to build
// decode test fixtures from them.
//
// It covers:
//   - The 162-symbol, 4-tone channel sequence and its validation
//   - An Encoder abstraction plus a native type-1 message encoder
//   - Sync-bit corruption and the bit-difference report
//   - Raw .bits dumps and .rf frequency listings
package wspr
