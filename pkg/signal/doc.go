// Package signal defines the two-valued keying state shared by the
// morsekey pipeline.
//
// A [State] is either [Off] or [On]. A [Bits] value holds one State per
// time unit and is the output of the codec and the input of the
// run-length encoder. State is deliberately not a bool: the zero value is
// Off, and conversions to and from text go through [ParseBits] and
// [Bits.String].
package signal
