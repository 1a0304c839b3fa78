// Package effector contains ready-made [schedule.Effector] implementations.
//
// Console prints one line per transition, Bits prints the keying as 1/0
// characters, Recorder keeps every call in memory and Multi fans a call out
// to several effectors. Hardware outputs live in the led and audio
// sub-packages so that importing this package pulls no device drivers.
package effector
