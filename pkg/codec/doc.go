// Package codec converts text to International Morse Code.
//
// A message is normalized (upper-cased, surrounding whitespace trimmed and
// inner whitespace collapsed to single word separators), mapped to morse
// symbols through a fixed alphabet table and expanded into a keying
// sequence of one [signal.State] per time unit:
//
//	dit              1 unit ON
//	dah              3 units ON
//	element gap      1 unit OFF
//	character gap    3 units OFF
//	word gap         7 units OFF
//
// Characters missing from the table are sent as the question mark pattern
// ("..--..") instead of failing, so malformed input still produces a
// signal.
//
// Decoding walks an immutable dit/dah tree built once from the same table.
package codec
