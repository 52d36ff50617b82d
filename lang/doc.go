// Package lang implements a small declarative language for defining named
// RGB colors.
//
// # Syntax
//
// A source file is a sequence of statements separated by ';'. Line comments
// start with "//" and run to the end of the line.
//
//	let base = #1e1e2e;        // bind a hex color
//	accent = rgb(137, 180, 250); // short form of let
//	hover = plus(accent, 16, 16, 16);
//	muted = minus(base, 8, 8, 8);
//	include theme/extra.dfr
//
// Statements are:
//
//	statement → "let" Identifier "=" expr
//	          | Identifier "=" expr
//	          | "include" Identifier
//	expr      → HexColor | Int | Identifier
//	          | Identifier "(" ( expr ( "," expr )* )? ")"
//
// A hex color is '#' followed by exactly six hexadecimal digits. An integer
// is a decimal number in [0, 255], optionally signed with '+'; integers are
// only valid as arguments of builtins. Any other word is an identifier, so
// paths such as "theme/extra.dfr" are identifiers too.
//
// # Builtins
//
//   - rgb(r, g, b) makes a color from three integers.
//   - plus(color, r, g, b) adds to each channel, saturating at 255.
//   - minus(color, r, g, b) subtracts from each channel, saturating at 0.
//
// # Includes
//
// "include p" evaluates the file p into the same environment. Relative
// paths resolve against the directory of the including file; paths starting
// with '/' are absolute and paths starting with "~" are relative to the
// home directory. Including a file that is already being evaluated is
// reported as an include cycle.
//
// # Faults
//
// Evaluation never stops at the first error. Each failing statement appends
// a fault to the [Env] and evaluation continues with the next statement.
// Faults are [*Error] values classified by [Category] and rendered with
// [FormatFault].
package lang
