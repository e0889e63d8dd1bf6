// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package floatconv converts floating-point values to and from their textual
representation without delegating to the runtime's own conversion routines.

All arithmetic is performed on float64, the widest IEEE binary type
available; callers needing a float32 result convert at the boundary.
Decimal scaling goes through a single power-of-ten helper built on a fixed
table of the nine constants 10**(2**k), k = 0..8, so parsing and formatting
share the same (small) rounding bias. The package trades correctness on
very long digit sequences for simplicity and zero allocation: digits beyond
the mantissa's reliable decimal precision are absorbed on input and printed
as zeros on output.

Parsing

Parse interprets the longest numeric prefix of its input and reports how
many bytes it consumed, so callers can detect trailing garbage themselves.
ParseFloat is the strict form: the entire input must be consumed.

	f, err := floatconv.ParseFloat("3.5")    // 3.5
	f, n, err := floatconv.Parse("3.14abc")  // 3.14, n = 4

A numeral carrying a radix prefix (0b, 0o, 0x) is not converted
numerically: its digits are parsed as a raw integer and the integer's bit
pattern is reinterpreted as a float64. This is a deliberate escape hatch
for spelling exact bit patterns in text:

	f, _ := floatconv.ParseFloat("0x3ff0000000000000")  // 1.0

The literals "inf" and "nan" (optionally signed, case-sensitive) denote
the IEEE special values.

Formatting

Format writes into a caller-supplied buffer of at least MinBufLen bytes
and returns the written prefix; it never allocates and never retains the
buffer. Output is fixed notation by default, scientific on request, and
scientific regardless of the request when the fixed form would not fit the
buffer. Rounding at the requested number of decimals is round-half-up.

	buf := make([]byte, 64)
	out, _ := floatconv.Format(buf, 3.14159, 4, false)  // "3.1416"

FormatFloat, FormatUTF16 and FormatRunes are allocating wrappers returning
an owned copy in each of the three text unit widths; AppendFloat appends
to an existing byte slice.

All functions are pure over their inputs and the caller's buffer. The
power-of-ten table is initialized at program start and never written
afterwards, so every operation is safe for concurrent use; concurrent
calls sharing a destination buffer race on that buffer by contract.
*/
package floatconv
