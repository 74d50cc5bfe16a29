/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Bitcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package radix renders integers in decimal, hexadecimal and nibble-grouped binary.
package radix

import (
	"strconv"
	"strings"
)

// FormatDecimal renders n as a signed decimal number
func FormatDecimal(n int64) string {
	return strconv.FormatInt(n, 10)
}

// FormatHex renders n as 0x followed by lowercase hex digits without leading zeros.
// Negative values are shown as their 64-bit two's complement.
func FormatHex(n int64) string {
	return "0x" + strconv.FormatUint(uint64(n), 16)
}

// ToBinaryGrouped renders n in binary with a space between every nibble, counted
// from the least significant bit. Only the leftmost group can be shorter than 4 digits.
// Negative values are shown as their 64-bit two's complement.
func ToBinaryGrouped(n int64) string {
	bits := strconv.FormatUint(uint64(n), 2)

	head := len(bits) % 4
	if head == 0 {
		head = 4
	}

	var sb strings.Builder
	sb.Grow(len(bits) + len(bits)/4)
	sb.WriteString(bits[:head])
	for i := head; i < len(bits); i += 4 {
		sb.WriteByte(' ')
		sb.WriteString(bits[i : i+4])
	}
	return sb.String()
}

// NumberLines returns the three report lines for a value
func NumberLines(n int64) []string {
	return []string{
		"dec: " + FormatDecimal(n),
		"hex: " + FormatHex(n),
		"bin: " + ToBinaryGrouped(n),
	}
}
