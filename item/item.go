// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"strconv"
	"strings"
)

// Item - a key in any of the ordered trees
//
// Compare returns:
//   a negative value  if this item is less than the argument
//   zero              if equal
//   a positive value  if greater
//
// Only the sign is significant, so a comparator may return any
// integer difference between the keys.
//
// The result must be stable for the lifetime of the tree holding the
// key and the argument must be of the same concrete type.
type Item interface {
	Compare(interface{}) int
}

// String - ready made string key
type String string

// Compare - lexical ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - for the %s format
func (s String) String() string {
	return string(s)
}

// Int - ready made integer key
type Int int

// Compare - numeric ordering
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return +1
	default:
		return 0
	}
}

// String - for the %s format
func (i Int) String() string {
	return strconv.Itoa(int(i))
}
