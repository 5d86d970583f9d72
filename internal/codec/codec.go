// Package codec binds the system brotli library. It exposes the incremental
// one-step encode and decode calls that the pump loops in the root package
// are built on: each call is handed the remaining input and the remaining
// output space, and reports how much of each it consumed.
//
// Encoder and Decoder instances own mutable C state. They are not safe for
// concurrent use and must be released with Close; a finalizer covers
// instances that are garbage collected without one.
package codec

/*
#include <stdint.h>
#include <stddef.h>
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// cursor returns the start of b as a C byte pointer, or NULL for an empty
// slice. The brotli stream calls accept a NULL cursor when the matching
// available count is zero.
func cursor(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

// Version reports the version of the linked brotli library as
// "major.minor.patch".
func Version() string {
	v := uint32(encoderVersion())
	return fmt.Sprintf("%d.%d.%d", v>>24, (v>>12)&0xFFF, v&0xFFF)
}
