package pool

import "unsafe"

func sizeofImpl[T any](_ T) uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
