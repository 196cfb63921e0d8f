package nanoid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16

	lowerDigits = "0123456789abcdefghijklmnopqrstuvwxyz"
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 && l[0] > 0 {
		size = l[0]
	}
	return size
}

// Lower generates a lowercase alphanumeric id, the shape used for job and
// message identifiers.
func Lower(l ...int) string {
	return gonanoid.MustGenerate(lowerDigits, getSize(l...))
}
