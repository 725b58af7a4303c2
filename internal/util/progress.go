package util

import (
	"fmt"
)

// Progress reports worker completion on a single console line, updated
// in place with a carriage return. A newline is printed once done
// reaches total.
func Progress(msg string, done, total int) {
	if total <= 0 {
		fmt.Printf("\r%s [ %d / %d ]", msg, done, total)
		if done >= total {
			fmt.Println()
		}
		return
	}
	percent := float64(done) / float64(total) * 100
	fmt.Printf("\r%s [ %d / %d (%.0f%%) ]", msg, done, total, percent)
	if done >= total {
		fmt.Println()
	}
}
