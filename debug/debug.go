// Package debug provides env-var gated debug logging for go-cxr.
// Set CXR_DEBUG_OPEN, CXR_DEBUG_SAVE, or CXR_DEBUG_QUERY to a truthy
// value to enable the corresponding traces on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Open  bool
	Save  bool
	Query bool
}

var d *debug

func init() {
	d = &debug{}
	d.Open = boolEnv("CXR_DEBUG_OPEN")
	d.Save = boolEnv("CXR_DEBUG_SAVE")
	d.Query = boolEnv("CXR_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Open() bool {
	return d.Open
}
func Save() bool {
	return d.Save
}
func Query() bool {
	return d.Query
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

// Warnf always writes; it is the default sink for non-fatal skip
// warnings during directory loads.
func Warnf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
