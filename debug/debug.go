package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Decode bool
	Encode bool
	Bridge bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decode = boolEnv("RMPP_DEBUG_DECODE")
	d.Encode = boolEnv("RMPP_DEBUG_ENCODE")
	d.Bridge = boolEnv("RMPP_DEBUG_BRIDGE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decode() bool {
	return d.Decode
}
func Encode() bool {
	return d.Encode
}
func Bridge() bool {
	return d.Bridge
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
