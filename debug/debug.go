package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Layout bool
	Diff   bool
	Eval   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Layout = boolEnv("FOLIO_DEBUG_LAYOUT")
	d.Diff = boolEnv("FOLIO_DEBUG_DIFF")
	d.Eval = boolEnv("FOLIO_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Layout() bool {
	return d.Layout
}
func Diff() bool {
	return d.Diff
}
func Eval() bool {
	return d.Eval
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
	os.Stderr.Write([]byte("\n"))
}
