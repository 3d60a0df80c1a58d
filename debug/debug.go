package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Copy     bool
	Freeze   bool
	Registry bool
	Dangling bool
	Patch    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Copy = boolEnv("TREEDICT_DEBUG_COPY")
	d.Freeze = boolEnv("TREEDICT_DEBUG_FREEZE")
	d.Registry = boolEnv("TREEDICT_DEBUG_REGISTRY")
	d.Dangling = boolEnv("TREEDICT_DEBUG_DANGLING")
	d.Patch = boolEnv("TREEDICT_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Copy() bool {
	return d.Copy
}
func Freeze() bool {
	return d.Freeze
}
func Registry() bool {
	return d.Registry
}
func Dangling() bool {
	return d.Dangling
}
func Patch() bool {
	return d.Patch
}
