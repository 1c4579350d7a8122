package paths

import (
	"flag"
)

// SetupPackDirsFlag creates a new string flag with the passed name holding a
// comma separated list of content pack directories. It defaults to the
// directory Find locates for "packs", if any.
func SetupPackDirsFlag(flagName string, flagPtr *string) {
	flag.StringVar(flagPtr, flagName, Find("packs"), "Comma separated content pack directories, or directories containing content packs")
}
