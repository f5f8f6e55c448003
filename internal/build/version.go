package build

import "fmt"

var (
	ProjectVersion = "unknown"
	GitRef         = "unknown"
	BuildDate      = "unknown"
	LongVersion    = fmt.Sprintf("%s (%s, built on %s)", ProjectVersion, GitRef, BuildDate)
)
