package middleware

import (
	"github.com/gin-gonic/gin"
)

// ActivitySink receives qualifying user activity signals.
type ActivitySink interface {
	Activity()
}

// Activity reports each qualifying request to the idle-session controller.
// The signal is recorded before the handler chain runs, so activity is
// observed even when a downstream handler aborts the request. The session
// endpoints themselves are excluded: confirming or inspecting the idle
// warning must not count as fresh activity.
func Activity(sink ActivitySink, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; !ok {
			sink.Activity()
		}
		c.Next()
	}
}
