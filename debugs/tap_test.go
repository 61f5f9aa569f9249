package debugs

import (
	"testing"
)

func TestTap(t *testing.T) {
	testScope(t).Call(func(
		tap Tap,
	) {
		// stdin is not interactive under go test, the session ends at once
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}
