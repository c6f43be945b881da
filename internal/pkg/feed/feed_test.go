package feed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_NavigateKeepsLatestRoute(t *testing.T) {
	f := New(0)
	f.Navigate("driver", "/driver/ride-status")
	f.Navigate("driver", "/driver/home")
	f.Navigate("customer", "/customer/home")

	snap := f.Drain("driver")
	require.NotNil(t, snap.Route)
	assert.Equal(t, "/driver/home", snap.Route.Path)
	assert.Empty(t, snap.Toasts)

	assert.Nil(t, f.Drain("driver").Route, "drain clears the route")
	assert.Equal(t, "/customer/home", f.Drain("customer").Route.Path)
}

func TestFeed_NotifyIsBounded(t *testing.T) {
	f := New(3)
	for i := 1; i <= 5; i++ {
		f.Notify("driver", "info", fmt.Sprintf("toast %d", i))
	}

	snap := f.Drain("driver")
	require.Len(t, snap.Toasts, 3)
	assert.Equal(t, "toast 3", snap.Toasts[0].Message)
	assert.Equal(t, "toast 5", snap.Toasts[2].Message)
	assert.Equal(t, "info", snap.Toasts[2].Level)

	assert.Empty(t, f.Drain("driver").Toasts)
}
