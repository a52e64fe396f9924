package desktop

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_StartsHidden(t *testing.T) {
	app, host, _ := newTestApp(t)

	assert.Equal(t, Hidden, app.Window.State())
	assert.Zero(t, host.shown)
	assert.False(t, app.Quitting())
}

func TestWindow_ShowAndCenter(t *testing.T) {
	app, host, _ := newTestApp(t)

	app.Window.ShowAndCenter()

	assert.Equal(t, Visible, app.Window.State())
	assert.Equal(t, [2]int{360, 165}, host.position)
	assert.Equal(t, 1, host.shown)
	assert.Equal(t, 1, host.focused)
	assert.Zero(t, host.centered)
}

func TestWindow_ShowAndCenterWithoutWorkArea(t *testing.T) {
	app, host, _ := newTestApp(t)
	host.hasWorkArea = false

	app.Window.ShowAndCenter()

	assert.Equal(t, 1, host.centered)
	assert.Equal(t, [2]int{0, 0}, host.position)
}

func TestWindow_DomReadyShows(t *testing.T) {
	app, host, _ := newTestApp(t)

	app.DomReady()

	assert.Equal(t, Visible, app.Window.State())
	assert.Equal(t, 1, host.shown)
}

func TestWindow_CloseHidesUntilQuitting(t *testing.T) {
	app, host, _ := newTestApp(t)
	app.Window.ShowAndCenter()

	for i := 0; i < 3; i++ {
		assert.True(t, app.Window.RequestClose())
		assert.Equal(t, Hidden, app.Window.State())
	}
	assert.Equal(t, 3, host.hidden)
	assert.Zero(t, host.quits)
}

func TestWindow_RandomSequencesNeverTerminate(t *testing.T) {
	app, _, _ := newTestApp(t)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		switch r.Intn(5) {
		case 0:
			app.Window.ShowAndCenter()
		case 1:
			app.Window.ToggleFullScreen()
		case 2:
			app.Window.LeaveFullScreen()
		case 3:
			app.Notifications.Handle(SignalNotificationClick)
		default:
			require.True(t, app.Window.RequestClose())
			require.Equal(t, Hidden, app.Window.State())
		}
		require.NotEqual(t, Terminated, app.Window.State())
	}
	assert.False(t, app.Quitting())
}

func TestWindow_QuitLetsCloseComplete(t *testing.T) {
	app, host, _ := newTestApp(t)
	app.Window.ShowAndCenter()

	app.Tray.Quit()

	assert.True(t, app.Quitting())
	assert.Equal(t, Terminated, app.Window.State())
	assert.Equal(t, 1, host.quits)
	assert.Equal(t, 1, host.trayDestroyed)

	assert.False(t, app.Window.RequestClose())
	assert.False(t, app.Window.RequestClose())
	assert.Equal(t, Terminated, app.Window.State())

	// nothing brings the window or the flag back
	app.Window.ShowAndCenter()
	app.Quit()
	assert.Equal(t, Terminated, app.Window.State())
	assert.True(t, app.Quitting())
	assert.Equal(t, 1, host.quits)
	assert.Equal(t, 1, host.shown)
}

func TestWindow_ToggleFullScreen(t *testing.T) {
	app, host, _ := newTestApp(t)

	// hidden windows do not go full screen
	app.Window.ToggleFullScreen()
	assert.Equal(t, Hidden, app.Window.State())
	assert.Empty(t, host.notices)

	app.Window.ShowAndCenter()
	app.Window.ToggleFullScreen()
	assert.Equal(t, FullScreen, app.Window.State())
	assert.True(t, host.fullScreen)
	require.Len(t, host.notices, 1)
	assert.Equal(t, notice{fullScreenTitle, fullScreenBody}, host.notices[0])

	app.Window.ToggleFullScreen()
	assert.Equal(t, Visible, app.Window.State())
	assert.False(t, host.fullScreen)
	assert.Len(t, host.notices, 2)
}

func TestWindow_LeaveFullScreen(t *testing.T) {
	app, host, _ := newTestApp(t)
	app.Window.ShowAndCenter()

	app.Window.LeaveFullScreen()
	assert.Equal(t, Visible, app.Window.State())

	app.Window.ToggleFullScreen()
	app.Notifications.Handle(SignalLeaveFullScreen)
	assert.Equal(t, Visible, app.Window.State())
	assert.False(t, host.fullScreen)
	assert.Len(t, host.notices, 1)
}

func TestWindow_CloseFromFullScreen(t *testing.T) {
	app, host, _ := newTestApp(t)
	app.Window.ShowAndCenter()
	app.Window.ToggleFullScreen()

	assert.True(t, app.Window.RequestClose())
	assert.Equal(t, Hidden, app.Window.State())
	assert.False(t, host.fullScreen)
}

func TestWindow_ShowKeepsFullScreen(t *testing.T) {
	app, host, _ := newTestApp(t)
	app.Window.ShowAndCenter()
	app.Window.ToggleFullScreen()
	host.position = [2]int{}

	app.Window.ShowAndCenter()

	assert.Equal(t, FullScreen, app.Window.State())
	assert.Equal(t, [2]int{}, host.position)
}

func TestWindowState_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "fullscreen", FullScreen.String())
	assert.Equal(t, "unknown", WindowState(42).String())
}

func TestWindow_ConcurrentShowAndCloseAgree(t *testing.T) {
	app, host, _ := newTestApp(t)
	host.showDelay = 20 * time.Millisecond

	done := make(chan struct{})
	go func() {
		app.Window.ShowAndCenter()
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	assert.True(t, app.Window.RequestClose())
	<-done

	switch app.Window.State() {
	case Hidden:
		assert.False(t, host.windowVisible())
	case Visible:
		assert.True(t, host.windowVisible())
	default:
		t.Fatalf("unexpected state %s", app.Window.State())
	}
}
