package status_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelkb/keyhud/event"
	"github.com/kestrelkb/keyhud/keylabel"
	"github.com/kestrelkb/keyhud/status"
)

// fakeClock hands out a controllable monotonic time.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func press(id uint32) event.KeycodeStateChanged {
	return event.KeycodeStateChanged{
		UsagePage: keylabel.PageKeyboard,
		Keycode:   id,
		Pressed:   true,
	}
}

func TestKeypressUpdatesLastKey(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	out := &recordingRenderer{}
	engine.AddWidget(out)

	bus.Publish(press(0x04))

	snap := engine.Widgets()[0].Snapshot()
	assert.Equal(t, "A", snap.LastKey)
	assert.True(t, snap.ShowLastKey)
	assert.Equal(t, "A", out.top.LastKey)
	assert.True(t, out.top.ShowLastKey)
}

func TestKeypressReleaseIgnored(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	out := &recordingRenderer{}
	engine.AddWidget(out)

	clock.Advance(time.Second)
	bus.Publish(press(0x04))
	topAfterPress := out.topDraws

	clock.Advance(time.Second)
	release := press(0x05)
	release.Pressed = false
	bus.Publish(release)

	snap := engine.Widgets()[0].Snapshot()
	assert.Equal(t, "A", snap.LastKey, "release must not change the label")
	assert.True(t, snap.ShowLastKey)
	assert.Equal(t, topAfterPress, out.topDraws, "release must not redraw")
}

func TestKeypressReleaseNeverSetsShowLastKey(t *testing.T) {
	dev := &fakeDevice{}
	engine := status.New(dev)
	bus := newAttachedBus(engine)
	engine.AddWidget(&recordingRenderer{})

	release := press(0x04)
	release.Pressed = false
	bus.Publish(release)

	assert.False(t, engine.Widgets()[0].Snapshot().ShowLastKey)
}

func TestKeypressDebounce(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	out := &recordingRenderer{}
	engine.AddWidget(out)

	bus.Publish(press(0x04))
	assert.Equal(t, "A", engine.Widgets()[0].Snapshot().LastKey)

	// 50 ms later: dropped.
	clock.Advance(50 * time.Millisecond)
	bus.Publish(press(0x05))
	assert.Equal(t, "A", engine.Widgets()[0].Snapshot().LastKey)

	// 150 ms after the rendered press: applied.
	clock.Advance(100 * time.Millisecond)
	bus.Publish(press(0x06))
	assert.Equal(t, "C", engine.Widgets()[0].Snapshot().LastKey)
}

func TestKeypressDebounceIsGlobalAcrossWidgets(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	first := &recordingRenderer{}
	second := &recordingRenderer{}
	engine.AddWidget(first)
	engine.AddWidget(second)

	bus.Publish(press(0x04))
	clock.Advance(50 * time.Millisecond)
	bus.Publish(press(0x05))

	// The rate limit applies once, not per widget: both widgets saw only
	// the first press.
	assert.Equal(t, "A", first.top.LastKey)
	assert.Equal(t, "A", second.top.LastKey)
}

func TestKeypressUnmatchedUsagePlaceholder(t *testing.T) {
	dev := &fakeDevice{}
	engine := status.New(dev)
	bus := newAttachedBus(engine)
	engine.AddWidget(&recordingRenderer{})

	bus.Publish(press(0x39)) // caps lock has no table entry

	assert.Equal(t, "KEY", engine.Widgets()[0].Snapshot().LastKey)
}

func TestKeypressPositionalEvents(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	engine.AddWidget(&recordingRenderer{})

	bus.Publish(event.PositionStateChanged{Position: 0, Pressed: true})
	assert.Equal(t, "TAB", engine.Widgets()[0].Snapshot().LastKey)

	clock.Advance(time.Second)
	bus.Publish(event.PositionStateChanged{Position: 99, Pressed: true})
	assert.Equal(t, "K99", engine.Widgets()[0].Snapshot().LastKey)
}

func TestKeypressCustomPositionTable(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev,
		status.WithClock(clock.Now),
		status.WithPositionLabels([]string{"THUMBCLUSTER"}))
	bus := newAttachedBus(engine)
	engine.AddWidget(&recordingRenderer{})

	bus.Publish(event.PositionStateChanged{Position: 0, Pressed: true})

	// Long labels are truncated to the last-key box capacity.
	assert.Equal(t, "THUMBCLUS", engine.Widgets()[0].Snapshot().LastKey)

	clock.Advance(time.Second)
	bus.Publish(event.PositionStateChanged{Position: 1, Pressed: true})
	assert.Equal(t, "K1", engine.Widgets()[0].Snapshot().LastKey)
}

func TestKeypressConsumerPage(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	dev := &fakeDevice{}
	engine := status.New(dev, status.WithClock(clock.Now))
	bus := newAttachedBus(engine)
	engine.AddWidget(&recordingRenderer{})

	bus.Publish(event.KeycodeStateChanged{
		UsagePage: keylabel.PageConsumer,
		Keycode:   0xE9,
		Pressed:   true,
	})
	assert.Equal(t, "VOL+", engine.Widgets()[0].Snapshot().LastKey)

	clock.Advance(time.Second)
	bus.Publish(event.KeycodeStateChanged{
		UsagePage: keylabel.PageConsumer,
		Keycode:   0x42,
		Pressed:   true,
	})
	assert.Equal(t, "MEDIA", engine.Widgets()[0].Snapshot().LastKey)
}
