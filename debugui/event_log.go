package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetrion/game"
	"github.com/plus3/tetrion/loop"
)

// EventLog records the most recent controller events in a ring buffer.
type EventLog struct {
	entries []logEntry
	next    int
	count   int
	seq     uint64
	subs    []game.Subscription
}

type logEntry struct {
	seq   uint64
	event game.Event
}

// NewEventLog subscribes to every event kind on c and keeps the last
// capacity of them.
func NewEventLog(c *game.Controller, capacity int) *EventLog {
	l := &EventLog{entries: make([]logEntry, max(capacity, 1))}
	l.subs = c.SubscribeAll(l.record)
	return l
}

// Close removes the log's subscriptions from c.
func (l *EventLog) Close(c *game.Controller) {
	for _, sub := range l.subs {
		c.Unsubscribe(sub)
	}
	l.subs = nil
}

func (l *EventLog) record(ev game.Event) {
	l.seq++
	l.entries[l.next] = logEntry{seq: l.seq, event: ev}
	l.next = (l.next + 1) % len(l.entries)
	l.count = min(l.count+1, len(l.entries))
}

func (l *EventLog) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 300), imgui.CondOnce)
	if !imgui.BeginV("Events", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EventTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Detail")
		imgui.TableHeadersRow()

		// newest first
		for i := 1; i <= l.count; i++ {
			e := l.entries[(l.next-i+len(l.entries))%len(l.entries)]
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", e.seq))
			imgui.TableNextColumn()
			imgui.Text(e.event.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(describe(e.event))
		}
		imgui.EndTable()
	}

	imgui.End()
}

func describe(ev game.Event) string {
	switch ev.Kind {
	case game.EventLineClear:
		return fmt.Sprintf("rows %v", ev.Rows)
	case game.EventPieceLock, game.EventSpin:
		return fmt.Sprintf("%s at (%d,%d) %s", ev.Piece.Type, ev.Piece.Position.X, ev.Piece.Position.Y, ev.Piece.Rotation)
	case game.EventCombo:
		return fmt.Sprintf("x%d", ev.Combo)
	case game.EventLevelUp:
		return fmt.Sprintf("level %d", ev.Level)
	}
	return ""
}
