package changefeed

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// Table names as published on the feed. These match the persisted table names
// minus the gorm prefix.
const (
	TableRooms     = "rooms"
	TableInquiries = "room_inquiries"
	TableUserRoles = "user_roles"
	TableProfiles  = "profiles"
)

// Event is a row-level change notification. Columns carries the values a
// subscriber may filter on (owner_id, customer_id) and never full row data;
// subscribers refetch through their normal query instead of trusting the
// event payload.
type Event struct {
	Table   string            `json:"table"`
	Action  Action            `json:"action"`
	RowID   string            `json:"rowId"`
	Columns map[string]string `json:"columns,omitempty"`
	At      time.Time         `json:"at"`
}

// Subscription receives every event on one table, optionally narrowed to rows
// where a named column equals a value. Close it when the consumer goes away;
// its lifetime is the consumer's lifetime, never the process's.
type Subscription struct {
	feed   *Feed
	table  string
	column string
	value  string

	C      chan Event
	closed bool
}

func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.feed.unsubscribe(s)
}

func (s *Subscription) matches(event Event) bool {
	if event.Table != s.table {
		return false
	}
	if s.column == "" {
		return true
	}
	return event.Columns[s.column] == s.value
}

// Feed fans row events out to table-scoped subscribers. One Feed exists per
// process, shared by the mutation path (publish) and the websocket bridge and
// live queries (subscribe).
type Feed struct {
	sync.Mutex
	log       *logrus.Logger
	subs      map[string]map[*Subscription]bool // table -> subscribers
	broadcast chan Event
	done      chan struct{}
}

func NewFeed(log *logrus.Logger) *Feed {
	feed := &Feed{
		log:       log,
		subs:      make(map[string]map[*Subscription]bool),
		broadcast: make(chan Event, 64),
		done:      make(chan struct{}),
	}
	go feed.run()
	return feed
}

// Publish queues one change event. It never blocks the mutation path; if the
// broadcast buffer is full the event is dropped and polling covers the gap.
func (f *Feed) Publish(table string, action Action, rowID string, columns map[string]string) {
	event := Event{
		Table:   table,
		Action:  action,
		RowID:   rowID,
		Columns: columns,
		At:      time.Now(),
	}
	select {
	case f.broadcast <- event:
	default:
		f.log.Warnf("change feed buffer full, dropping %s event on %s", action, table)
	}
}

func (f *Feed) Subscribe(table, column, value string) *Subscription {
	sub := &Subscription{
		feed:   f,
		table:  table,
		column: column,
		value:  value,
		C:      make(chan Event, 16),
	}

	f.Lock()
	defer f.Unlock()
	if f.subs[table] == nil {
		f.subs[table] = make(map[*Subscription]bool)
	}
	f.subs[table][sub] = true
	return sub
}

func (f *Feed) unsubscribe(sub *Subscription) {
	f.Lock()
	defer f.Unlock()
	if sub.closed {
		return
	}
	sub.closed = true
	if subs, ok := f.subs[sub.table]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(f.subs, sub.table)
		}
	}
	close(sub.C)
}

func (f *Feed) Close() {
	close(f.done)
}

func (f *Feed) run() {
	for {
		select {
		case <-f.done:
			return
		case event := <-f.broadcast:
			f.Lock()
			for sub := range f.subs[event.Table] {
				if !sub.matches(event) {
					continue
				}
				select {
				case sub.C <- event:
				default:
					f.log.Warnf("slow change feed subscriber on %s, dropping event", event.Table)
				}
			}
			f.Unlock()
		}
	}
}
