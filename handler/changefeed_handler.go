package handler

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"room-rental-app/changefeed"
	"room-rental-app/prometheus"
)

// ChangeFeedHandler bridges the in-process change feed to websocket clients.
// A client subscribes to one table per connection, optionally narrowed to
// rows where column equals value, e.g.
// /ws/feed?table=rooms&column=owner_id&value=<id>. The subscription lives
// exactly as long as the connection.
type ChangeFeedHandler struct {
	*logrus.Logger
	Feed *changefeed.Feed
}

func NewChangeFeedHandler(feed *changefeed.Feed, logger *logrus.Logger) *ChangeFeedHandler {
	return &ChangeFeedHandler{Logger: logger, Feed: feed}
}

func validFeedTable(table string) bool {
	switch table {
	case changefeed.TableRooms, changefeed.TableInquiries,
		changefeed.TableUserRoles, changefeed.TableProfiles:
		return true
	}
	return false
}

func (handler *ChangeFeedHandler) HandleFeed(c *websocket.Conn) {
	table := c.Query("table")
	if !validFeedTable(table) {
		handler.Logger.Warnf("feed subscription rejected for table %q", table)
		_ = c.Close()
		return
	}

	sub := handler.Feed.Subscribe(table, c.Query("column"), c.Query("value"))
	prometheus.FeedSubscriptionsGauge.Inc()
	defer func() {
		sub.Close()
		prometheus.FeedSubscriptionsGauge.Dec()
		_ = c.Close()
	}()

	handler.Logger.Infof("feed subscriber joined table %s", table)

	// the read loop only detects the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			handler.Logger.Infof("feed subscriber left table %s", table)
			return
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := c.WriteJSON(event); err != nil {
				handler.Logger.Warnf("failed to deliver feed event: %v", err)
				return
			}
			prometheus.FeedEventsCounter.WithLabelValues(event.Table, string(event.Action)).Inc()
		}
	}
}
