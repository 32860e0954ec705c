package lametric

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Notify enqueues a notification on the device and returns the id the
// device assigned to it.
func (d *DeviceClient) Notify(ctx context.Context, notification Notification) (int, error) {
	if err := validate.Struct(notification); err != nil {
		return 0, fmt.Errorf("validate notification: %w", err)
	}
	var env successEnvelope
	if err := d.t.request(ctx, http.MethodPost, apiRoot+"/device/notifications", notification, &env); err != nil {
		return 0, err
	}
	return parseWireID(env.Success.ID)
}

// Notifications lists the queued notifications, ordered by the device with
// the highest priority first.
func (d *DeviceClient) Notifications(ctx context.Context) ([]Notification, error) {
	var queue []Notification
	if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/notifications", nil, &queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// CurrentNotification fetches the notification currently on the display,
// or nil when none is showing.
func (d *DeviceClient) CurrentNotification(ctx context.Context) (*Notification, error) {
	var raw json.RawMessage
	if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/notifications/current", nil, &raw); err != nil {
		return nil, err
	}
	if emptyPayload(raw) {
		return nil, nil
	}
	var notification Notification
	if err := json.Unmarshal(raw, &notification); err != nil {
		return nil, fmt.Errorf("decode notification: %w", err)
	}
	return &notification, nil
}

// emptyPayload reports whether the device answered with no content; an
// idle display returns an empty object.
func emptyPayload(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("{}"))
}

// DismissNotification removes a queued notification; if it is currently
// visible it is dismissed from the display.
func (d *DeviceClient) DismissNotification(ctx context.Context, notificationID int) error {
	uri := apiRoot + "/device/notifications/" + strconv.Itoa(notificationID)
	return d.t.request(ctx, http.MethodDelete, uri, nil, nil)
}

// DismissCurrentNotification dismisses whatever notification is currently
// on the display, if any.
func (d *DeviceClient) DismissCurrentNotification(ctx context.Context) error {
	notification, err := d.CurrentNotification(ctx)
	if err != nil {
		return err
	}
	if notification == nil || notification.NotificationID == nil {
		return nil
	}
	return d.DismissNotification(ctx, *notification.NotificationID)
}

// DismissAllNotifications empties the notification queue. Entries are
// dismissed in reverse queue order so that removing the visible one does
// not flash each successor onto the display first.
func (d *DeviceClient) DismissAllNotifications(ctx context.Context) error {
	queue, err := d.Notifications(ctx)
	if err != nil {
		return err
	}
	for i := len(queue) - 1; i >= 0; i-- {
		if queue[i].NotificationID == nil {
			continue
		}
		if err := d.DismissNotification(ctx, *queue[i].NotificationID); err != nil {
			return err
		}
	}
	return nil
}
