package lametric

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Path segments are escaped by the transport's URL construction.
func appPath(pkg string) string {
	return apiRoot + "/device/apps/" + pkg
}

func widgetPath(pkg, widgetID string) string {
	return appPath(pkg) + "/widgets/" + widgetID
}

// Apps lists all installed applications, keyed by package identifier.
func (d *DeviceClient) Apps(ctx context.Context) (map[string]Application, error) {
	var apps map[string]Application
	if err := d.t.request(ctx, http.MethodGet, apiRoot+"/device/apps", nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// App fetches a single application. Firmware without the endpoint reports
// 404; that is a capability probe, so App returns nil instead of an error.
func (d *DeviceClient) App(ctx context.Context, pkg string) (*Application, error) {
	var app Application
	if err := d.t.request(ctx, http.MethodGet, appPath(pkg), nil, &app); err != nil {
		if errors.Is(err, ErrUnsupported) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

// Widget fetches a single widget instance, including its settings. Returns
// nil on firmware without the endpoint, like App.
func (d *DeviceClient) Widget(ctx context.Context, pkg, widgetID string) (*Widget, error) {
	var widget Widget
	if err := d.t.request(ctx, http.MethodGet, widgetPath(pkg, widgetID), nil, &widget); err != nil {
		if errors.Is(err, ErrUnsupported) {
			return nil, nil
		}
		return nil, err
	}
	return &widget, nil
}

// UpdateWidget writes widget settings and returns the updated widget. As a
// write, a 404 surfaces as ErrUnsupported.
func (d *DeviceClient) UpdateWidget(ctx context.Context, pkg, widgetID string, settings map[string]any) (*Widget, error) {
	body := map[string]any{"settings": settings}
	var raw json.RawMessage
	if err := d.t.request(ctx, http.MethodPut, widgetPath(pkg, widgetID), body, &raw); err != nil {
		return nil, err
	}

	// Newer firmware wraps the widget in the success envelope, older
	// firmware returns it bare.
	var env successEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Success.Data) > 0 {
		raw = env.Success.Data
	}
	var widget Widget
	if err := json.Unmarshal(raw, &widget); err != nil {
		return nil, fmt.Errorf("decode widget: %w", err)
	}
	return &widget, nil
}

// ActivateWidget brings the given widget onto the display.
func (d *DeviceClient) ActivateWidget(ctx context.Context, pkg, widgetID string) error {
	return d.t.request(ctx, http.MethodPut, widgetPath(pkg, widgetID)+"/activate", nil, nil)
}

// WidgetAction invokes a named action on a widget. Parameters may be nil
// for actions without parameters; activate also brings the widget onto the
// display.
func (d *DeviceClient) WidgetAction(ctx context.Context, pkg, widgetID, actionID string, parameters map[string]any, activate bool) error {
	body := map[string]any{
		"id":       actionID,
		"activate": activate,
	}
	if parameters != nil {
		body["params"] = parameters
	}
	return d.t.request(ctx, http.MethodPost, widgetPath(pkg, widgetID)+"/actions", body, nil)
}

// NextApp switches the display to the next app in the user-configured
// order.
func (d *DeviceClient) NextApp(ctx context.Context) error {
	return d.t.request(ctx, http.MethodPut, apiRoot+"/device/apps/next", nil, nil)
}

// PreviousApp switches the display to the previous app in the
// user-configured order.
func (d *DeviceClient) PreviousApp(ctx context.Context) error {
	return d.t.request(ctx, http.MethodPut, apiRoot+"/device/apps/prev", nil, nil)
}
