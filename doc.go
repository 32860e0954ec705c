// Package lametric controls LaMetric TIME devices over their local HTTP
// API and the LaMetric cloud API.
//
// # Overview
//
// Two independent clients are provided:
//
//   - DeviceClient: talks to one device on the local network (HTTPS on a
//     fixed port, HTTP Basic auth with the device API key, self-signed
//     certificate accepted).
//   - CloudClient: talks to the LaMetric cloud account API (bearer token,
//     regular TLS). Its main use is fetching a device's local API key at
//     setup time, after which the device client handles all real-time
//     control.
//
// # Device Client Usage
//
//	device := lametric.NewDeviceClient("192.168.1.80", apiKey)
//	defer device.Close()
//
//	info, err := device.Device(ctx)
//	if err != nil {
//		log.Fatalf("device info: %v", err)
//	}
//
//	// Dim the display to 25%.
//	_, err = device.Display(ctx, lametric.DisplayUpdate{
//		Brightness:     lametric.Int(25),
//		BrightnessMode: lametric.BrightnessModeManual,
//	})
//
//	// Send a two-frame notification with a sound.
//	id, err := device.Notify(ctx, lametric.Notification{
//		Priority: lametric.PriorityInfo,
//		Model: lametric.Model{
//			Cycles: 1,
//			Frames: []lametric.Frame{
//				lametric.Simple{Icon: 2867, Text: "Build green"},
//				lametric.Goal{Data: lametric.GoalData{Current: 7, End: 10}},
//			},
//			Sound: lametric.NewSound(lametric.SoundNotification, 0),
//		},
//	})
//
// # Cloud Bootstrap
//
//	cloud := lametric.NewCloudClient(token)
//	defer cloud.Close()
//
//	devices, err := cloud.Devices(ctx)
//	if err != nil {
//		log.Fatalf("list devices: %v", err)
//	}
//	device := lametric.NewDeviceClient(devices[0].IP.String(), devices[0].APIKey)
//
// # Request Handling
//
// Every call performs a single HTTP request with a per-attempt timeout
// (default 8s, see WithRequestTimeout). Transport-level failures — DNS,
// connection refused or reset, timeouts — are retried with exponential
// backoff, three attempts in total. HTTP error responses are never
// retried: a 401 or 404 does not change on a second attempt.
//
// # Error Taxonomy
//
// Failures map onto sentinel errors matched with errors.Is:
//
//   - ErrConnection: transport failure after all retries
//   - ErrConnectionTimeout: its timeout sub-kind (also matches
//     ErrConnection)
//   - ErrAuthentication: rejected credentials (401/403 from the device,
//     or the cloud's authentication-failure message)
//   - ErrUnsupported: endpoint not implemented by the device firmware
//     (HTTP 404); a capability signal, not an operational failure
//
// Everything else surfaces as *APIError carrying the status code and raw
// body. Read endpoints used for capability discovery (App, Widget) return
// nil instead of ErrUnsupported.
//
// # Sessions
//
// Each client lazily creates one HTTP session on first use and reuses it
// across calls; Close releases it. A session supplied through
// WithHTTPClient is borrowed and never closed by the client. Clients are
// safe for concurrent use.
//
// # Notification Model
//
// A notification's frames form a tagged union distinguished by shape on
// the wire: a frame with chartData is a Chart, one with goalData is a
// Goal, anything else is a Simple. Frame order is preserved exactly;
// playback on the device depends on it. A Sound's category (alarms vs.
// notifications) is derived from the sound identifier when not set — the
// two identifier sets are disjoint, so the derivation is unambiguous.
package lametric
