package lametric

// BrightnessMode selects how the display brightness is controlled.
type BrightnessMode string

// Available brightness modes.
const (
	BrightnessModeAuto   BrightnessMode = "auto"
	BrightnessModeManual BrightnessMode = "manual"
)

// DeviceMode is the operation mode of the device's app carousel.
type DeviceMode string

// Available device modes.
const (
	DeviceModeAuto     DeviceMode = "auto"
	DeviceModeKiosk    DeviceMode = "kiosk"
	DeviceModeManual   DeviceMode = "manual"
	DeviceModeSchedule DeviceMode = "schedule"
)

// DeviceState is the registration state of a device in the cloud.
type DeviceState string

// Available cloud device states.
const (
	DeviceStateBanned     DeviceState = "banned"
	DeviceStateConfigured DeviceState = "configured"
	DeviceStateNew        DeviceState = "new"
)

// DisplayType describes the panel hardware.
type DisplayType string

// Available display types.
const (
	DisplayTypeColor      DisplayType = "color"
	DisplayTypeGrayscale  DisplayType = "grayscale"
	DisplayTypeMixed      DisplayType = "mixed"
	DisplayTypeMonochrome DisplayType = "monochrome"
)

// IconType selects the icon shown next to a notification.
type IconType string

// Available notification icon types.
const (
	IconTypeAlert IconType = "alert"
	IconTypeInfo  IconType = "info"
	IconTypeNone  IconType = "none"
)

// NotificationPriority orders notifications in the device queue.
type NotificationPriority string

// Available notification priorities.
const (
	PriorityCritical NotificationPriority = "critical"
	PriorityInfo     NotificationPriority = "info"
	PriorityWarning  NotificationPriority = "warning"
)

// NotificationType distinguishes device-originated from pushed notifications.
type NotificationType string

// Available notification types.
const (
	NotificationTypeInternal NotificationType = "internal"
	NotificationTypeExternal NotificationType = "external"
)

// SoundCategory groups the sound identifiers.
type SoundCategory string

// Available sound categories.
const (
	SoundCategoryAlarms        SoundCategory = "alarms"
	SoundCategoryNotifications SoundCategory = "notifications"
)

// WifiMode is the device's IP configuration mode.
type WifiMode string

// Available Wi-Fi modes.
const (
	WifiModeDHCP   WifiMode = "dhcp"
	WifiModeStatic WifiMode = "static"
)
