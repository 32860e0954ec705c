package lametric

// SoundID identifies a built-in device sound. The identifiers form two
// disjoint sets, alarms and notifications; Category reports which set an
// identifier belongs to.
type SoundID string

// Alarm sounds.
const (
	SoundAlarm1  SoundID = "alarm1"
	SoundAlarm2  SoundID = "alarm2"
	SoundAlarm3  SoundID = "alarm3"
	SoundAlarm4  SoundID = "alarm4"
	SoundAlarm5  SoundID = "alarm5"
	SoundAlarm6  SoundID = "alarm6"
	SoundAlarm7  SoundID = "alarm7"
	SoundAlarm8  SoundID = "alarm8"
	SoundAlarm9  SoundID = "alarm9"
	SoundAlarm10 SoundID = "alarm10"
	SoundAlarm11 SoundID = "alarm11"
	SoundAlarm12 SoundID = "alarm12"
	SoundAlarm13 SoundID = "alarm13"
)

// Notification sounds.
const (
	SoundBicycle       SoundID = "bicycle"
	SoundCar           SoundID = "car"
	SoundCash          SoundID = "cash"
	SoundCat           SoundID = "cat"
	SoundDog           SoundID = "dog"
	SoundDog2          SoundID = "dog2"
	SoundEnergy        SoundID = "energy"
	SoundKnockKnock    SoundID = "knock-knock"
	SoundLetterEmail   SoundID = "letter_email"
	SoundLose1         SoundID = "lose1"
	SoundLose2         SoundID = "lose2"
	SoundNegative1     SoundID = "negative1"
	SoundNegative2     SoundID = "negative2"
	SoundNegative3     SoundID = "negative3"
	SoundNegative4     SoundID = "negative4"
	SoundNegative5     SoundID = "negative5"
	SoundNotification  SoundID = "notification"
	SoundNotification2 SoundID = "notification2"
	SoundNotification3 SoundID = "notification3"
	SoundNotification4 SoundID = "notification4"
	SoundOpenDoor      SoundID = "open_door"
	SoundPositive1     SoundID = "positive1"
	SoundPositive2     SoundID = "positive2"
	SoundPositive3     SoundID = "positive3"
	SoundPositive4     SoundID = "positive4"
	SoundPositive5     SoundID = "positive5"
	SoundPositive6     SoundID = "positive6"
	SoundStatistic     SoundID = "statistic"
	SoundThunder       SoundID = "thunder"
	SoundWater1        SoundID = "water1"
	SoundWater2        SoundID = "water2"
	SoundWin           SoundID = "win"
	SoundWin2          SoundID = "win2"
	SoundWind          SoundID = "wind"
	SoundWindShort     SoundID = "wind_short"
)

// AlarmSounds lists every alarm sound identifier.
func AlarmSounds() []SoundID {
	return []SoundID{
		SoundAlarm1, SoundAlarm2, SoundAlarm3, SoundAlarm4, SoundAlarm5,
		SoundAlarm6, SoundAlarm7, SoundAlarm8, SoundAlarm9, SoundAlarm10,
		SoundAlarm11, SoundAlarm12, SoundAlarm13,
	}
}

// NotificationSounds lists every notification sound identifier.
func NotificationSounds() []SoundID {
	return []SoundID{
		SoundBicycle, SoundCar, SoundCash, SoundCat, SoundDog, SoundDog2,
		SoundEnergy, SoundKnockKnock, SoundLetterEmail, SoundLose1,
		SoundLose2, SoundNegative1, SoundNegative2, SoundNegative3,
		SoundNegative4, SoundNegative5, SoundNotification,
		SoundNotification2, SoundNotification3, SoundNotification4,
		SoundOpenDoor, SoundPositive1, SoundPositive2, SoundPositive3,
		SoundPositive4, SoundPositive5, SoundPositive6, SoundStatistic,
		SoundThunder, SoundWater1, SoundWater2, SoundWin, SoundWin2,
		SoundWind, SoundWindShort,
	}
}

var (
	alarmSoundSet        = soundSet(AlarmSounds())
	notificationSoundSet = soundSet(NotificationSounds())
)

func soundSet(ids []SoundID) map[SoundID]struct{} {
	set := make(map[SoundID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Category reports which sound category the identifier belongs to. Unknown
// identifiers map to the empty category.
func (s SoundID) Category() SoundCategory {
	if _, ok := alarmSoundSet[s]; ok {
		return SoundCategoryAlarms
	}
	if _, ok := notificationSoundSet[s]; ok {
		return SoundCategoryNotifications
	}
	return ""
}
