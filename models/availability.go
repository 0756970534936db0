package models

// WeeklyAvailabilityWindow is a recurring weekly interval during which a
// mentor accepts sessions. Times are wall-clock "HH:MM" strings with no date.
type WeeklyAvailabilityWindow struct {
	ID          string `bson:"id" json:"id"`
	MentorID    string `bson:"mentorId" json:"mentorId"`
	DayOfWeek   int    `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime   string `bson:"startTime" json:"startTime"` // e.g. "09:00"
	EndTime     string `bson:"endTime" json:"endTime"`     // e.g. "17:00"
	Timezone    string `bson:"timezone" json:"timezone"`   // IANA zone, stored but not used in conflict arithmetic
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// SetAvailabilityRequest defines the payload for replacing a mentor's
// windows for one weekday.
type SetAvailabilityRequest struct {
	DayOfWeek int                        `json:"dayOfWeek" binding:"min=0,max=6"`
	Windows   []WeeklyAvailabilityWindow `json:"windows" binding:"required"`
}
