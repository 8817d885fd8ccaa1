package dto

// AttendanceEntry is one member's weekly record in a submission.
type AttendanceEntry struct {
	MemberID uint   `json:"member_id" validate:"required"`
	Worship  string `json:"worship" validate:"required,oneof=O X"`
	QtCount  int    `json:"qt_count" validate:"min=0,max=6"`
	Ministry string `json:"ministry" validate:"required,oneof=A B C"`
}

// AttendanceSubmission is the body of a weekly attendance PUT.
type AttendanceSubmission struct {
	Entries []AttendanceEntry `json:"entries" validate:"dive"`
}
