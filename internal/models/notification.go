package models

type NotificationPriority string

const (
	PriorityCritical NotificationPriority = "Critical"
	PriorityWarning  NotificationPriority = "Warning"
	PriorityInfo     NotificationPriority = "Info"
)

type Notification struct {
	ID        uint                 `json:"id"`
	UserID    uint                 `json:"userId"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Priority  NotificationPriority `json:"priority"`
	IsRead    bool                 `json:"isRead"`
	CreatedAt string               `json:"createdAt"`
	UpdatedAt string               `json:"updatedAt"`
}
