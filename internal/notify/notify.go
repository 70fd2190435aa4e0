package notify

import "time"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notification struct {
	Kind      Kind      `json:"kind"`
	Title     string    `json:"title,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// Notifier shows a transient message to the user. Delivery is best effort.
type Notifier interface {
	Notify(kind Kind, message string)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(kind Kind, message string)

func (f NotifierFunc) Notify(kind Kind, message string) {
	f(kind, message)
}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Kind, string) {})
