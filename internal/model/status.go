package model

// AlertStatus controls how a status message is styled
type AlertStatus string

const (
	AlertSuccess AlertStatus = "success"
	AlertWarning AlertStatus = "warning"
)

// Status is the single message currently shown to the user.
// It is overwritten by every completed request; no history is kept.
type Status struct {
	Messages    string      `json:"messages"`
	AlertStatus AlertStatus `json:"alert_status"`
}

// Succeeded returns a success status carrying msg
func Succeeded(msg string) Status {
	return Status{Messages: msg, AlertStatus: AlertSuccess}
}

// Warned returns a warning status carrying msg
func Warned(msg string) Status {
	return Status{Messages: msg, AlertStatus: AlertWarning}
}

// IsZero returns true if there is nothing to show
func (s Status) IsZero() bool {
	return s.Messages == "" && s.AlertStatus == ""
}
