package client

import "fmt"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

var validStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid client status: %s", s)
	}
	return st, nil
}
