package service

import "fmt"

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusRetired Status = "retired"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusSuspended: true,
	StatusRetired: true,
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool { return validStatuses[s] }

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid service status: %s", s)
	}
	return st, nil
}
