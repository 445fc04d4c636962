package model

import (
	"errors"
	"time"
)

// StatusEvent is the invocation payload describing one status transition.
type StatusEvent struct {
	ZipFileName      string     `json:"zipFileName"`
	InfraCompanyID   string     `json:"infraCompanyId"`
	ProcessStartDate *time.Time `json:"processStartDate"`
	ProcessEndDate   *time.Time `json:"processEndDate"`
	AdjustStatus     string     `json:"adjustStatus"`
	AdjustMessage    string     `json:"adjustMessage"`
}

// Validate checks the columns the table declares NOT NULL.
func (e StatusEvent) Validate() error {
	var errs []error
	if e.ZipFileName == "" {
		errs = append(errs, errors.New("zipFileName is required"))
	}
	if e.InfraCompanyID == "" {
		errs = append(errs, errors.New("infraCompanyId is required"))
	}
	if e.AdjustStatus == "" {
		errs = append(errs, errors.New("adjustStatus is required"))
	}
	return errors.Join(errs...)
}

// Record converts the event to a StatusRecord with CreatedAt unset.
func (e StatusEvent) Record() StatusRecord {
	return StatusRecord{
		ZipFileName:      e.ZipFileName,
		InfraCompanyID:   e.InfraCompanyID,
		ProcessStartDate: e.ProcessStartDate,
		ProcessEndDate:   e.ProcessEndDate,
		AdjustStatus:     AdjustStatus(e.AdjustStatus),
		AdjustMessage:    e.AdjustMessage,
	}
}
