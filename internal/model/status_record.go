package model

import "time"

// AdjustStatus is the status code written for an adjustment batch run.
type AdjustStatus string

const (
	AdjustStatusProcessing AdjustStatus = "PROCESSING"
	AdjustStatusDone       AdjustStatus = "DONE"
	AdjustStatusError      AdjustStatus = "ERROR"
)

// Known reports whether s is one of the defined codes.
func (s AdjustStatus) Known() bool {
	switch s {
	case AdjustStatusProcessing, AdjustStatusDone, AdjustStatusError:
		return true
	}
	return false
}

// StatusRecord is one row of facility_data_adjustment_management.
// CreatedAt is assigned by the writer at insert time.
type StatusRecord struct {
	ZipFileName      string       `json:"zip_file_name"`
	InfraCompanyID   string       `json:"infra_company_id"`
	ProcessStartDate *time.Time   `json:"process_start_date"`
	ProcessEndDate   *time.Time   `json:"process_end_date"`
	AdjustStatus     AdjustStatus `json:"adjust_status"`
	AdjustMessage    string       `json:"adjust_message"`
	CreatedAt        time.Time    `json:"created_at"`
}
