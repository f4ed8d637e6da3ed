package core

import "errors"

var (
	// ErrNotFound indicates a lookup matched no employee row.
	ErrNotFound = errors.New("employee not found")

	// ErrInvalidCredentials indicates authentication matched no row.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOccupationRequired indicates an insert with a blank occupation.
	ErrOccupationRequired = errors.New("occupation is required for new employee")

	// ErrBandExhausted indicates the assignable job-title id band is full.
	ErrBandExhausted = errors.New("no available job_title_id in the assignable band")
)
