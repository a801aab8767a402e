/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package reports

import "fmt"

// UnknownReportError is returned when a requested report name matches no
// registered descriptor.
type UnknownReportError struct {
	Name string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("invalid report value: '%s'", e.Name)
}

// DataSourceError wraps a failure from a report's data-fetch operation.
type DataSourceError struct {
	Report string
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("failed to generate %s report: %v", e.Report, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}
