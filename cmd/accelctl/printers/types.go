/*
Copyright 2026 Ardika Saputro.
Licensed under the Apache License, Version 2.0.
*/

package printers

// DeviceListItem represents a single device row in the list output.
type DeviceListItem struct {
	BDF    string `json:"bdf"`
	Device string `json:"device"`
	Name   string `json:"name"`
}

// DeviceListOutput is a wrapper for printing the device inventory.
type DeviceListOutput struct {
	Devices []DeviceListItem `json:"devices"`
}
