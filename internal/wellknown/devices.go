package wellknown

const (
	// VendorAMD is the PCI vendor ID of AMD devices, as exposed by the
	// sysfs vendor attribute.
	VendorAMD = "0x1022"

	// ClassAcceleratorPrefix matches the PCI class of processing
	// accelerators (class code 0x1180xx).
	ClassAcceleratorPrefix = "0x1180"
)

// DeviceNames maps known accelerator PCI device IDs to marketing names.
var DeviceNames = map[string]string{
	"0x1502": "NPU Phoenix",
	"0x17f0": "NPU Strix",
	"0x17f1": "NPU Strix Halo",
}

// DeviceName resolves a PCI device ID to its marketing name, falling back
// to the raw ID for unknown parts.
func DeviceName(deviceID string) string {
	if name, ok := DeviceNames[deviceID]; ok {
		return name
	}
	return deviceID
}
