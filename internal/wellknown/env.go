package wellknown

const (
	// EnvSysRoot overrides the PCI device tree root, mainly for tests and
	// containerized environments.
	EnvSysRoot = "ACCELCTL_SYS_ROOT"

	// EnvDevice preselects the device of interest (same syntax as --device).
	EnvDevice = "ACCELCTL_DEVICE"

	// EnvJSONOutput switches the default output format to JSON.
	EnvJSONOutput = "ACCELCTL_JSON"

	// DefaultSysRoot is where PCI devices live on a stock Linux system.
	DefaultSysRoot = "/sys/bus/pci/devices"
)
