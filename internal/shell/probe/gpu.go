// Package probe enumerates the rig's accelerator devices. The probe is a
// black-box external collaborator: its only contract is returning a
// non-negative device count, with 0 on any failure.
package probe

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultBinary is the enumeration tool queried for the device list.
const DefaultBinary = "nvidia-smi"

// DeviceCounter reports how many accelerator devices the rig has.
type DeviceCounter interface {
	CountDevices(ctx context.Context) int
}

// NvidiaSMI counts GPUs by running `nvidia-smi --list-gpus`, which prints
// one "GPU <n>: ..." line per device.
type NvidiaSMI struct {
	Binary string
	Logger *slog.Logger
}

// NewNvidiaSMI creates a probe using the default binary.
func NewNvidiaSMI(logger *slog.Logger) NvidiaSMI {
	return NvidiaSMI{Binary: DefaultBinary, Logger: logger}
}

// CountDevices runs the probe. A missing binary or a non-zero exit is not
// an error: the rig simply has no usable devices, so the count is 0.
func (p NvidiaSMI) CountDevices(ctx context.Context) int {
	out, err := exec.CommandContext(ctx, p.Binary, "--list-gpus").Output()
	if err != nil {
		p.Logger.Warn("device probe failed, assuming no devices",
			"binary", p.Binary,
			"error", err,
		)
		return 0
	}
	return CountDeviceLines(string(out))
}

// CountDeviceLines counts the device lines in `--list-gpus` output.
func CountDeviceLines(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "GPU ") {
			count++
		}
	}
	return count
}

// Fixed is a DeviceCounter returning a preset count, for flag-supplied
// device counts and tests.
type Fixed int

// CountDevices returns the preset count.
func (f Fixed) CountDevices(context.Context) int {
	return int(f)
}
