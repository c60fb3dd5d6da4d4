// Package tensor: Device and DType enumerations plus sentinel errors.
package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for placement and numeric-width policy.
var (
	// ErrInvalidDevice indicates an unrecognized placement target.
	ErrInvalidDevice = errors.New("tensor: device must be auto, cpu or accelerator")

	// ErrBackendUnavailable indicates the requested backend is not compiled in.
	// Only the CPU (gonum) backend ships with this module.
	ErrBackendUnavailable = errors.New("tensor: accelerator backend unavailable")

	// ErrInvalidDType indicates an unrecognized numeric width.
	ErrInvalidDType = errors.New("tensor: dtype must be float64 or float32")
)

// Device selects the placement target for matrices.
type Device int

const (
	// DeviceAuto picks the best available backend (currently always CPU).
	DeviceAuto Device = iota
	// DeviceCPU places matrices on the in-process gonum backend.
	DeviceCPU
	// DeviceAccelerator requests an accelerator backend. None is compiled in;
	// resolving it fails with ErrBackendUnavailable.
	DeviceAccelerator
)

// ParseDevice maps a device name to its Device value.
// Recognized names: "auto" (and ""), "cpu", "accelerator".
func ParseDevice(s string) (Device, error) {
	switch s {
	case "", "auto":
		return DeviceAuto, nil
	case "cpu":
		return DeviceCPU, nil
	case "accelerator":
		return DeviceAccelerator, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDevice, s)
	}
}

// Resolve validates d and returns the concrete device to place matrices on.
// DeviceAuto resolves to DeviceCPU. DeviceAccelerator fails with
// ErrBackendUnavailable; values outside the enumeration fail with
// ErrInvalidDevice. Validation is eager: converters call Resolve before
// touching any data.
func (d Device) Resolve() (Device, error) {
	switch d {
	case DeviceAuto, DeviceCPU:
		return DeviceCPU, nil
	case DeviceAccelerator:
		return 0, ErrBackendUnavailable
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidDevice, int(d))
	}
}

// String returns the canonical device name.
func (d Device) String() string {
	switch d {
	case DeviceAuto:
		return "auto"
	case DeviceCPU:
		return "cpu"
	case DeviceAccelerator:
		return "accelerator"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// DType selects the numeric width of matrix values.
type DType int

const (
	// Float64 stores full double-precision values (the default).
	Float64 DType = iota
	// Float32 truncates every ingested value to single precision.
	Float32
)

// ParseDType maps a dtype name to its DType value.
// Recognized names: "float64" (and ""), "float32".
func ParseDType(s string) (DType, error) {
	switch s {
	case "", "float64":
		return Float64, nil
	case "float32":
		return Float32, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDType, s)
	}
}

// Validate reports whether dt is within the enumeration.
func (dt DType) Validate() error {
	switch dt {
	case Float64, Float32:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrInvalidDType, int(dt))
	}
}

// String returns the canonical dtype name.
func (dt DType) String() string {
	switch dt {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("dtype(%d)", int(dt))
	}
}
