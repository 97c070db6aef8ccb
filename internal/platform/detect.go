package platform

import (
	"runtime"
	"strings"
	"sync/atomic"
)

// Go runtime names
const (
	goosDarwin  = "darwin"
	goosWindows = "windows"
	goosLinux   = "linux"
	goarchAMD64 = "amd64"
	goarchARM64 = "arm64"
)

// User agent markers, checked in order; the first hit wins.
var osMarkers = []struct {
	marker string
	os     OS
}{
	{"win", OSWindows},
	{"mac", OSMacOS},
	{"linux", OSLinux},
}

var (
	arm64Markers = []string{"arm", "aarch64", "arm64"}
	x64Markers   = []string{"x86", "x64", "amd64"}
)

// Detect classifies a browser-style user agent and platform string. It never
// fails; unrecognised signals yield OSUnknown / ArchUnknown.
func Detect(userAgent, platform string) Descriptor {
	ua := strings.ToLower(userAgent)
	plat := strings.ToLower(platform)

	d := Unknown()
	for _, m := range osMarkers {
		if strings.Contains(ua, m.marker) {
			d.OS = m.os
			break
		}
	}

	switch {
	case containsAny(plat, arm64Markers) || strings.Contains(ua, "arm64"):
		d.Arch = ArchArm64
	case containsAny(plat, x64Markers):
		d.Arch = ArchX64
	}
	return d
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// Host returns the descriptor of the machine running this process.
func Host() Descriptor {
	return hostDescriptor(runtime.GOOS, runtime.GOARCH)
}

func hostDescriptor(goos, goarch string) Descriptor {
	d := Unknown()
	switch goos {
	case goosWindows:
		d.OS = OSWindows
	case goosDarwin:
		d.OS = OSMacOS
	case goosLinux:
		d.OS = OSLinux
	}
	switch goarch {
	case goarchAMD64:
		d.Arch = ArchX64
	case goarchARM64:
		d.Arch = ArchArm64
	}
	return d
}

// Signals are the raw client values detection reads.
type Signals struct {
	UserAgent string
	Platform  string
	// ServerRender marks a pre-rendering pass with no client environment.
	ServerRender bool
}

// Session holds the one descriptor detected for a client session. The first
// client-side detection wins; later calls and server-render passes read it
// without writing. Safe for concurrent readers.
type Session struct {
	desc atomic.Pointer[Descriptor]
}

// Detect runs detection unless this is a server-render pass or a descriptor
// was already recorded, and returns the session descriptor.
func (s *Session) Detect(sig Signals) Descriptor {
	if !sig.ServerRender && s.desc.Load() == nil {
		d := Detect(sig.UserAgent, sig.Platform)
		s.desc.CompareAndSwap(nil, &d)
	}
	return s.Descriptor()
}

// Descriptor returns the recorded descriptor, or Unknown before detection.
func (s *Session) Descriptor() Descriptor {
	if d := s.desc.Load(); d != nil {
		return *d
	}
	return Unknown()
}

// Ready reports whether a client-side detection has run. Until then the
// unknown descriptor is provisional and callers should render again later.
func (s *Session) Ready() bool {
	return s.desc.Load() != nil
}
