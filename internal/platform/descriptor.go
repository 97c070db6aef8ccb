package platform

// OS is the operating system family a download is built for.
type OS string

const (
	OSWindows OS = "windows"
	OSMacOS   OS = "macos"
	OSLinux   OS = "linux"
	OSUnknown OS = "unknown"
)

// Arch is a CPU architecture.
type Arch string

const (
	ArchX64     Arch = "x64"
	ArchArm64   Arch = "arm64"
	ArchUnknown Arch = "unknown"

	// ArchUniversal only appears on artifacts (macOS fat binaries); detection
	// never yields it.
	ArchUniversal Arch = "universal"
)

// Format is a package format, named after its file extension.
type Format string

const (
	FormatMSI      Format = "msi"
	FormatDMG      Format = "dmg"
	FormatAppImage Format = "AppImage"
	FormatDeb      Format = "deb"
	FormatRPM      Format = "rpm"
)

// Descriptor is the detected OS and architecture of a client.
type Descriptor struct {
	OS   OS   `json:"os"`
	Arch Arch `json:"arch"`
}

// Unknown is the descriptor before (or without) client-side detection.
func Unknown() Descriptor {
	return Descriptor{OS: OSUnknown, Arch: ArchUnknown}
}

// IsUnknown reports whether neither OS nor architecture was recognised.
func (d Descriptor) IsUnknown() bool {
	return d.OS == OSUnknown && d.Arch == ArchUnknown
}

// String returns "os/arch".
func (d Descriptor) String() string {
	return string(d.OS) + "/" + string(d.Arch)
}

func (o OS) valid() bool {
	switch o {
	case OSWindows, OSMacOS, OSLinux:
		return true
	}
	return false
}

func (a Arch) valid() bool {
	switch a {
	case ArchX64, ArchArm64, ArchUniversal:
		return true
	}
	return false
}

func (f Format) valid() bool {
	switch f {
	case FormatMSI, FormatDMG, FormatAppImage, FormatDeb, FormatRPM:
		return true
	}
	return false
}
