package platform

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed release.toml
var embeddedCatalog []byte

// Artifact is one published release file.
type Artifact struct {
	OS       OS     `toml:"os"`
	Arch     Arch   `toml:"arch"`
	Format   Format `toml:"format"`
	Suffix   string `toml:"suffix"`
	Subtitle string `toml:"subtitle"` // message ID
}

// Presentation is how a download button looks for one OS. Label and Subtitle
// are message IDs.
type Presentation struct {
	Label    string `toml:"label"`
	Icon     string `toml:"icon"`
	Color    string `toml:"color"`
	Subtitle string `toml:"subtitle"`
}

// Catalog is the table of release artifacts and their URL template.
type Catalog struct {
	Base         string                  `toml:"base"`
	Prefix       string                  `toml:"prefix"`
	Presentation map[string]Presentation `toml:"presentation"`
	Artifacts    []Artifact              `toml:"artifact"`
}

// Artifacts every catalog must carry so that selection always has a target.
var requiredArtifacts = []struct {
	os     OS
	arch   Arch
	format Format
}{
	{OSWindows, ArchX64, FormatMSI},
	{OSMacOS, ArchUniversal, FormatDMG},
	{OSLinux, ArchX64, FormatAppImage},
	{OSLinux, ArchArm64, FormatAppImage},
}

var defaultCatalog = mustLoadEmbedded()

func mustLoadEmbedded() *Catalog {
	c, err := LoadCatalog(embeddedCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded release catalog: %v", err))
	}
	return c
}

// DefaultCatalog returns the release catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog parses and validates a TOML release catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("decode release catalog: %w", err)
	}
	c.Base = strings.TrimRight(strings.TrimSpace(c.Base), "/")
	c.Prefix = strings.TrimSpace(c.Prefix)

	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	if c.Base == "" {
		return fmt.Errorf("release catalog: base is required")
	}
	if c.Prefix == "" {
		return fmt.Errorf("release catalog: prefix is required")
	}

	for i, a := range c.Artifacts {
		if !a.OS.valid() || !a.Arch.valid() || !a.Format.valid() {
			return fmt.Errorf("release catalog: artifact %d: invalid os/arch/format %s/%s/%s", i, a.OS, a.Arch, a.Format)
		}
		if a.Suffix == "" {
			return fmt.Errorf("release catalog: artifact %d: suffix is required", i)
		}
	}

	for _, r := range requiredArtifacts {
		if _, ok := c.Find(r.os, r.arch, r.format); !ok {
			return fmt.Errorf("release catalog: missing %s/%s %s artifact", r.os, r.arch, r.format)
		}
	}

	for _, os := range []OS{OSWindows, OSMacOS, OSLinux, OSUnknown} {
		if _, ok := c.Presentation[string(os)]; !ok {
			return fmt.Errorf("release catalog: missing presentation for %s", os)
		}
	}
	return nil
}

// WithRelease returns a copy of c with base and prefix replaced by the
// non-empty arguments.
func (c *Catalog) WithRelease(base, prefix string) *Catalog {
	out := *c
	if base = strings.TrimRight(strings.TrimSpace(base), "/"); base != "" {
		out.Base = base
	}
	if prefix = strings.TrimSpace(prefix); prefix != "" {
		out.Prefix = prefix
	}
	return &out
}

// Find returns the artifact for an os/arch/format triple.
func (c *Catalog) Find(os OS, arch Arch, format Format) (Artifact, bool) {
	for _, a := range c.Artifacts {
		if a.OS == os && a.Arch == arch && a.Format == format {
			return a, true
		}
	}
	return Artifact{}, false
}

// ForOS returns every artifact built for os, in catalog order.
func (c *Catalog) ForOS(os OS) []Artifact {
	var out []Artifact
	for _, a := range c.Artifacts {
		if a.OS == os {
			out = append(out, a)
		}
	}
	return out
}

// URL builds the download URL of a for version.
func (c *Catalog) URL(a Artifact, version string) string {
	version = strings.TrimSpace(version)
	return fmt.Sprintf("%s/%s/%s_%s_%s.%s", c.Base, version, c.Prefix, version, a.Suffix, a.Format)
}

func (c *Catalog) presentation(os OS) Presentation {
	return c.Presentation[string(os)]
}
