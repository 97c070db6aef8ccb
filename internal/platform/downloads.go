package platform

// Translator renders message IDs. A nil Translator leaves IDs as they are.
type Translator interface {
	T(id string, data map[string]any) string
}

// Target is a rendered download call-to-action.
type Target struct {
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	IconColor string `json:"icon_color"`
	URL       string `json:"url"`
	Subtitle  string `json:"subtitle"`
	OS        OS     `json:"os"`
	Arch      Arch   `json:"arch"`
	Format    Format `json:"format"`
	// Generic is set when the OS was not recognised and the target is the
	// catch-all download button.
	Generic bool `json:"generic,omitempty"`
}

// Selector turns descriptors into download targets.
type Selector struct {
	catalog *Catalog
	tr      Translator
}

// NewSelector creates a selector over catalog. A nil catalog uses
// DefaultCatalog.
func NewSelector(catalog *Catalog, tr Translator) *Selector {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Selector{catalog: catalog, tr: tr}
}

// Catalog returns the selector's release catalog.
func (s *Selector) Catalog() *Catalog {
	return s.catalog
}

// SelectDownload returns the primary download for d. It never fails:
//   - windows always gets the x64 installer;
//   - macos gets the universal disk image;
//   - linux gets the AppImage for the detected arch, x64 when unknown;
//   - anything else gets the macOS universal image behind a generic label.
func (s *Selector) SelectDownload(d Descriptor, version string) Target {
	switch d.OS {
	case OSWindows:
		return s.target(OSWindows, ArchX64, FormatMSI, version)
	case OSMacOS:
		return s.target(OSMacOS, ArchUniversal, FormatDMG, version)
	case OSLinux:
		arch := ArchX64
		if d.Arch == ArchArm64 {
			arch = ArchArm64
		}
		return s.target(OSLinux, arch, FormatAppImage, version)
	}

	t := s.target(OSMacOS, ArchUniversal, FormatDMG, version)
	p := s.catalog.presentation(OSUnknown)
	t.Label = s.t(p.Label)
	t.Icon = p.Icon
	t.IconColor = p.Color
	t.Subtitle = s.t(p.Subtitle)
	t.Generic = true
	return t
}

// Alternatives returns the secondary downloads for d's OS: the arch-specific
// macOS images, or the other Linux package formats for the detected arch.
// Windows and unknown OSes have none.
func (s *Selector) Alternatives(d Descriptor, version string) []Target {
	primary := s.SelectDownload(d, version)
	if primary.Generic {
		return nil
	}

	var out []Target
	for _, a := range s.catalog.ForOS(d.OS) {
		if a.Arch == primary.Arch && a.Format == primary.Format {
			continue
		}
		if d.OS == OSLinux && a.Arch != primary.Arch {
			continue
		}
		out = append(out, s.render(a, version))
	}
	return out
}

// Downloads returns every artifact of the catalog for version.
func (s *Selector) Downloads(version string) []Target {
	out := make([]Target, 0, len(s.catalog.Artifacts))
	for _, a := range s.catalog.Artifacts {
		out = append(out, s.render(a, version))
	}
	return out
}

func (s *Selector) target(os OS, arch Arch, format Format, version string) Target {
	// validate() guarantees these artifacts exist.
	a, _ := s.catalog.Find(os, arch, format)
	return s.render(a, version)
}

func (s *Selector) render(a Artifact, version string) Target {
	p := s.catalog.presentation(a.OS)
	return Target{
		Label:     s.t(p.Label),
		Icon:      p.Icon,
		IconColor: p.Color,
		URL:       s.catalog.URL(a, version),
		Subtitle:  s.t(a.Subtitle),
		OS:        a.OS,
		Arch:      a.Arch,
		Format:    a.Format,
	}
}

func (s *Selector) t(id string) string {
	if s.tr == nil || id == "" {
		return id
	}
	return s.tr.T(id, nil)
}
