package platform

import (
	"strings"
	"testing"
)

const testVersion = "1.2.3"

const testPrefix = "https://github.com/logue/DropWebP/releases/download/1.2.3/Drop.Compress.Image_1.2.3_"

type upperTranslator struct{}

func (upperTranslator) T(id string, _ map[string]any) string {
	return strings.ToUpper(id)
}

func TestSelectDownloadWindowsIgnoresArch(t *testing.T) {
	s := NewSelector(nil, nil)

	for _, arch := range []Arch{ArchX64, ArchArm64, ArchUnknown} {
		target := s.SelectDownload(Descriptor{OS: OSWindows, Arch: arch}, testVersion)
		if !strings.HasSuffix(target.URL, "x64_en-US.msi") {
			t.Errorf("windows/%s: expected x64 msi, got %s", arch, target.URL)
		}
		if !strings.Contains(target.URL, testVersion) {
			t.Errorf("windows/%s: URL %s does not contain version", arch, target.URL)
		}
		if target.Label != "download.windows" || target.Icon != "mdi-microsoft-windows" {
			t.Errorf("windows/%s: unexpected presentation %+v", arch, target)
		}
		if target.Generic {
			t.Errorf("windows/%s: target should not be generic", arch)
		}
	}
}

func TestSelectDownloadURLTemplate(t *testing.T) {
	s := NewSelector(nil, nil)

	tests := []struct {
		descriptor Descriptor
		expected   string
	}{
		{Descriptor{OSWindows, ArchX64}, testPrefix + "x64_en-US.msi"},
		{Descriptor{OSMacOS, ArchArm64}, testPrefix + "universal.dmg"},
		{Descriptor{OSMacOS, ArchX64}, testPrefix + "universal.dmg"},
		{Descriptor{OSLinux, ArchX64}, testPrefix + "amd64.AppImage"},
		{Descriptor{OSLinux, ArchArm64}, testPrefix + "arm64.AppImage"},
		{Descriptor{OSLinux, ArchUnknown}, testPrefix + "amd64.AppImage"},
		{Descriptor{OSUnknown, ArchUnknown}, testPrefix + "universal.dmg"},
		{Descriptor{OSUnknown, ArchArm64}, testPrefix + "universal.dmg"},
	}

	for _, tt := range tests {
		t.Run(tt.descriptor.String(), func(t *testing.T) {
			got := s.SelectDownload(tt.descriptor, testVersion)
			if got.URL != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.URL)
			}
		})
	}
}

func TestSelectDownloadLinuxArm64(t *testing.T) {
	s := NewSelector(nil, upperTranslator{})

	target := s.SelectDownload(Descriptor{OS: OSLinux, Arch: ArchArm64}, testVersion)
	if target.Format != FormatAppImage || target.Arch != ArchArm64 {
		t.Fatalf("expected arm64 AppImage, got %s/%s", target.Arch, target.Format)
	}
	if !strings.HasSuffix(target.URL, "_arm64.AppImage") {
		t.Errorf("unexpected URL %s", target.URL)
	}
	if target.Subtitle != "DOWNLOAD.LINUX_ARM64" {
		t.Errorf("expected translated arm64 subtitle, got %s", target.Subtitle)
	}
	if target.IconColor != "orange" {
		t.Errorf("expected orange icon, got %s", target.IconColor)
	}
}

func TestSelectDownloadUnknownIsGeneric(t *testing.T) {
	s := NewSelector(nil, upperTranslator{})

	target := s.SelectDownload(Unknown(), testVersion)
	if !target.Generic {
		t.Error("unknown OS should produce a generic target")
	}
	if target.OS != OSMacOS || target.Arch != ArchUniversal {
		t.Errorf("generic target should use the macOS universal artifact, got %s/%s", target.OS, target.Arch)
	}
	if target.Label != "DOWNLOAD.DOWNLOAD" || target.Subtitle != "DOWNLOAD.SELECT_PLATFORM" {
		t.Errorf("generic target should carry generic labels, got %q / %q", target.Label, target.Subtitle)
	}
	if target.Icon != "mdi-download" {
		t.Errorf("expected generic icon, got %s", target.Icon)
	}
}

func TestAlternatives(t *testing.T) {
	s := NewSelector(nil, nil)

	mac := s.Alternatives(Descriptor{OSMacOS, ArchArm64}, testVersion)
	if len(mac) != 2 {
		t.Fatalf("expected 2 macOS alternatives, got %d", len(mac))
	}
	if mac[0].Arch != ArchArm64 || !strings.HasSuffix(mac[0].URL, "_aarch64.dmg") {
		t.Errorf("unexpected first macOS alternative %+v", mac[0])
	}
	if mac[1].Arch != ArchX64 || !strings.HasSuffix(mac[1].URL, "_x64.dmg") {
		t.Errorf("unexpected second macOS alternative %+v", mac[1])
	}

	linux := s.Alternatives(Descriptor{OSLinux, ArchArm64}, testVersion)
	if len(linux) != 2 {
		t.Fatalf("expected 2 linux alternatives, got %d", len(linux))
	}
	if !strings.HasSuffix(linux[0].URL, "_arm64.deb") || !strings.HasSuffix(linux[1].URL, "_aarch64.rpm") {
		t.Errorf("unexpected linux arm64 alternatives %s, %s", linux[0].URL, linux[1].URL)
	}

	linuxX64 := s.Alternatives(Descriptor{OSLinux, ArchUnknown}, testVersion)
	if len(linuxX64) != 2 || !strings.HasSuffix(linuxX64[1].URL, "_x86_64.rpm") {
		t.Errorf("unexpected linux x64 alternatives %+v", linuxX64)
	}

	if alts := s.Alternatives(Descriptor{OSWindows, ArchX64}, testVersion); len(alts) != 0 {
		t.Errorf("windows should have no alternatives, got %d", len(alts))
	}
	if alts := s.Alternatives(Unknown(), testVersion); alts != nil {
		t.Errorf("unknown OS should have no alternatives, got %d", len(alts))
	}
}

func TestDownloadsCoversMatrix(t *testing.T) {
	s := NewSelector(nil, nil)

	targets := s.Downloads(testVersion)
	if len(targets) != 10 {
		t.Fatalf("expected 10 artifacts, got %d", len(targets))
	}

	exts := map[Format]int{}
	for _, target := range targets {
		exts[target.Format]++
		if !strings.HasPrefix(target.URL, testPrefix) {
			t.Errorf("URL %s does not follow the release template", target.URL)
		}
	}

	expected := map[Format]int{FormatMSI: 1, FormatDMG: 3, FormatAppImage: 2, FormatDeb: 2, FormatRPM: 2}
	for format, count := range expected {
		if exts[format] != count {
			t.Errorf("expected %d %s artifacts, got %d", count, format, exts[format])
		}
	}
}
