package compose

import (
	"strconv"
	"testing"
)

func TestVersion_IsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
}

func TestBanner(t *testing.T) {
	if got, want := Banner("compose-replay"), "compose-replay v"+Version(); got != want {
		t.Fatalf("banner: got %q, want %q", got, want)
	}
}

func TestIsSemver(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "1.2.3-alpha.1", want: true},
		{version: "2.0.0+build.7", want: true},
		{version: "v1.2.3", want: false},
		{version: "1.2", want: false},
		{version: "01.2.3", want: false},
	}

	for _, tc := range cases {
		got := IsSemver(tc.version)
		if got != tc.want {
			t.Fatalf("IsSemver(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestCompatible(t *testing.T) {
	p := semverParts(Version())
	same := Version()
	cases := []struct {
		version string
		want    bool
	}{
		{version: "", want: true},
		{version: same, want: true},
		{version: "v" + same, want: true},
		{version: "not-a-version", want: false},
		{version: strconv.Itoa(p[0]+1) + ".0.0", want: false},
	}
	if p[0] == 0 {
		cases = append(cases, struct {
			version string
			want    bool
		}{version: "0." + strconv.Itoa(p[1]+1) + ".0", want: false})
	}

	for _, tc := range cases {
		if got := Compatible(tc.version); got != tc.want {
			t.Fatalf("Compatible(%q): got %v, want %v", tc.version, got, tc.want)
		}
	}
}
