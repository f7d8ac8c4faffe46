package ted

import "testing"

func TestVersion_EmbeddedIsSemver(t *testing.T) {
	if !IsSemver(Version()) {
		t.Fatalf("embedded version must be semver: got %q", Version())
	}
	if got, want := VersionTag(), "v"+Version(); got != want {
		t.Fatalf("version tag: got %q, want %q", got, want)
	}
}

func TestParseSemVer(t *testing.T) {
	cases := []struct {
		in   string
		want SemVer
		ok   bool
	}{
		{in: "0.1.0", want: SemVer{Minor: 1}, ok: true},
		{in: "1.2.3-alpha.1", want: SemVer{Major: 1, Minor: 2, Patch: 3, Pre: "alpha.1"}, ok: true},
		{in: "2.0.0+build.7", want: SemVer{Major: 2, Build: "build.7"}, ok: true},
		{in: "v1.2.3"},
		{in: "1.2"},
		{in: "01.2.3"},
	}

	for _, tc := range cases {
		got, err := ParseSemVer(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseSemVer(%q): err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if !tc.ok {
			continue
		}
		if got != tc.want {
			t.Fatalf("ParseSemVer(%q): got %+v, want %+v", tc.in, got, tc.want)
		}
		if got.String() != tc.in {
			t.Fatalf("String(): got %q, want %q", got.String(), tc.in)
		}
	}
}
