package numerics

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestTextRoundTrip(t *testing.T) {
	v := V3(math.Pi, 1e-300, -6.02214076e23)
	s := strings.Trim(v.Text(language.English, ""), "<>")
	parts := strings.Split(s, ", ")
	if len(parts) != 3 {
		t.Fatalf("components %q", parts)
	}
	want := []float64{v.X, v.Y, v.Z}
	for i, p := range parts {
		got, err := strconv.ParseFloat(p, 64)
		if err != nil || got != want[i] {
			t.Errorf("component %d: %q parses to %v, %v", i, p, got, err)
		}
	}
}

func TestGroupSeparator(t *testing.T) {
	for _, tc := range []struct {
		tag  language.Tag
		want string
	}{
		{language.English, ","},
		{language.German, "."},
	} {
		if got := groupSeparator(message.NewPrinter(tc.tag)); got != tc.want {
			t.Errorf("%v separator = %q, want %q", tc.tag, got, tc.want)
		}
	}
}

func TestText(t *testing.T) {
	en := language.English
	for _, tc := range []struct {
		name string
		got  string
		want string
	}{
		{"Vec2", V2(1.0, -3.0).Text(en, ""), "<1, -3>"},
		{"Vec3", V3(1.0, 2.0, 3.0).Text(en, ""), "<1, 2, 3>"},
		{"Vec4", V4[float32](0, 0, 0, 1).Text(en, ""), "<0, 0, 0, 1>"},
		{"Vec2 German", V2(1.0, 2.0).Text(language.German, ""), "<1. 2>"},
		{"Quat", QuatIdentity[float64]().Text(en, ""), "{X:0 Y:0 Z:0 W:1}"},
		{"Plane", NewPlane(0.0, 1.0, 0.0, -2.0).Text(en, ""), "{Normal:<0, 1, 0> D:-2}"},
		{"Mat3x2", Mat3x2Identity[float64]().Text(en, ""), "{ {M11:1 M12:0} {M21:0 M22:1} {M31:0 M32:0} }"},
		{"Mat4", Mat4Identity[float32]().Text(en, ""),
			"{ {M11:1 M12:0 M13:0 M14:0} {M21:0 M22:1 M23:0 M24:0} {M31:0 M32:0 M33:1 M34:0} {M41:0 M42:0 M43:0 M44:1} }"},
		{"verb", V2(1.0, 2.0).Text(en, "%.2f"), "<1.00, 2.00>"},
		{"tiny", Quat[float64]{W: 6.123233995736757e-17}.Text(en, ""), "{X:0 Y:0 Z:0 W:6.123233995736757e-17}"},
		{"large", V2(1234567.5, -0.25).Text(en, ""), "<1234567.5, -0.25>"},
		{"float32", V2[float32](0.1, 1e-20).Text(en, ""), "<0.1, 1e-20>"},
		{"German decimal", V2(1.5, 2.0).Text(language.German, ""), "<1,5. 2>"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}
