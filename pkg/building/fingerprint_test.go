package building

import "testing"

func TestFingerprintStable(t *testing.T) {
	b := workshop()

	first := b.Fingerprint()
	if len(first) != 64 {
		t.Fatalf("fingerprint length = %d, expected 64 hex chars", len(first))
	}
	for i := 0; i < 5; i++ {
		if got := b.Fingerprint(); got != first {
			t.Fatalf("fingerprint changed between calls: %q vs %q", got, first)
		}
	}
}

func TestFingerprintEqualBuildings(t *testing.T) {
	a, b := workshop(), workshop()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("independently built identical buildings should share a fingerprint")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := workshop().Fingerprint()

	cases := []struct {
		name   string
		mutate func(*Building)
	}{
		{"width", func(b *Building) { b.Dimensions.Width = 42 }},
		{"pitch", func(b *Building) { b.Dimensions.RoofPitch = 5 }},
		{"wall color", func(b *Building) { b.Color = "#FFFFFF" }},
		{"roof color", func(b *Building) { b.RoofColor = "#000000" }},
		{"feature offset", func(b *Building) { b.Features[0].Position.XOffset = 1 }},
		{"feature alignment", func(b *Building) { b.Features[1].Position.Align = AlignRight }},
		{"skylight offset", func(b *Building) { b.Skylights[0].YOffset = 11 }},
		{"feature removed", func(b *Building) { b.RemoveFeature("crew-door") }},
		{"skylight removed", func(b *Building) { b.RemoveSkylight(0) }},
	}

	for _, tc := range cases {
		b := workshop()
		tc.mutate(b)
		if b.Fingerprint() == base {
			t.Errorf("%s: fingerprint should change", tc.name)
		}
	}
}
