package datauri

import "testing"

func TestParseImageValid(t *testing.T) {
	t.Parallel()
	image, ok := ParseImage("data:image/png;base64,QQ==")
	if !ok {
		t.Fatal("ParseImage: got ok=false, want true")
	}
	if image.Subtype != "png" {
		t.Errorf("subtype: got %q, want png", image.Subtype)
	}
	if image.Payload != "QQ==" {
		t.Errorf("payload: got %q, want QQ==", image.Payload)
	}
}

func TestParseImageSubtypes(t *testing.T) {
	t.Parallel()
	cases := []struct {
		value   string
		subtype string
	}{
		{"data:image/jpeg;base64,QUJD", "jpeg"},
		{"data:image/svg+xml;base64,QUJD", "svg+xml"},
		{"data:image/x-icon;base64,QUJD", "x-icon"},
	}

	for _, tc := range cases {
		image, ok := ParseImage(tc.value)
		if !ok {
			t.Errorf("ParseImage(%q): got ok=false, want true", tc.value)
			continue
		}
		if image.Subtype != tc.subtype {
			t.Errorf("ParseImage(%q) subtype: got %q, want %q", tc.value, image.Subtype, tc.subtype)
		}
	}
}

func TestParseImageRejectsMalformed(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",
		"not-a-data-uri",
		"data:image/png;base64,",      // empty payload
		"data:text/plain;base64,QQ==", // wrong media type
		"data:image/png,QQ==",         // missing base64 marker
		"xdata:image/png;base64,QQ==", // not anchored at the start
	}

	for _, value := range cases {
		if _, ok := ParseImage(value); ok {
			t.Errorf("ParseImage(%q): got ok=true, want false", value)
		}
	}
}
