package x11

import "testing"

func TestParseClassHint(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		wantName  *string
		wantClass *string
	}{
		{
			name:      "absent property",
			data:      nil,
			wantName:  nil,
			wantClass: nil,
		},
		{
			name:      "instance and class",
			data:      []byte("xterm\x00XTerm\x00"),
			wantName:  str("xterm"),
			wantClass: str("XTerm"),
		},
		{
			name:      "missing trailing NUL",
			data:      []byte("xterm\x00XTerm"),
			wantName:  str("xterm"),
			wantClass: str("XTerm"),
		},
		{
			name:      "instance only",
			data:      []byte("xterm\x00"),
			wantName:  str("xterm"),
			wantClass: nil,
		},
		{
			name:      "empty instance with class",
			data:      []byte("\x00XTerm\x00"),
			wantName:  str(""),
			wantClass: str("XTerm"),
		},
		{
			name:      "present but empty",
			data:      []byte{},
			wantName:  str(""),
			wantClass: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, class := parseClassHint(tt.data)
			checkString(t, "name", name, tt.wantName)
			checkString(t, "class", class, tt.wantClass)
		})
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *string
	}{
		{"absent", nil, nil},
		{"plain", []byte("Mozilla Firefox"), str("Mozilla Firefox")},
		{"trailing NUL", []byte("xterm\x00"), str("xterm")},
		{"present but empty", []byte{}, str("")},
		{"utf-8", []byte("Bücher – Überblick"), str("Bücher – Überblick")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkString(t, "text", decodeText(tt.data), tt.want)
		})
	}
}

func str(s string) *string { return &s }

func checkString(t *testing.T, label string, got, want *string) {
	t.Helper()
	switch {
	case want == nil && got != nil:
		t.Errorf("%s = %q, want nil", label, *got)
	case want != nil && got == nil:
		t.Errorf("%s = nil, want %q", label, *want)
	case want != nil && got != nil && *got != *want:
		t.Errorf("%s = %q, want %q", label, *got, *want)
	}
}
