package x11

import "strings"

// parseClassHint splits a raw WM_CLASS value into its instance and
// class names. The property is two NUL-terminated strings back to
// back; either half may be present and empty, which is distinct from
// the property being absent entirely.
func parseClassHint(data []byte) (name, class *string) {
	if data == nil {
		return nil, nil
	}
	parts := strings.Split(strings.TrimRight(string(data), "\x00"), "\x00")
	if len(parts) >= 1 {
		name = &parts[0]
	}
	if len(parts) >= 2 {
		class = &parts[1]
	}
	return name, class
}

// decodeText turns a raw string property value into a Go string,
// dropping the trailing NUL some clients include. nil in, nil out.
func decodeText(data []byte) *string {
	if data == nil {
		return nil
	}
	s := strings.TrimRight(string(data), "\x00")
	return &s
}
