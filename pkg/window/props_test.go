package window

import "testing"

func str(s string) *string { return &s }

func TestPropsBlank(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  bool
	}{
		{"all absent", Props{}, true},
		{"all empty", Props{Name: str(""), Class: str(""), Title: str("")}, true},
		{"mixed absent and empty", Props{Name: str(""), Title: str("")}, true},
		{"name only", Props{Name: str("xterm")}, false},
		{"class only", Props{Class: str("XTerm")}, false},
		{"title only", Props{Title: str("hello")}, false},
		{"empty name but real title", Props{Name: str(""), Title: str("hello")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.props.Blank(); got != tt.want {
				t.Errorf("Blank() = %v, want %v", got, tt.want)
			}
		})
	}
}
