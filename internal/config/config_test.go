package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SampleTime != DefaultSampleTime {
		t.Errorf("SampleTime = %d, want %d", cfg.SampleTime, DefaultSampleTime)
	}
	if cfg.DBPath != "" {
		t.Errorf("DBPath = %q, want empty (per-user default)", cfg.DBPath)
	}
	if cfg.Display != "" {
		t.Errorf("Display = %q, want empty (default display)", cfg.Display)
	}
	if cfg.ExcludeBlanks {
		t.Error("ExcludeBlanks = true, want blanks included by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		sampleTime int
		wantErr    bool
	}{
		{"default is valid", DefaultSampleTime, false},
		{"one second", 1, false},
		{"zero", 0, true},
		{"negative", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.SampleTime = tt.sampleTime
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("WORKTRACKAGE_DB_PATH", "/tmp/test.db")
	t.Setenv("WORKTRACKAGE_DISPLAY", ":1")
	t.Setenv("WORKTRACKAGE_SAMPLE_TIME", "120")
	t.Setenv("WORKTRACKAGE_EXCLUDE_BLANKS", "true")

	cfg := New()

	if cfg.DBPath != "/tmp/test.db" {
		t.Errorf("DBPath = %q, want /tmp/test.db", cfg.DBPath)
	}
	if cfg.Display != ":1" {
		t.Errorf("Display = %q, want :1", cfg.Display)
	}
	if cfg.SampleTime != 120 {
		t.Errorf("SampleTime = %d, want 120", cfg.SampleTime)
	}
	if !cfg.ExcludeBlanks {
		t.Error("ExcludeBlanks = false, want true")
	}
}

func TestLoadFromEnvIgnoresInvalidValues(t *testing.T) {
	t.Setenv("WORKTRACKAGE_SAMPLE_TIME", "not-a-number")
	t.Setenv("WORKTRACKAGE_EXCLUDE_BLANKS", "maybe")

	cfg := New()

	if cfg.SampleTime != DefaultSampleTime {
		t.Errorf("SampleTime = %d, want default %d", cfg.SampleTime, DefaultSampleTime)
	}
	if cfg.ExcludeBlanks {
		t.Error("ExcludeBlanks = true, want default false")
	}
}

func TestLoadFromEnvRejectsNonPositiveSampleTime(t *testing.T) {
	t.Setenv("WORKTRACKAGE_SAMPLE_TIME", "-10")

	cfg := New()
	if cfg.SampleTime != DefaultSampleTime {
		t.Errorf("SampleTime = %d, want default %d", cfg.SampleTime, DefaultSampleTime)
	}
}
