package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "roomie",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigValidate_DashboardDefaults(t *testing.T) {
	cfg := &Config{Postgres: &PostgresConfig{Host: "localhost", DBName: "roomie"}}

	if err := cfg.validate(); err != nil {
		t.Fatalf("validate() = %v, want nil", err)
	}
	if cfg.Dashboard.LeaderboardSize != 5 {
		t.Errorf("LeaderboardSize = %d, want 5", cfg.Dashboard.LeaderboardSize)
	}
	if cfg.Dashboard.UpcomingBills != 3 {
		t.Errorf("UpcomingBills = %d, want 3", cfg.Dashboard.UpcomingBills)
	}
}

func TestConfigValidate_MissingPostgresIsFatal(t *testing.T) {
	cfg := &Config{}

	if err := cfg.validate(); err == nil {
		t.Fatal("validate() = nil, want error for missing postgres block")
	}
}
