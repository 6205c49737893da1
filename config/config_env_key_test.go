package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"dynamodb": map[string]any{
			"usersTable": "gramsaarthi_users",
			"accessKeyId": "local",
		},
		"jwt": map[string]any{
			"expireMinutes": 60,
		},
		"cors": map[string]any{
			"allowedOrigins": []any{},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DYNAMODB_USERSTABLE", want: "dynamodb.usersTable"},
		{envKey: "DYNAMODB_ACCESSKEYID", want: "dynamodb.accessKeyId"},
		{envKey: "JWT_EXPIREMINUTES", want: "jwt.expireMinutes"},
		{envKey: "CORS_ALLOWEDORIGINS", want: "cors.allowedOrigins"},
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
