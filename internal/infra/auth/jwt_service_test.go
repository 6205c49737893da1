package auth

import (
	"strings"
	"testing"

	"gramsaarthi/config"
	"gramsaarthi/internal/domain/entity"
	"gramsaarthi/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, expireMinutes int) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{
		Secret:        "test-secret",
		Algorithm:     "HS256",
		ExpireMinutes: expireMinutes,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_IssueAndVerify_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 60)

	token, err := svc.Issue(entity.RoleRuralUser, "A@B.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRuralUser, claims.Role)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "RURAL_USER:a@b.com", claims.Subject)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := newTestTokenService(t, -1)

	token, err := svc.Issue(entity.RoleDistrictAdmin, "admin@district.gov.in")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_Tampered(t *testing.T) {
	svc := newTestTokenService(t, 60)

	token, err := svc.Issue(entity.RoleRuralUser, "a@b.com")
	require.NoError(t, err)

	// Flip a single character of the payload segment.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'x' {
		tampered[mid] = 'y'
	} else {
		tampered[mid] = 'x'
	}

	claims, err := svc.Verify(string(tampered))
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t, 60)

	otherCfg := &config.Config{}
	otherCfg.JWT = &config.JWTConfig{Secret: "other-secret", Algorithm: "HS256", ExpireMinutes: 60}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue(entity.RoleRuralUser, "a@b.com")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_WrongAlgorithm(t *testing.T) {
	// Token signed with HS512 must be rejected by a service configured for HS256.
	hs512Cfg := &config.Config{}
	hs512Cfg.JWT = &config.JWTConfig{Secret: "test-secret", Algorithm: "HS512", ExpireMinutes: 60}
	hs512, err := NewJWTService(hs512Cfg)
	require.NoError(t, err)

	token, err := hs512.Issue(entity.RoleRuralUser, "a@b.com")
	require.NoError(t, err)

	svc := newTestTokenService(t, 60)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := newTestTokenService(t, 60)

	for _, token := range []string{"", "garbage", "not.a.jwt", strings.Repeat("a", 512)} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	}
}

func TestNewJWTService_RejectsNonHMACAlgorithm(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{Secret: "test-secret", Algorithm: "RS256", ExpireMinutes: 60}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{Algorithm: "HS256", ExpireMinutes: 60}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}
