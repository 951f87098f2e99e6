package member

import (
	"testing"
	"time"
)

func TestTokenIssueAndVerify(t *testing.T) {
	const secret = "test-secret"
	issuer := tokenIssuer{secret: []byte(secret), ttl: 30 * time.Minute}
	m := &Member{ID: 7, UserID: "traveler"}

	signed, err := issuer.issue(m, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}

	claims, err := VerifyAccessToken(signed, secret)
	if err != nil {
		t.Fatalf("VerifyAccessToken() error = %v", err)
	}
	if claims.MemberID != 7 || claims.UserID != "traveler" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestVerifyAccessToken_WrongSecret(t *testing.T) {
	issuer := tokenIssuer{secret: []byte("right"), ttl: time.Minute}
	signed, err := issuer.issue(&Member{ID: 1, UserID: "u"}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}
	if _, err := VerifyAccessToken(signed, "wrong"); err == nil {
		t.Error("VerifyAccessToken() accepted a token signed with another secret")
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	issuer := tokenIssuer{secret: []byte("s"), ttl: time.Minute}
	signed, err := issuer.issue(&Member{ID: 1, UserID: "u"}, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("issue() error = %v", err)
	}
	if _, err := VerifyAccessToken(signed, "s"); err == nil {
		t.Error("VerifyAccessToken() accepted an expired token")
	}
}

func TestVerifyAccessToken_Garbage(t *testing.T) {
	if _, err := VerifyAccessToken("not.a.jwt", "s"); err == nil {
		t.Error("VerifyAccessToken() accepted garbage input")
	}
}
