package sessioncookie

import (
	"errors"
	"time"

	libJWT "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the token signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid signing method")

	// ErrSigningKeyTooShort is returned when the HS512 signing key is less than 64 bytes.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired is returned when the cookie token has expired.
	ErrTokenExpired = errors.New("cookie token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// Codec encodes a session id into a signed cookie value and back.
type Codec interface {
	// Encode returns a signed cookie value carrying sid.
	Encode(sid string) (string, error)
	// Decode verifies a cookie value and returns the sid it carries.
	Decode(value string) (string, error)
}

type clocker interface {
	Now() time.Time
}

type claims struct {
	libJWT.RegisteredClaims
	SID string `json:"sid"`
}

// Config defines the inputs for building an HS512 codec.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// TTL bounds how long a cookie stays decodable; it should exceed the
	// server-side session TTL so the redis key is always the earlier cutoff.
	TTL time.Duration
	// Clock provides the current time source.
	Clock clocker
}

// HS512 implements Codec using an HMAC-SHA512 signed token.
type HS512 struct {
	secret []byte
	issuer string
	ttl    time.Duration
	clock  clocker
}

// NewHS512 constructs an HS512 cookie codec.
func NewHS512(cfg Config) (*HS512, error) {
	if len(cfg.Secret) < 64 {
		return nil, ErrSigningKeyTooShort
	}

	return &HS512{
		secret: cfg.Secret,
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}, nil
}

// Encode returns a signed cookie value carrying sid.
func (s *HS512) Encode(sid string) (string, error) {
	now := s.clock.Now()

	return libJWT.
		NewWithClaims(libJWT.SigningMethodHS512, claims{
			RegisteredClaims: libJWT.RegisteredClaims{
				Subject:   sid,
				Issuer:    s.issuer,
				IssuedAt:  libJWT.NewNumericDate(now),
				NotBefore: libJWT.NewNumericDate(now),
				ExpiresAt: libJWT.NewNumericDate(now.Add(s.ttl)),
			},
			SID: sid,
		}).
		SignedString(s.secret)
}

// Decode verifies a cookie value and returns the sid it carries.
func (s *HS512) Decode(value string) (string, error) {
	var clm claims

	token, err := libJWT.ParseWithClaims(value, &clm,
		func(t *libJWT.Token) (any, error) {
			if t.Method != libJWT.SigningMethodHS512 {
				return nil, ErrInvalidSigningMethod
			}
			return s.secret, nil
		},
		libJWT.WithIssuer(s.issuer),
		libJWT.WithValidMethods([]string{libJWT.SigningMethodHS512.Alg()}),
		libJWT.WithIssuedAt(),
		libJWT.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, libJWT.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", err
	}

	if !token.Valid || clm.SID == "" {
		return "", ErrInvalidToken
	}

	return clm.SID, nil
}
