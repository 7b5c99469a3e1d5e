package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role uint8

const (
	RolePublic Role = iota
	RoleUser
	RoleStaff
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleStaff:
		return "staff"
	default:
		return "public"
	}
}

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" required:"true" json:"-"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
}

type Profile struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var (
	ErrNoUser       = errors.New("user is not authenticated")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// NewToken signs p with HS256; an empty secret is refused.
func NewToken(cfg Config, p Profile, now time.Time) (string, error) {
	if cfg.Secret == "" {
		return "", ErrInvalidToken
	}
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func ParseToken(cfg Config, tokenStr string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, ErrInvalidToken
	}
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type ctxKey struct{}

func SetAuthContext(ctx context.Context, p Profile) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(ctxKey{}).(Profile)
	if !ok || p.UserID == 0 {
		return Profile{}, ErrNoUser
	}
	return p, nil
}

func IsStaff(ctx context.Context) bool {
	p, err := GetProfile(ctx)
	return err == nil && p.IsStaff
}
