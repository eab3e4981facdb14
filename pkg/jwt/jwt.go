package jwt

import (
	"errors"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

// ContextKey 鉴权中间件写入 gin 上下文的键
const ContextKey = "claims"

type JWT struct {
	key    []byte
	expire time.Duration
}

type MyCustomClaims struct {
	UserId string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func NewJwt(conf *viper.Viper) *JWT {
	hours := conf.GetInt("security.jwt.expire_hours")
	if hours <= 0 {
		hours = 24
	}
	return &JWT{
		key:    []byte(conf.GetString("security.jwt.key")),
		expire: time.Duration(hours) * time.Hour,
	}
}

// GenToken 生成访问令牌，expiresAt 为零值时使用配置的有效期
func (j *JWT) GenToken(userId, name string, expiresAt time.Time) (string, error) {
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(j.expire)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, MyCustomClaims{
		UserId: userId,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "avdportal",
			Subject:   userId,
		},
	})

	tokenString, err := token.SignedString(j.key)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (j *JWT) ParseToken(tokenString string) (*MyCustomClaims, error) {
	re := regexp.MustCompile(`(?i)Bearer `)
	tokenString = re.ReplaceAllString(tokenString, "")
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}
	token, err := jwt.ParseWithClaims(tokenString, &MyCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*MyCustomClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
