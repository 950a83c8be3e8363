package pkg

import (
	"context"
	"time"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

// 双token方案 access短期 refresh长期
// access过期但refresh有效时 由中间件续发新的access

func AccessTokenJwtInit() {
	AccessTokenJwtMiddleware = newTokenMiddleware(
		config.ConfigInfo.Jwt.AccessSecret,
		time.Hour,
		"header: Authorization",
	)
}

func RefreshTokenJwtInit() {
	RefreshTokenJwtMiddleware = newTokenMiddleware(
		config.ConfigInfo.Jwt.RefreshSecret,
		72*time.Hour,
		"header: Refresh-Token",
	)
}

func newTokenMiddleware(secret string, timeout time.Duration, lookup string) *jwt.HertzJWTMiddleware {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "vidtube",
		Key:         []byte(secret),
		Timeout:     timeout,
		MaxRefresh:  timeout,
		IdentityKey: IdentityKey,
		TokenLookup: lookup,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(int64); ok {
				return jwt.MapClaims{IdentityKey: v}
			}
			return jwt.MapClaims{}
		},
	})
	if err != nil {
		panic(err)
	}
	return mw
}

func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	if !claimsValid(claims) {
		return false
	}
	c.Set(IdentityKey, claims[IdentityKey])
	return true
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	if !claimsValid(claims) {
		return false
	}
	c.Set(IdentityKey, claims[IdentityKey])
	return true
}

func claimsValid(claims jwt.MapClaims) bool {
	exp, ok := claims["exp"]
	if !ok {
		return false
	}
	switch t := exp.(type) {
	case float64:
		return int64(t) > time.Now().Unix()
	case int64:
		return t > time.Now().Unix()
	default:
		return false
	}
}

// GenerateAccessToken refresh有效时补发access 通过响应头下发
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return
	}
	token, _, err := AccessTokenJwtMiddleware.TokenGenerator(toInt64(v))
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to generate access token: %v", err)
		return
	}
	c.Header("New-Access-Token", token)
}

// GenerateTokenPair 登录时签发access和refresh
func GenerateTokenPair(userId int64) (accessToken, refreshToken string, err error) {
	accessToken, _, err = AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ConvertJWTPayloadToString 取中间件放进上下文的身份
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, errno.TokenInvailedErr
	}
	return v, nil
}

func toInt64(v interface{}) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case float64:
		return int64(t)
	default:
		return 0
	}
}
