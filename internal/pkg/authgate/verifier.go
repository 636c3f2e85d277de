// Package authgate 对接外部登录服务，换取 id token 对应的身份信息
package authgate

import (
	"Socialens/internal/api/config"
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Identity 外部登录服务返回的身份信息
type Identity struct {
	AuthUID string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// TokenVerifier 校验外部 id token，换取身份信息
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

type RestVerifier struct {
	httpClient *resty.Client
	url        string
}

func NewRestVerifier(cfg config.AuthConfig) *RestVerifier {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout)

	return &RestVerifier{
		httpClient: client,
		url:        cfg.TokenInfoURL,
	}
}

func (s *RestVerifier) VerifyIDToken(ctx context.Context, idToken string) (*Identity, error) {
	identity := &Identity{}

	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetQueryParam("id_token", idToken).
		SetResult(identity).
		Get(s.url)
	if err != nil {
		return nil, errors.Wrap(err, "调用登录校验接口失败")
	}
	if resp.IsError() {
		return nil, errors.Errorf("登录校验接口返回 %s", resp.Status())
	}
	if identity.AuthUID == "" || identity.Email == "" {
		return nil, errors.New("登录校验响应缺少身份字段")
	}

	return identity, nil
}
