package backend

import (
	"context"
	"net/http"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Login struct {
	Token string
	Role  string
}

type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) Result[Login]
}

func (c *Client) Login(ctx context.Context, creds Credentials) Result[Login] {
	return call[Login](ctx, c, nil, http.MethodPost, "/auth/login", creds, func(env envelope) (Login, error) {
		if env.Token == "" {
			return Login{}, &ServerError{Status: http.StatusBadGateway, Message: "Login failed"}
		}
		l := Login{Token: env.Token}
		if env.User != nil {
			l.Role = env.User.Role
		}
		return l, nil
	})
}
