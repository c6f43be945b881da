package gateway

import (
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/services/auth"
	gateway_http "github.com/piresc/ridebook/services/auth/gateway/http"
)

// NewAuthGW creates the backend authentication gateway
func NewAuthGW(client *httpclient.Client) auth.AuthGW {
	return gateway_http.NewHTTPGateway(client)
}
