package gateway

import (
	httpclient "github.com/piresc/ridebook/internal/pkg/http"
	"github.com/piresc/ridebook/services/rides"
	gateway_http "github.com/piresc/ridebook/services/rides/gateway/http"
)

// NewRideGW creates the ride gateway over the backend REST API
func NewRideGW(client *httpclient.Client) rides.RideGW {
	return gateway_http.NewHTTPGateway(client)
}
