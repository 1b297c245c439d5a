package httpx

import "net/http"

// Client is the outbound HTTP surface used by remote classifiers.
// *http.Client satisfies it as well as FastHTTPClient.
//
//go:generate mockery --name=Client --dir=. --output=./mocks --filename=http_client_mock.go --case=underscore
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}
