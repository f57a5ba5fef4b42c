package config

import "net/url"

// maskedPath replaces the path and query of an endpoint
const maskedPath = "***"

// MaskEndpoint hides everything after the host of an endpoint URL. RPC
// provider URLs carry API keys in the path or query.
func MaskEndpoint(endpoint string) string {
	if endpoint == "" {
		return ""
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return maskedPath
	}

	if (u.Path == "" || u.Path == "/") && u.RawQuery == "" && u.User == nil {
		return u.Scheme + "://" + u.Host
	}
	return u.Scheme + "://" + u.Host + "/" + maskedPath
}
