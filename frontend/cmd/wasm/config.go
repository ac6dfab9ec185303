package main

import (
	"context"

	"github.com/learnsphere-dev/learnsphere/shared/api"
	"github.com/learnsphere-dev/learnsphere/shared/apiclient"
)

// servedBaseURL asks the server the page came from for its /config.json.
func servedBaseURL(ctx context.Context, pageOrigin string, opts ...apiclient.Option) (string, error) {
	site, err := apiclient.New(apiclient.Config{BaseURL: pageOrigin}, opts...)
	if err != nil {
		return "", err
	}
	var cfg api.PublicConfig
	if err := site.GetInto(ctx, "/config.json", "", &cfg); err != nil {
		return "", err
	}
	return cfg.APIBaseURL, nil
}
