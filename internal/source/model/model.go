package model

import "net/url"

// BasicParam holds the query parameters shared by all source links.
type BasicParam struct {
	Timeout int64  `schema:"timeout"`
	Format  string `schema:"format"`
}

type Params struct {
	URL          *url.URL
	CustomParams BasicParam
}
