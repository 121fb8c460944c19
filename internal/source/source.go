package source

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/gorilla/schema"
	"github.com/xxxsen/drinkmap/internal/source/model"
)

const (
	FormatJSON    = "json"
	FormatCSV     = "csv"
	FormatGeoJSON = "geojson"
)

// ISource fetches the raw bytes of one dataset.
type ISource interface {
	String() string
	// Format is the payload format, taken from the `format` link parameter
	// or guessed from the path extension.
	Format() string
	Fetch(ctx context.Context) ([]byte, error)
}

type Factory func(schema string, host string, params *model.Params) (ISource, error)

var m = make(map[string]Factory)

func Register(schema string, fac Factory) {
	m[schema] = fac
}

// MakeSource builds a source from a link such as file://data/drinks.json?format=json.
func MakeSource(link string) (ISource, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, fmt.Errorf("empty source link")
	}
	uri, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("parse source link failed, link:%s, err:%w", link, err)
	}
	cr, ok := m[uri.Scheme]
	if !ok {
		return nil, fmt.Errorf("no source type found, type:%s", uri.Scheme)
	}
	info := &model.Params{
		URL: uri,
	}
	if err := decodeParams(&info.CustomParams, uri.Query()); err != nil {
		return nil, err
	}
	if info.CustomParams.Format == "" {
		info.CustomParams.Format = guessFormat(uri.Path)
	}
	info.CustomParams.Format = strings.ToLower(info.CustomParams.Format)
	return cr(uri.Scheme, uri.Host, info)
}

func decodeParams(out interface{}, in map[string][]string) error {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	if err := d.Decode(out, in); err != nil {
		return err
	}
	return nil
}

func guessFormat(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".csv":
		return FormatCSV
	case ".geojson":
		return FormatGeoJSON
	default:
		return FormatJSON
	}
}
