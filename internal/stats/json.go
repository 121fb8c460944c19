package stats

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseJSON reads an array of objects. Numeric fields may be JSON numbers or
// numeric strings.
func ParseJSON(ctx context.Context, data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("stats: invalid json document")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, fmt.Errorf("stats: expected json array of records")
	}
	c := &coercer{}
	items := root.Array()
	rs := make([]Record, 0, len(items))
	for _, item := range items {
		country := item.Get(FieldCountry).String()
		if country == "" {
			continue
		}
		rs = append(rs, Record{
			Country: country,
			Beer:    c.field(item.Get(FieldBeer)),
			Spirit:  c.field(item.Get(FieldSpirit)),
			Wine:    c.field(item.Get(FieldWine)),
			Litres:  c.field(item.Get(FieldLitres)),
		})
	}
	c.report(ctx, "json")
	return rs, nil
}

func (c *coercer) field(r gjson.Result) float64 {
	switch r.Type {
	case gjson.Number:
		return r.Num
	case gjson.String:
		return c.number(r.Str)
	case gjson.Null:
		return 0
	default:
		c.invalid++
		return 0
	}
}
