package stats

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

const (
	FieldCountry = "country"
	FieldBeer    = "beer_servings"
	FieldSpirit  = "spirit_servings"
	FieldWine    = "wine_servings"
	FieldLitres  = "total_litres_of_pure_alcohol"
)

// Record is one row of the per-country consumption table.
type Record struct {
	Country string
	Beer    float64
	Spirit  float64
	Wine    float64
	Litres  float64
}

// Parse decodes records in the given format ("json" or "csv").
func Parse(ctx context.Context, data []byte, format string) ([]Record, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return ParseJSON(ctx, data)
	case "csv":
		return ParseCSV(ctx, data)
	default:
		return nil, fmt.Errorf("stats: unsupported format %q", format)
	}
}

// coercer turns loosely typed cells into numbers. Cells that cannot be read as a
// finite number become 0 and are counted so the caller can report them once.
type coercer struct {
	invalid int
}

func (c *coercer) number(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		c.invalid++
		return 0
	}
	return v
}

func (c *coercer) report(ctx context.Context, format string) {
	if c.invalid == 0 {
		return
	}
	logutil.GetLogger(ctx).Warn("non numeric statistic values zeroed",
		zap.String("format", format), zap.Int("count", c.invalid))
}
