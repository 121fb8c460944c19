package stats

import (
	"context"
	"testing"
)

func TestParseJSONCoercesStrings(t *testing.T) {
	doc := `[
	  {"country":"Algeria","beer_servings":25,"spirit_servings":0,"wine_servings":14,"total_litres_of_pure_alcohol":0.7},
	  {"country":"Andorra","beer_servings":"245","spirit_servings":"138","wine_servings":"312","total_litres_of_pure_alcohol":"12.4"},
	  {"country":"Bogus","beer_servings":"lots","spirit_servings":null,"wine_servings":[1],"total_litres_of_pure_alcohol":"1e3"},
	  {"beer_servings":1}
	]`
	rs, err := ParseJSON(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if len(rs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(rs))
	}
	if rs[0] != (Record{Country: "Algeria", Beer: 25, Spirit: 0, Wine: 14, Litres: 0.7}) {
		t.Fatalf("unexpected first record: %+v", rs[0])
	}
	if rs[1].Beer != 245 || rs[1].Litres != 12.4 {
		t.Fatalf("string numbers not coerced: %+v", rs[1])
	}
	if rs[2].Beer != 0 || rs[2].Spirit != 0 || rs[2].Wine != 0 || rs[2].Litres != 1000 {
		t.Fatalf("invalid values should be zeroed: %+v", rs[2])
	}
}

func TestParseJSONRejectsObject(t *testing.T) {
	if _, err := ParseJSON(context.Background(), []byte(`{"country":"x"}`)); err == nil {
		t.Fatalf("expected error for non-array document")
	}
	if _, err := ParseJSON(context.Background(), []byte(`[`)); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

func TestParseCSV(t *testing.T) {
	doc := "country,beer_servings,spirit_servings,wine_servings,total_litres_of_pure_alcohol\n" +
		"Afghanistan,0,0,0,0.0\n" +
		"Albania,89,132,54,4.9\n" +
		"\"Bosnia-Herzegovina\",76,173,8,4.6\n" +
		",1,1,1,1\n" +
		"Cook Islands,0,254,74,n/a\n"
	rs, err := Parse(context.Background(), []byte(doc), "csv")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(rs) != 4 {
		t.Fatalf("expected 4 records, got %d", len(rs))
	}
	if rs[1] != (Record{Country: "Albania", Beer: 89, Spirit: 132, Wine: 54, Litres: 4.9}) {
		t.Fatalf("unexpected record: %+v", rs[1])
	}
	if rs[2].Country != "Bosnia-Herzegovina" {
		t.Fatalf("quoted country not decoded: %q", rs[2].Country)
	}
	if rs[3].Litres != 0 || rs[3].Spirit != 254 {
		t.Fatalf("unexpected coercion: %+v", rs[3])
	}
}

func TestParseCSVColumnOrder(t *testing.T) {
	doc := "total_litres_of_pure_alcohol,country\n3.5,Chad\n"
	rs, err := ParseCSV(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if len(rs) != 1 || rs[0].Country != "Chad" || rs[0].Litres != 3.5 || rs[0].Beer != 0 {
		t.Fatalf("unexpected records: %+v", rs)
	}
}

func TestParseCSVMissingCountryColumn(t *testing.T) {
	if _, err := ParseCSV(context.Background(), []byte("name,beer_servings\nx,1\n")); err == nil {
		t.Fatalf("expected error for missing country column")
	}
}

func TestParseUnknownFormat(t *testing.T) {
	if _, err := Parse(context.Background(), nil, "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestParseKeepsCountryVerbatim(t *testing.T) {
	rs, err := ParseJSON(context.Background(), []byte(`[{"country":" Chad ","total_litres_of_pure_alcohol":0.4}]`))
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if len(rs) != 1 || rs[0].Country != " Chad " {
		t.Fatalf("country name should not be trimmed: %+v", rs)
	}
	doc := "country, total_litres_of_pure_alcohol\n Chad , 0.4\n"
	rs, err = ParseCSV(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if len(rs) != 1 || rs[0].Country != " Chad " || rs[0].Litres != 0.4 {
		t.Fatalf("country name should not be trimmed: %+v", rs)
	}
}
