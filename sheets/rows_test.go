package sheets

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRowString_LowercaseWins(t *testing.T) {
	row := Row{"name": "lower", "Name": "upper"}
	assert.Equal(t, "lower", row.String("name", "Name"))
}

func TestRowString_FallsBackToLegacyKey(t *testing.T) {
	row := Row{"Name": "upper"}
	assert.Equal(t, "upper", row.String("name", "Name"))

	// Empty lowercase cells don't shadow the legacy column.
	row = Row{"name": "", "Name": "upper"}
	assert.Equal(t, "upper", row.String("name", "Name"))
}

func TestRowDecimal(t *testing.T) {
	row := Row{"Price": "19.99"}
	assert.True(t, decimal.RequireFromString("19.99").Equal(row.Decimal("price", "Price")))

	// Unparsable cells are zero, never an error.
	row = Row{"Price": "abc"}
	assert.True(t, row.Decimal("price", "Price").IsZero())

	// JSON numbers work too.
	row = Row{"price": 42.5}
	assert.True(t, decimal.RequireFromString("42.5").Equal(row.Decimal("price", "Price")))

	assert.True(t, Row{}.Decimal("price", "Price").IsZero())
}

func TestRowBool(t *testing.T) {
	assert.True(t, Row{"active": "true"}.Bool("active", "Active"))
	assert.True(t, Row{"active": true}.Bool("active", "Active"))
	assert.False(t, Row{"active": "TRUE"}.Bool("active", "Active"))
	assert.False(t, Row{"active": "yes"}.Bool("active", "Active"))
	assert.False(t, Row{}.Bool("active", "Active"))
}

func TestRowStringList(t *testing.T) {
	row := Row{"features": `["a","b"]`}
	assert.Equal(t, []string{"a", "b"}, row.StringList("features", "Features"))

	row = Row{"features": []any{"x", "y"}}
	assert.Equal(t, []string{"x", "y"}, row.StringList("features", "Features"))

	// Malformed JSON must not crash the read path.
	row = Row{"features": `[broken`}
	assert.Empty(t, row.StringList("features", "Features"))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, SplitList("a.jpg, b.jpg"))
	assert.Equal(t, []string{"one.png"}, SplitList("one.png"))
	assert.Equal(t, []string{"a", "b"}, SplitList("a,,  ,b"))
	assert.Empty(t, SplitList(""))
}

func TestProductFromRow_ImageNormalization(t *testing.T) {
	p := productFromRow(Row{
		"id":     "7",
		"name":   "Thing",
		"Price":  "19.99",
		"images": "a.jpg, b.jpg",
	})
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, p.Images)
	assert.Equal(t, "a.jpg", p.Image)
	assert.True(t, decimal.RequireFromString("19.99").Equal(p.Price))
	// sellPrice defaults to price when the sheet has no sale column.
	assert.True(t, p.Price.Equal(p.SellPrice))
}

func TestProductFromRow_SingularImageOnly(t *testing.T) {
	p := productFromRow(Row{"id": "8", "Image": "solo.jpg"})
	assert.Equal(t, []string{"solo.jpg"}, p.Images)
	assert.Equal(t, "solo.jpg", p.Image)
}

func TestVoucherFromRow(t *testing.T) {
	v := voucherFromRow(Row{
		"ID":         "3",
		"Code":       "FREESHIP",
		"Type":       "shipping",
		"active":     "true",
		"UsageLimit": "200",
		"usageCount": "17",
	})
	assert.Equal(t, "FREESHIP", v.Code)
	assert.True(t, v.Active)
	assert.Equal(t, 200, v.UsageLimit)
	assert.Equal(t, 17, v.UsageCount)
	assert.True(t, v.Discount.IsZero())
}
