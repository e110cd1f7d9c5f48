package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	cases := map[string]float64{
		`42`:      42,
		`42.5`:    42.5,
		`"5"`:     5,
		`"5.25"`:  5.25,
		`" 7 "`:   7,
		`null`:    0,
		`"n/a"`:   0,
		`""`:      0,
		`"?"`:     0,
	}

	for input, want := range cases {
		var f FlexNumber
		require.NoError(t, f.UnmarshalJSON([]byte(input)), "input %s", input)
		assert.Equal(t, want, f.Float(), "input %s", input)
	}
}

func TestGameCategoryUnmarshal(t *testing.T) {
	cases := map[string]GameCategory{
		`1`:        GameCategoryPares,
		`"2"`:      GameCategorySwer2,
		`"Pares"`:  GameCategoryPares,
		`"swer4"`:  GameCategorySwer4,
		`null`:     GameCategoryNone,
		`"bingo"`:  GameCategoryNone,
	}

	for input, want := range cases {
		var g GameCategory
		require.NoError(t, g.UnmarshalJSON([]byte(input)), "input %s", input)
		assert.Equal(t, want, g, "input %s", input)
	}
}

func TestMetricRecordDecode(t *testing.T) {
	t.Run("flat bet type fields", func(t *testing.T) {
		raw := []byte(`{"date":"2024-05-01T08:00:00Z","drawOrder":2,"region":"Region VII",
			"gameCategory":"Swer2","winners":"12","payoutAmount":3400.50,"tumbok":5,"sahod":7}`)

		var rec MetricRecord
		require.NoError(t, json.Unmarshal(raw, &rec))

		assert.Equal(t, 2, rec.DrawOrder)
		assert.Equal(t, GameCategorySwer2, rec.GameCategory)
		assert.Equal(t, float64(12), rec.Winners.Float())
		assert.Equal(t, 3400.50, rec.PayoutAmount.Float())
		assert.Equal(t, float64(5), rec.BetTypeValue("Tumbok"))
		assert.Equal(t, float64(7), rec.BetTypeValue("Sahod"))
		assert.Zero(t, rec.BetTypeValue("Ramble"))
	})

	t.Run("nested BetTypes object", func(t *testing.T) {
		raw := []byte(`{"date":"2024-05-01","drawOrder":1,"BetTypes":{"Tumbok":"3","Sahod":null,"Ramble":9}}`)

		var rec MetricRecord
		require.NoError(t, json.Unmarshal(raw, &rec))

		assert.Equal(t, float64(3), rec.BetTypeValue("Tumbok"))
		assert.Zero(t, rec.BetTypeValue("Sahod"))
		assert.Equal(t, float64(9), rec.BetTypeValue("Ramble"))
	})

	t.Run("unknown bet type reads zero", func(t *testing.T) {
		var rec MetricRecord
		assert.Zero(t, rec.BetTypeValue("Straight"))
	})
}
