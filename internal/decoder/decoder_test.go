package decoder_test

import (
	"encoding/json"
	"errors"
	"io"
	"iter"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/MichalMitros/ecom-reconciler/internal/decoder"
	"github.com/MichalMitros/ecom-reconciler/internal/decoder/testdata"
	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedFileName = "feed.xml"

func TestUnitOffers(t *testing.T) {
	file := FeedFileAsReader(t)
	dec := decoder.Decoder{}

	offers, errs := collect(dec.Offers(file))

	assert.Equal(t, testdata.Offers, offers, "should correctly decode all offers")
	assert.Empty(t, errs, "should decode all offers without any error")
}

func TestUnitOffersBadXMLFormat(t *testing.T) {
	badFile := strings.NewReader(`<offers><offer id="1"><price>1</offer></offers>`)
	dec := decoder.Decoder{}

	offers, errs := collect(dec.Offers(badFile))

	assert.Empty(t, offers, "should not decode any offer")
	require.Len(t, errs, 1, "should return one error")
	assert.ErrorIs(t, errs[0], platform.ErrMalformedPayload)
}

func TestUnitArray(t *testing.T) {
	tests := map[string]struct {
		payload     string
		path        []string
		expectedLen int
		expectedErr []error
	}{
		"top level array": {
			payload:     `[{"a":1},{"a":2}]`,
			expectedLen: 2,
		},
		"wrapped array": {
			payload:     `{"meta":{"x":[1,2]},"stocks":[{"a":1},{"a":2},{"a":3}]}`,
			path:        []string{"stocks"},
			expectedLen: 3,
		},
		"nested wrapper": {
			payload:     `{"result":{"items":[{"a":1}]}}`,
			path:        []string{"result", "items"},
			expectedLen: 1,
		},
		"indexed wrapper": {
			payload:     `{"data":[{"offers":[{"a":1},{"a":2}]}]}`,
			path:        []string{"data", "0", "offers"},
			expectedLen: 2,
		},
		"missing wrapper": {
			payload: `{"other":[{"a":1}]}`,
			path:    []string{"stocks"},
		},
		"null wrapper": {
			payload: `{"stocks":null}`,
			path:    []string{"stocks"},
		},
		"single object": {
			payload:     `{"stocks":{"a":1}}`,
			path:        []string{"stocks"},
			expectedLen: 1,
		},
		"non object element": {
			payload:     `[{"a":1},"oops",{"a":3}]`,
			expectedLen: 2,
			expectedErr: []error{decoder.ErrMalformedElement},
		},
		"truncated array": {
			payload:     `{"results":[{"a":1},{"a":2},{"a":`,
			path:        []string{"results"},
			expectedLen: 2,
			expectedErr: []error{platform.ErrTruncatedPayload},
		},
		"truncated before wrapper": {
			payload:     `{"meta":{"x":`,
			path:        []string{"results"},
			expectedErr: []error{platform.ErrTruncatedPayload},
		},
		"empty payload": {
			payload:     ``,
			path:        []string{"results"},
			expectedErr: []error{platform.ErrMalformedPayload},
		},
		"not json": {
			payload:     `<html>502</html>`,
			expectedErr: []error{platform.ErrMalformedPayload},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}

			elements, errs := collect(dec.Array(strings.NewReader(tt.payload), tt.path...))

			assert.Len(t, elements, tt.expectedLen)
			require.Len(t, errs, len(tt.expectedErr))
			for ix, expected := range tt.expectedErr {
				assert.ErrorIs(t, errs[ix], expected)
			}
		})
	}
}

func TestUnitArrayKeepsNumbers(t *testing.T) {
	dec := decoder.Decoder{}

	elements, errs := collect(dec.Array(strings.NewReader(`[{"price":"12.50","stock":12345678901234567}]`)))

	require.Empty(t, errs)
	require.Len(t, elements, 1)
	assert.Equal(t, json.Number("12345678901234567"), elements[0]["stock"])
	assert.Equal(t, "12345678901234567", decoder.Text(elements[0]["stock"]))
}

func TestUnitArrayStopsEarly(t *testing.T) {
	dec := decoder.Decoder{}

	var seen int
	for _, err := range dec.Array(strings.NewReader(`[{"a":1},{"a":2},{"a":3}]`)) {
		require.NoError(t, err)
		seen++
		if seen == 2 {
			break
		}
	}

	assert.Equal(t, 2, seen)
}

func TestUnitElements(t *testing.T) {
	tests := map[string]struct {
		payload     string
		path        []string
		expectedLen int
		expectedErr error
	}{
		"wrapped array": {
			payload:     `{"stocks":[{"a":1},{"a":2}]}`,
			path:        []string{"stocks"},
			expectedLen: 2,
		},
		"missing wrapper": {
			payload: `{"errors":["bad"]}`,
			path:    []string{"stocks"},
		},
		"truncated": {
			payload:     `{"stocks":[{"a":1},{"a"`,
			path:        []string{"stocks"},
			expectedErr: platform.ErrMalformedPayload,
		},
		"scalar at wrapper": {
			payload:     `{"stocks":"none"}`,
			path:        []string{"stocks"},
			expectedErr: platform.ErrMalformedPayload,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			dec := decoder.Decoder{}

			elements, errs := collect(dec.Elements(tt.payload, tt.path...))

			assert.Len(t, elements, tt.expectedLen)
			if tt.expectedErr == nil {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.ErrorIs(t, errs[0], tt.expectedErr)
		})
	}
}

func TestUnitField(t *testing.T) {
	var element map[string]any
	require.NoError(t, json.Unmarshal(
		[]byte(`{"offer":{"id":"A-1","prices":[{"value":10},{"value":12}]},"empty":null}`),
		&element,
	))

	tests := map[string]struct {
		path     string
		expected any
		found    bool
	}{
		"nested key":      {path: "offer.id", expected: "A-1", found: true},
		"array index":     {path: "offer.prices.1.value", expected: float64(12), found: true},
		"null value":      {path: "empty", expected: nil, found: true},
		"missing key":     {path: "offer.name", found: false},
		"index too large": {path: "offer.prices.5.value", found: false},
		"index on object": {path: "offer.0", found: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, found := decoder.Field(element, decoder.Path(tt.path)...)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestUnitText(t *testing.T) {
	assert.Equal(t, "", decoder.Text(nil))
	assert.Equal(t, "abc", decoder.Text("abc"))
	assert.Equal(t, "12.5", decoder.Text(json.Number("12.5")))
	assert.Equal(t, "true", decoder.Text(true))
	assert.Equal(t, `["Нет в наличии"]`, decoder.Text([]any{"Нет в наличии"}))
}

func collect[T any](seq iter.Seq2[T, error]) ([]T, []error) {
	var (
		values []T
		errs   []error
	)
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}

	return values, errs
}

func FeedFileAsReader(t *testing.T) io.Reader {
	t.Helper()

	file, err := os.Open(path.Join("testdata", feedFileName))
	if err != nil {
		t.Fatal(errors.Join(errors.New("cannot open test feed file"), err))
	}
	t.Cleanup(func() { _ = file.Close() })

	return file
}
