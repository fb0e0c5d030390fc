package decoder

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
)

// ErrMalformedElement marks a single array element that is not an object. Decoding continues after it.
var ErrMalformedElement = errors.New("malformed element")

// errPathNotFound is returned when the payload doesn't contain the wrapper, which means no elements.
var errPathNotFound = errors.New("path not found")

// Decoder decodes payloads and feed files into elements.
type Decoder struct{}

// Elements parses the whole payload in memory and yields object elements found at the path.
// An object found at the path is yielded as the only element.
// A payload that can't be parsed yields a single ErrMalformedPayload error.
func (d Decoder) Elements(payload string, path ...string) iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		dec := json.NewDecoder(strings.NewReader(payload))
		dec.UseNumber()

		var root any
		if err := dec.Decode(&root); err != nil {
			yield(nil, fmt.Errorf("%w: %w", platform.ErrMalformedPayload, err))
			return
		}

		value, ok := Field(root, path...)
		if !ok || value == nil {
			return
		}

		switch v := value.(type) {
		case map[string]any:
			yield(v, nil)
		case []any:
			for ix, el := range v {
				obj, ok := el.(map[string]any)
				if !ok {
					if !yield(nil, fmt.Errorf("%w: element %d is %T", ErrMalformedElement, ix, el)) {
						return
					}
					continue
				}
				if !yield(obj, nil) {
					return
				}
			}
		default:
			yield(nil, fmt.Errorf("%w: expected array at %q, got %T", platform.ErrMalformedPayload, strings.Join(path, "."), value))
		}
	}
}

// Array decodes the payload incrementally and yields object elements found at the path.
// Elements decoded before the payload was cut off are yielded, followed by an ErrTruncatedPayload error.
func (d Decoder) Array(r io.Reader, path ...string) iter.Seq2[map[string]any, error] {
	return func(yield func(map[string]any, error) bool) {
		dec := json.NewDecoder(r)
		dec.UseNumber()

		if err := descend(dec, path); err != nil {
			if !errors.Is(err, errPathNotFound) {
				yield(nil, err)
			}
			return
		}

		tok, err := dec.Token()
		if err != nil {
			if len(path) == 0 && errors.Is(err, io.EOF) {
				err = fmt.Errorf("%w: empty payload", platform.ErrMalformedPayload)
			}
			yield(nil, streamError(err))
			return
		}

		switch tok {
		case json.Delim('{'):
			obj, err := objectRest(dec)
			if err != nil {
				yield(nil, streamError(err))
				return
			}
			yield(obj, nil)
			return
		case json.Delim('['):
		case nil:
			return
		default:
			yield(nil, fmt.Errorf("%w: expected array, got %v", platform.ErrMalformedPayload, tok))
			return
		}

		for ix := 0; dec.More(); ix++ {
			var el any
			if err := dec.Decode(&el); err != nil {
				yield(nil, streamError(err))
				return
			}

			obj, ok := el.(map[string]any)
			if !ok {
				if !yield(nil, fmt.Errorf("%w: element %d is %T", ErrMalformedElement, ix, el)) {
					return
				}
				continue
			}

			if !yield(obj, nil) {
				return
			}
		}

		if _, err := dec.Token(); err != nil {
			yield(nil, streamError(err))
		}
	}
}

// Offers decodes offer elements of an XML feed one by one.
func (d Decoder) Offers(r io.Reader) iter.Seq2[Offer, error] {
	return func(yield func(Offer, error) bool) {
		dec := xml.NewDecoder(r)
		dec.Strict = true

		for {
			token, err := dec.Token()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					yield(Offer{}, fmt.Errorf("%w: %w", platform.ErrMalformedPayload, err))
				}
				return
			}

			element, ok := token.(xml.StartElement)
			if !ok || element.Name.Local != "offer" {
				continue
			}

			var offer Offer
			if err := dec.DecodeElement(&offer, &element); err != nil {
				yield(Offer{}, fmt.Errorf("%w: %w", platform.ErrMalformedPayload, err))
				return
			}
			offer.Name = html.UnescapeString(offer.Name)

			if !yield(offer, nil) {
				return
			}
		}
	}
}

// Field returns the value at the path. Numeric segments index arrays.
func Field(v any, path ...string) (any, bool) {
	for _, segment := range path {
		switch node := v.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			v = next
		case []any:
			ix, err := strconv.Atoi(segment)
			if err != nil || ix < 0 || ix >= len(node) {
				return nil, false
			}
			v = node[ix]
		default:
			return nil, false
		}
	}

	return v, true
}

// Path splits a dotted field path.
func Path(dotted string) []string {
	if dotted == "" {
		return nil
	}

	return strings.Split(dotted, ".")
}

// Text renders a payload value as a report cell.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(t); err != nil {
			return fmt.Sprint(t)
		}
		return strings.TrimSpace(buf.String())
	}
}

func descend(dec *json.Decoder, path []string) error {
	for depth, segment := range path {
		tok, err := dec.Token()
		if err != nil {
			if depth == 0 && errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty payload", platform.ErrMalformedPayload)
			}
			return streamError(err)
		}

		switch tok {
		case json.Delim('{'):
			if err := seekKey(dec, segment); err != nil {
				return err
			}
		case json.Delim('['):
			if err := seekIndex(dec, segment); err != nil {
				return err
			}
		default:
			return errPathNotFound
		}
	}

	return nil
}

func seekKey(dec *json.Decoder, key string) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return streamError(err)
		}
		if name, _ := tok.(string); name == key {
			return nil
		}
		if err := skip(dec); err != nil {
			return err
		}
	}

	return errPathNotFound
}

func seekIndex(dec *json.Decoder, segment string) error {
	ix, err := strconv.Atoi(segment)
	if err != nil {
		return errPathNotFound
	}

	for i := 0; dec.More(); i++ {
		if i == ix {
			return nil
		}
		if err := skip(dec); err != nil {
			return err
		}
	}

	return errPathNotFound
}

func skip(dec *json.Decoder) error {
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return streamError(err)
	}

	return nil
}

func objectRest(dec *json.Decoder) (map[string]any, error) {
	obj := make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		obj[key] = v
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return obj, nil
}

func streamError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %w", platform.ErrTruncatedPayload, err)
	}
	if errors.Is(err, platform.ErrTruncatedPayload) || errors.Is(err, platform.ErrMalformedPayload) {
		return err
	}

	return fmt.Errorf("%w: %w", platform.ErrMalformedPayload, err)
}
