package shared

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxMultipartMemory = 8 << 20

var validate = validator.New()

// Params is the merged request data of one request: query string, then form
// fields, then JSON body fields, each later source overriding the earlier ones.
type Params map[string]string

// ParseParams collects the request data of r. A malformed JSON body is a
// validation error.
func ParseParams(r *http.Request) (Params, error) {
	p := Params{}
	for k, v := range r.URL.Query() {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return p, nil
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, Validation(CodeInvalidParam, "malformed form body")
		}
		p.merge(r.PostForm)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, Validation(CodeInvalidParam, "malformed multipart body")
		}
		p.merge(r.MultipartForm.Value)
	case "application/json":
		if err := p.mergeJSON(r.Body); err != nil {
			return nil, Validation(CodeInvalidParam, "malformed JSON body")
		}
	}
	return p, nil
}

func (p Params) merge(values url.Values) {
	for k, v := range values {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
}

func (p Params) mergeJSON(body io.Reader) error {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	for k, v := range fields {
		switch val := v.(type) {
		case nil:
		case string:
			p[k] = val
		case json.Number:
			p[k] = val.String()
		case bool:
			p[k] = strconv.FormatBool(val)
		default:
			b, err := json.Marshal(val)
			if err != nil {
				return err
			}
			p[k] = string(b)
		}
	}
	return nil
}

// String returns the trimmed value of key. Blank values count as absent.
func (p Params) String(key string) (string, bool) {
	v := strings.TrimSpace(p[key])
	return v, v != ""
}

// Int64 returns the integer value of key. Absent or non-integer values report false.
func (p Params) Int64(key string) (int64, bool) {
	v, ok := p.String(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Values exposes p as url.Values, for parsers written against query strings.
func (p Params) Values() url.Values {
	out := make(url.Values, len(p))
	for k, v := range p {
		out.Set(k, v)
	}
	return out
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v any) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}
	return validate.Struct(v)
}

// FirstInvalidField returns the struct field name of the first validation failure
// in err, or "" when err holds none.
func FirstInvalidField(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].StructField()
	}
	return ""
}
