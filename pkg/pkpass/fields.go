package pkpass

import (
	"encoding"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// FieldValue is implemented by every field variant that can appear in a
// field group. Each variant states explicitly which attributes it emits.
type FieldValue interface {
	jsonDict() (map[string]any, error)
}

// Field is the base field variant: a free-form value with a display label.
type Field struct {
	// Key must be unique within its field group (caller contract).
	Key string
	// Value is the displayed content. Supported types: strings, booleans,
	// Go numeric types, decimal.Decimal, time.Time and anything
	// implementing json.Marshaler.
	Value any
	// Label is the optional text shown above the value.
	Label string
	// ChangeMessage is the alert format string shown when the pass updates.
	ChangeMessage string
	// TextAlignment controls value placement. Defaults to left.
	TextAlignment Alignment
}

// NewField returns a left-aligned field with the provided key, value and label.
func NewField(key string, value any, label string) *Field {
	return &Field{
		Key:           key,
		Value:         value,
		Label:         label,
		TextAlignment: AlignmentLeft,
	}
}

func (f *Field) jsonDict() (map[string]any, error) {
	value, err := projectValue(f.Key, f.Value)
	if err != nil {
		return nil, err
	}

	alignment := f.TextAlignment
	if alignment == "" {
		alignment = AlignmentLeft
	}

	return map[string]any{
		"key":           f.Key,
		"value":         value,
		"label":         f.Label,
		"changeMessage": f.ChangeMessage,
		"textAlignment": alignment,
	}, nil
}

// DateField displays a date or timestamp with configurable styles.
type DateField struct {
	Field

	// DateStyle selects the date component rendering.
	DateStyle DateStyle
	// TimeStyle selects the time component rendering.
	TimeStyle DateStyle
	// IsRelative shows the value as a relative date when true.
	IsRelative bool
	// IgnoresTimeZone renders the value without timezone conversion.
	// Emitted only when set.
	IgnoresTimeZone bool
}

// NewDateField returns a date field with short date and time styles.
func NewDateField(key string, value time.Time, label string) *DateField {
	return &DateField{
		Field:     *NewField(key, value, label),
		DateStyle: DateStyleShort,
		TimeStyle: DateStyleShort,
	}
}

func (f *DateField) jsonDict() (map[string]any, error) {
	d, err := f.Field.jsonDict()
	if err != nil {
		return nil, err
	}

	d["dateStyle"] = f.DateStyle
	d["timeStyle"] = f.TimeStyle
	d["isRelative"] = f.IsRelative

	if f.IgnoresTimeZone {
		d["ignoresTimeZone"] = true
	}

	return d, nil
}

// NumberField displays a numeric value with a number style.
type NumberField struct {
	Field

	// NumberStyle selects the numeric rendering. Defaults to decimal.
	NumberStyle NumberStyle
}

// NewNumberField returns a number field with the decimal style.
func NewNumberField(key string, value any, label string) *NumberField {
	return &NumberField{
		Field:       *NewField(key, value, label),
		NumberStyle: NumberStyleDecimal,
	}
}

func (f *NumberField) jsonDict() (map[string]any, error) {
	d, err := f.Field.jsonDict()
	if err != nil {
		return nil, err
	}

	style := f.NumberStyle
	if style == "" {
		style = NumberStyleDecimal
	}

	d["numberStyle"] = style

	return d, nil
}

// CurrencyField displays a monetary amount together with its currency.
type CurrencyField struct {
	Field

	// CurrencyCode is the ISO 4217 code of the amount.
	CurrencyCode string
}

// NewCurrencyField returns a currency field for the provided amount and code.
func NewCurrencyField(key string, value any, label, currencyCode string) *CurrencyField {
	return &CurrencyField{
		Field:        *NewField(key, value, label),
		CurrencyCode: currencyCode,
	}
}

func (f *CurrencyField) jsonDict() (map[string]any, error) {
	d, err := f.Field.jsonDict()
	if err != nil {
		return nil, err
	}

	d["currencyCode"] = f.CurrencyCode

	return d, nil
}

// projectValue maps a field value to its JSON form. Types without a
// defined projection abort serialization.
func projectValue(key string, value any) (any, error) {
	switch v := value.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	case decimal.Decimal:
		// Marshals as its exact decimal form, never a binary float.
		return v, nil
	case time.Time:
		return v.Format(time.RFC3339), nil
	case json.Marshaler:
		return v, nil
	case encoding.TextMarshaler:
		return v, nil
	}

	return nil, &SerializationError{Key: key, Value: value}
}
