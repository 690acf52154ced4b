package pkpass

// DefaultMessageEncoding is the text encoding used to convert barcode
// messages when none is specified.
const DefaultMessageEncoding = "iso-8859-1"

// Barcode describes one scannable code displayed on the pass.
type Barcode struct {
	// Format is the symbology. Defaults to PDF417.
	Format BarcodeFormat
	// Message is the payload encoded into the barcode.
	Message string
	// MessageEncoding is the text encoding of Message.
	MessageEncoding string
	// AltText is optional text displayed near the barcode.
	AltText string
}

// NewBarcode returns a PDF417 barcode carrying the provided message.
func NewBarcode(message string) *Barcode {
	return &Barcode{
		Format:          BarcodeFormatPDF417,
		Message:         message,
		MessageEncoding: DefaultMessageEncoding,
	}
}

func (b *Barcode) jsonDict() map[string]any {
	format := b.Format
	if format == "" {
		format = BarcodeFormatPDF417
	}

	encoding := b.MessageEncoding
	if encoding == "" {
		encoding = DefaultMessageEncoding
	}

	d := map[string]any{
		"format":          format,
		"message":         b.Message,
		"messageEncoding": encoding,
	}

	if b.AltText != "" {
		d["altText"] = b.AltText
	}

	return d
}
