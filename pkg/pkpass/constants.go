package pkpass

// Alignment controls horizontal text placement of a field value.
type Alignment string

// Text alignment values understood by pass-rendering clients.
const (
	AlignmentLeft      Alignment = "PKTextAlignmentLeft"
	AlignmentCenter    Alignment = "PKTextAlignmentCenter"
	AlignmentRight     Alignment = "PKTextAlignmentRight"
	AlignmentJustified Alignment = "PKTextAlignmentJustified"
	AlignmentNatural   Alignment = "PKTextAlignmentNatural"
)

// BarcodeFormat identifies the symbology used to render a barcode.
type BarcodeFormat string

// Supported barcode symbologies.
const (
	BarcodeFormatPDF417  BarcodeFormat = "PKBarcodeFormatPDF417"
	BarcodeFormatQR      BarcodeFormat = "PKBarcodeFormatQR"
	BarcodeFormatAztec   BarcodeFormat = "PKBarcodeFormatAztec"
	BarcodeFormatCode128 BarcodeFormat = "PKBarcodeFormatCode128"
)

// TransitType categorizes a boarding pass by vehicle kind.
type TransitType string

// Transit types for boarding passes.
const (
	TransitTypeAir     TransitType = "PKTransitTypeAir"
	TransitTypeTrain   TransitType = "PKTransitTypeTrain"
	TransitTypeBus     TransitType = "PKTransitTypeBus"
	TransitTypeBoat    TransitType = "PKTransitTypeBoat"
	TransitTypeGeneric TransitType = "PKTransitTypeGeneric"
)

// DateStyle selects how a date or time component is displayed.
type DateStyle string

// Date and time display styles.
const (
	DateStyleNone   DateStyle = "PKDateStyleNone"
	DateStyleShort  DateStyle = "PKDateStyleShort"
	DateStyleMedium DateStyle = "PKDateStyleMedium"
	DateStyleLong   DateStyle = "PKDateStyleLong"
	DateStyleFull   DateStyle = "PKDateStyleFull"
)

// NumberStyle selects how a numeric field value is displayed.
type NumberStyle string

// Number display styles.
const (
	NumberStyleDecimal    NumberStyle = "PKNumberStyleDecimal"
	NumberStylePercent    NumberStyle = "PKNumberStylePercent"
	NumberStyleScientific NumberStyle = "PKNumberStyleScientific"
	NumberStyleSpellOut   NumberStyle = "PKNumberStyleSpellOut"
)
