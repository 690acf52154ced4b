package packager

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/walletforge/pkpass/pkg/pkpass"
)

// Definition mirrors the YAML document describing one pass.
type Definition struct {
	// Style picks the content variant: boardingPass, coupon, eventTicket,
	// generic or storeCard.
	Style string `yaml:"style"`
	// TransitType applies to boarding passes only.
	TransitType string `yaml:"transit_type"`

	PassTypeIdentifier string `yaml:"pass_type_identifier"`
	TeamIdentifier     string `yaml:"team_identifier"`
	OrganizationName   string `yaml:"organization_name"`
	// SerialNumber is generated when left empty.
	SerialNumber string `yaml:"serial_number"`
	Description  string `yaml:"description"`

	BackgroundColor    string `yaml:"background_color"`
	ForegroundColor    string `yaml:"foreground_color"`
	LabelColor         string `yaml:"label_color"`
	LogoText           string `yaml:"logo_text"`
	SharingProhibited  bool   `yaml:"sharing_prohibited"`
	SuppressStripShine bool   `yaml:"suppress_strip_shine"`
	Voided             bool   `yaml:"voided"`

	RelevantDate   string `yaml:"relevant_date"`
	ExpirationDate string `yaml:"expiration_date"`

	WebServiceURL       string `yaml:"web_service_url"`
	AuthenticationToken string `yaml:"authentication_token"`

	Barcodes  []BarcodeDefinition  `yaml:"barcodes"`
	Locations []LocationDefinition `yaml:"locations"`
	Beacons   []BeaconDefinition   `yaml:"beacons"`

	Fields FieldGroupsDefinition `yaml:"fields"`
}

// BarcodeDefinition mirrors one barcode entry.
type BarcodeDefinition struct {
	Format   string `yaml:"format"`
	Message  string `yaml:"message"`
	Encoding string `yaml:"encoding"`
	AltText  string `yaml:"alt_text"`
}

// LocationDefinition mirrors one relevance location entry.
// Coordinates are strings so exact decimal forms survive parsing.
type LocationDefinition struct {
	Latitude     string `yaml:"latitude"`
	Longitude    string `yaml:"longitude"`
	Altitude     string `yaml:"altitude"`
	Distance     uint64 `yaml:"distance"`
	RelevantText string `yaml:"relevant_text"`
}

// BeaconDefinition mirrors one beacon entry.
type BeaconDefinition struct {
	ProximityUUID string  `yaml:"proximity_uuid"`
	Major         *uint16 `yaml:"major"`
	Minor         *uint16 `yaml:"minor"`
	RelevantText  string  `yaml:"relevant_text"`
}

// FieldGroupsDefinition mirrors the five ordered field groups.
type FieldGroupsDefinition struct {
	Header    []FieldDefinition `yaml:"header"`
	Primary   []FieldDefinition `yaml:"primary"`
	Secondary []FieldDefinition `yaml:"secondary"`
	Auxiliary []FieldDefinition `yaml:"auxiliary"`
	Back      []FieldDefinition `yaml:"back"`
}

// FieldDefinition mirrors one field entry.
type FieldDefinition struct {
	Key           string `yaml:"key"`
	Value         any    `yaml:"value"`
	Label         string `yaml:"label"`
	ChangeMessage string `yaml:"change_message"`
	Alignment     string `yaml:"alignment"`
}

// LoadDefinition reads and parses a pass definition document.
func LoadDefinition(path string) (*Definition, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var definition Definition
	if err := yaml.Unmarshal(contents, &definition); err != nil {
		return nil, fmt.Errorf("unmarshal definition: %w", err)
	}

	return &definition, nil
}

// ToPass converts the definition into a pass description ready for Build.
func (d *Definition) ToPass() (*pkpass.Pass, error) {
	information, err := d.contentVariant()
	if err != nil {
		return nil, err
	}

	pass := pkpass.New(
		information,
		d.PassTypeIdentifier,
		d.OrganizationName,
		d.TeamIdentifier,
		d.SerialNumber,
		d.Description,
	)

	pass.BackgroundColor = d.BackgroundColor
	pass.ForegroundColor = d.ForegroundColor
	pass.LabelColor = d.LabelColor
	pass.LogoText = d.LogoText
	pass.SharingProhibited = d.SharingProhibited
	pass.SuppressStripShine = d.SuppressStripShine
	pass.Voided = d.Voided
	pass.RelevantDate = d.RelevantDate
	pass.ExpirationDate = d.ExpirationDate
	pass.WebServiceURL = d.WebServiceURL
	pass.AuthenticationToken = d.AuthenticationToken

	for _, b := range d.Barcodes {
		barcode := pkpass.NewBarcode(b.Message)
		if b.Format != "" {
			barcode.Format = pkpass.BarcodeFormat(b.Format)
		}

		if b.Encoding != "" {
			barcode.MessageEncoding = b.Encoding
		}

		barcode.AltText = b.AltText

		pass.Barcodes = append(pass.Barcodes, barcode)
	}

	for _, l := range d.Locations {
		location := pkpass.NewLocation(l.Latitude, l.Longitude)
		if l.Altitude != "" {
			location.SetAltitude(l.Altitude)
		}

		location.Distance = l.Distance
		location.RelevantText = l.RelevantText

		pass.Locations = append(pass.Locations, location)
	}

	for _, b := range d.Beacons {
		beacon, err := pkpass.NewIBeacon(b.ProximityUUID)
		if err != nil {
			return nil, fmt.Errorf("beacon: %w", err)
		}

		if b.Major != nil {
			beacon.SetMajor(*b.Major)
		}

		if b.Minor != nil {
			beacon.SetMinor(*b.Minor)
		}

		beacon.RelevantText = b.RelevantText

		pass.Beacons = append(pass.Beacons, beacon)
	}

	return pass, nil
}

// contentVariant builds the variant named by Style with its field groups.
func (d *Definition) contentVariant() (pkpass.ContentVariant, error) {
	var information *pkpass.PassInformation

	var variant pkpass.ContentVariant

	switch d.Style {
	case "boardingPass":
		boardingPass := pkpass.NewBoardingPass(pkpass.TransitType(d.TransitType))
		information, variant = &boardingPass.PassInformation, boardingPass
	case "coupon":
		coupon := pkpass.NewCoupon()
		information, variant = &coupon.PassInformation, coupon
	case "eventTicket":
		ticket := pkpass.NewEventTicket()
		information, variant = &ticket.PassInformation, ticket
	case "generic", "":
		generic := pkpass.NewGeneric()
		information, variant = &generic.PassInformation, generic
	case "storeCard":
		card := pkpass.NewStoreCard()
		information, variant = &card.PassInformation, card
	default:
		return nil, fmt.Errorf("unknown pass style %q", d.Style)
	}

	groups := []struct {
		fields []FieldDefinition
		target *[]pkpass.FieldValue
	}{
		{d.Fields.Header, &information.HeaderFields},
		{d.Fields.Primary, &information.PrimaryFields},
		{d.Fields.Secondary, &information.SecondaryFields},
		{d.Fields.Auxiliary, &information.AuxiliaryFields},
		{d.Fields.Back, &information.BackFields},
	}

	for _, group := range groups {
		for _, fd := range group.fields {
			field := pkpass.NewField(fd.Key, fd.Value, fd.Label)
			field.ChangeMessage = fd.ChangeMessage

			if fd.Alignment != "" {
				field.TextAlignment = pkpass.Alignment(fd.Alignment)
			}

			*group.target = append(*group.target, field)
		}
	}

	return variant, nil
}
