package pkpass

// PassInformation holds the five ordered field groups shared by every
// content variant. Empty groups are not serialized.
type PassInformation struct {
	HeaderFields    []FieldValue
	PrimaryFields   []FieldValue
	SecondaryFields []FieldValue
	BackFields      []FieldValue
	AuxiliaryFields []FieldValue
}

// AddHeaderField appends a plain field to the header group.
func (p *PassInformation) AddHeaderField(key string, value any, label string) {
	p.HeaderFields = append(p.HeaderFields, NewField(key, value, label))
}

// AddPrimaryField appends a plain field to the primary group.
func (p *PassInformation) AddPrimaryField(key string, value any, label string) {
	p.PrimaryFields = append(p.PrimaryFields, NewField(key, value, label))
}

// AddSecondaryField appends a plain field to the secondary group.
func (p *PassInformation) AddSecondaryField(key string, value any, label string) {
	p.SecondaryFields = append(p.SecondaryFields, NewField(key, value, label))
}

// AddBackField appends a plain field to the back group.
func (p *PassInformation) AddBackField(key string, value any, label string) {
	p.BackFields = append(p.BackFields, NewField(key, value, label))
}

// AddAuxiliaryField appends a plain field to the auxiliary group.
func (p *PassInformation) AddAuxiliaryField(key string, value any, label string) {
	p.AuxiliaryFields = append(p.AuxiliaryFields, NewField(key, value, label))
}

func (p *PassInformation) jsonDict() (map[string]any, error) {
	groups := []struct {
		name   string
		fields []FieldValue
	}{
		{"headerFields", p.HeaderFields},
		{"primaryFields", p.PrimaryFields},
		{"secondaryFields", p.SecondaryFields},
		{"backFields", p.BackFields},
		{"auxiliaryFields", p.AuxiliaryFields},
	}

	d := make(map[string]any, len(groups))

	for _, group := range groups {
		if len(group.fields) == 0 {
			continue
		}

		projected := make([]map[string]any, 0, len(group.fields))

		for _, field := range group.fields {
			fd, err := field.jsonDict()
			if err != nil {
				return nil, err
			}

			projected = append(projected, fd)
		}

		d[group.name] = projected
	}

	return d, nil
}

// ContentVariant is one of the five pass kinds. The variant tag becomes
// the top-level document key holding the field groups.
type ContentVariant interface {
	variantTag() string
	jsonDict() (map[string]any, error)
}

// BoardingPass is the variant for flights, trains, buses and boats.
type BoardingPass struct {
	PassInformation

	// TransitType categorizes the vehicle. Always serialized.
	TransitType TransitType
}

// NewBoardingPass returns a boarding pass for the provided transit type.
// An empty transit type defaults to air travel.
func NewBoardingPass(transitType TransitType) *BoardingPass {
	if transitType == "" {
		transitType = TransitTypeAir
	}

	return &BoardingPass{TransitType: transitType}
}

func (b *BoardingPass) variantTag() string {
	return "boardingPass"
}

func (b *BoardingPass) jsonDict() (map[string]any, error) {
	d, err := b.PassInformation.jsonDict()
	if err != nil {
		return nil, err
	}

	d["transitType"] = b.TransitType

	return d, nil
}

// Coupon is the variant for discounts and offers.
type Coupon struct {
	PassInformation
}

// NewCoupon returns an empty coupon.
func NewCoupon() *Coupon {
	return &Coupon{}
}

func (c *Coupon) variantTag() string {
	return "coupon"
}

// EventTicket is the variant for admission to events.
type EventTicket struct {
	PassInformation
}

// NewEventTicket returns an empty event ticket.
func NewEventTicket() *EventTicket {
	return &EventTicket{}
}

func (e *EventTicket) variantTag() string {
	return "eventTicket"
}

// Generic is the variant for passes that fit no other kind.
type Generic struct {
	PassInformation
}

// NewGeneric returns an empty generic pass.
func NewGeneric() *Generic {
	return &Generic{}
}

func (g *Generic) variantTag() string {
	return "generic"
}

// StoreCard is the variant for loyalty and balance cards.
type StoreCard struct {
	PassInformation
}

// NewStoreCard returns an empty store card.
func NewStoreCard() *StoreCard {
	return &StoreCard{}
}

func (s *StoreCard) variantTag() string {
	return "storeCard"
}
