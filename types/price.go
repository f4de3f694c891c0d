package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// Price is an offer for a media object, <media:price>.
// Info links to more details, currency is an ISO 4217 code.
type Price struct {
	typ      record.Optional[PriceType]
	info     record.Optional[URI]
	price    record.Optional[float64]
	currency record.Optional[string]
}

// NewPrice returns a price with the given attributes, stored as given.
func NewPrice(typ record.Optional[PriceType], info record.Optional[URI], price record.Optional[float64], currency record.Optional[string]) Price {
	return Price{
		typ:      typ,
		info:     info,
		price:    price,
		currency: currency,
	}
}

func (p Price) Type() record.Optional[PriceType] {
	return p.typ
}

func (p Price) Info() record.Optional[URI] {
	return p.info
}

func (p Price) Price() record.Optional[float64] {
	return p.price
}

func (p Price) Currency() record.Optional[string] {
	return p.currency
}

func (p Price) Clone() Price {
	return NewPrice(p.typ, p.info, p.price, p.currency)
}

func (Price) Kind() string {
	return "Price"
}

func (p Price) Fields() []record.Field {
	return []record.Field{
		record.Named("type", p.typ),
		record.String("info", p.info),
		record.Float("price", p.price),
		record.String("currency", p.currency),
	}
}

func (p Price) Equal(other any) bool {
	return record.Matches(p, other)
}

func (p Price) Hash() uint64 {
	return record.Hash(p)
}

func (p Price) String() string {
	return record.Display(p)
}

func (p Price) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(p).MarshalLogObject(enc)
}
