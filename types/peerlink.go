package types

import (
	"github.com/xybydy/go-mediarss/pkg/record"
	"go.uber.org/zap/zapcore"
)

// PeerLink is a P2P link to a media object, <media:peerLink>, e.g. a torrent of type "application/x-bittorrent".
type PeerLink struct {
	typ  record.Optional[string]
	href record.Optional[URI]
}

// NewPeerLink returns a P2P link with the given attributes.
func NewPeerLink(typ record.Optional[string], href record.Optional[URI]) PeerLink {
	return PeerLink{typ: typ, href: href}
}

func (p PeerLink) Type() record.Optional[string] {
	return p.typ
}

func (p PeerLink) Href() record.Optional[URI] {
	return p.href
}

func (p PeerLink) Clone() PeerLink {
	return NewPeerLink(p.typ, p.href)
}

func (PeerLink) Kind() string {
	return "PeerLink"
}

func (p PeerLink) Fields() []record.Field {
	return []record.Field{
		record.String("type", p.typ),
		record.String("href", p.href),
	}
}

func (p PeerLink) Equal(other any) bool {
	return record.Matches(p, other)
}

func (p PeerLink) Hash() uint64 {
	return record.Hash(p)
}

func (p PeerLink) String() string {
	return record.Display(p)
}

func (p PeerLink) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	return record.Marshaler(p).MarshalLogObject(enc)
}
