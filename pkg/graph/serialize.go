package graph

import (
	"bytes"
	"fmt"
	"io"

	"cogentcore.org/core/math32"
	"github.com/aretw0/hexrune/pkg/archive"
	"github.com/aretw0/hexrune/pkg/domain"
)

// Size returns the exact number of bytes Serialize writes.
func (s *Script) Size() int {
	size := archive.SizeU32
	for _, b := range s.bindings {
		size += archive.SizeU64 + archive.SizeString(b.Name) + 3*archive.SizeU8 + payloadSize(b.Type, b.Value)
	}

	size += archive.SizeU32
	for _, n := range s.nodes {
		b := n.Base()
		size += archive.SizeU64 + archive.SizeU32 + archive.SizeU8
		if b.kind.IsDataBinding() {
			size += archive.SizeU64
		}
		size += 2 * archive.SizeF32
		size += archive.SizeU64List(len(b.inputs)) + archive.SizeU64List(len(b.outputs))
	}

	size += archive.SizeU32 + len(s.links)*3*archive.SizeU64
	return size
}

// Serialize writes bindings, nodes and link records in the persisted layout.
func (s *Script) Serialize(w io.Writer) error {
	aw := archive.NewWriter(w)

	aw.U32(uint32(len(s.bindings)))
	for _, b := range s.bindings {
		aw.U64(uint64(b.ID))
		aw.String(b.Name)
		aw.U8(uint8(b.Type))
		aw.U8(uint8(b.ObjectType))
		aw.U8(uint8(b.AssetType))
		writePayload(aw, b.Type, b.Value)
	}

	aw.U32(uint32(len(s.nodes)))
	for _, n := range s.nodes {
		b := n.Base()
		aw.U64(uint64(b.id))
		aw.U32(uint32(b.typeID))
		aw.U8(uint8(b.kind))
		if b.kind.IsDataBinding() {
			aw.U64(uint64(b.binding))
		}
		pos := s.editor[b.id]
		aw.F32(pos.X)
		aw.F32(pos.Y)
		aw.U64List(pinIDs(b.inputs))
		aw.U64List(pinIDs(b.outputs))
	}

	aw.U32(uint32(len(s.links)))
	for _, l := range s.links {
		aw.U64(uint64(l.ID))
		aw.U64(uint64(l.Start))
		aw.U64(uint64(l.End))
	}

	if err := aw.Err(); err != nil {
		return fmt.Errorf("serialize script: %w", err)
	}
	return nil
}

// Deserialize replaces the graph with the one encoded in r. Nodes are rebuilt
// through the factory and their pins take the persisted ids in construction
// order, so the factory must construct pins in the same order as when saved.
// Link records are restored but pins stay unlinked until Relink is called.
// On error the script is left empty.
func (s *Script) Deserialize(r io.Reader) error {
	s.reset()
	if err := s.deserialize(archive.NewReader(r)); err != nil {
		s.reset()
		return fmt.Errorf("deserialize script: %w", err)
	}
	return nil
}

// nodeRecord is one persisted node, read in full before any node is built.
type nodeRecord struct {
	id      domain.NodeID
	typeID  domain.TypeID
	kind    domain.NodeType
	binding domain.BindingID
	pos     EditorState
	inputs  []domain.PinID
	outputs []domain.PinID
}

func (s *Script) deserialize(ar *archive.Reader) error {
	count := ar.U32()
	for i := uint32(0); i < count && ar.Err() == nil; i++ {
		b := DataBinding{
			ID:   domain.BindingID(ar.U64()),
			Name: ar.String(),
			Type: domain.PinType(ar.U8()),
		}
		b.ObjectType = domain.ObjectType(ar.U8())
		b.AssetType = domain.AssetType(ar.U8())
		b.Value = readPayload(ar, b.Type)
		if ar.Err() == nil {
			s.insertDataBinding(b)
		}
	}

	var records []nodeRecord
	count = ar.U32()
	for i := uint32(0); i < count && ar.Err() == nil; i++ {
		rec := nodeRecord{
			id:     domain.NodeID(ar.U64()),
			typeID: domain.TypeID(ar.U32()),
			kind:   domain.NodeType(ar.U8()),
		}
		if rec.kind.IsDataBinding() {
			rec.binding = domain.BindingID(ar.U64())
		}
		rec.pos = EditorState{X: ar.F32(), Y: ar.F32()}
		rec.inputs = toPinIDs(ar.U64List())
		rec.outputs = toPinIDs(ar.U64List())
		if ar.Err() == nil {
			records = append(records, rec)
		}
	}

	count = ar.U32()
	for i := uint32(0); i < count && ar.Err() == nil; i++ {
		l := Link{
			ID:    domain.LinkID(ar.U64()),
			Start: domain.PinID(ar.U64()),
			End:   domain.PinID(ar.U64()),
		}
		if ar.Err() == nil {
			s.links = append(s.links, l)
		}
	}
	if err := ar.Err(); err != nil {
		return err
	}

	// Every persisted id is taken before the first node is built, so pins a
	// changed constructor adds get ids no later record uses.
	s.reserved = make(map[uint64]struct{})
	defer func() { s.reserved = nil }()
	for _, rec := range records {
		s.reserved[uint64(rec.id)] = struct{}{}
		for _, id := range rec.inputs {
			s.reserved[uint64(id)] = struct{}{}
		}
		for _, id := range rec.outputs {
			s.reserved[uint64(id)] = struct{}{}
		}
	}

	for _, rec := range records {
		if err := s.restoreNode(rec); err != nil {
			return fmt.Errorf("node %d: %w", rec.id, err)
		}
	}
	return nil
}

// restoreNode rebuilds a node through the factory with its persisted ids.
func (s *Script) restoreNode(rec nodeRecord) error {
	if s.HasNode(rec.id) {
		return fmt.Errorf("duplicate node id")
	}
	if rec.kind.IsDataBinding() {
		if _, ok := s.DataBinding(rec.binding); !ok {
			return fmt.Errorf("binding %d: %w", rec.binding, domain.ErrUnknownDataBinding)
		}
	}
	n, err := s.factory.create(rec.typeID, rec.id, s, rec.binding, rec.inputs, rec.outputs)
	if err != nil {
		return err
	}

	b := n.Base()
	if len(rec.inputs) != len(b.inputs) || len(rec.outputs) != len(b.outputs) {
		s.logger.Warn("deserialize: pin layout changed",
			"node", rec.id, "type", s.factory.TypeName(rec.typeID),
			"inputs", len(rec.inputs), "want_inputs", len(b.inputs),
			"outputs", len(rec.outputs), "want_outputs", len(b.outputs))
	}
	s.insertNode(n)
	s.editor[rec.id] = rec.pos
	return nil
}

// Load deserializes data and relinks the restored link records, leaving the
// script ready to execute.
func (s *Script) Load(data []byte) error {
	if err := s.Deserialize(bytes.NewReader(data)); err != nil {
		return err
	}
	s.Relink()
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Script) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, s.Size()))
	if err := s.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Unlike Deserialize
// it relinks, so the script is executable afterwards.
func (s *Script) UnmarshalBinary(data []byte) error {
	return s.Load(data)
}

func toPinIDs(ids []uint64) []domain.PinID {
	out := make([]domain.PinID, len(ids))
	for i, id := range ids {
		out[i] = domain.PinID(id)
	}
	return out
}

func pinIDs(pins []*Pin) []uint64 {
	ids := make([]uint64, len(pins))
	for i, p := range pins {
		ids[i] = uint64(p.id)
	}
	return ids
}

// payloadSize returns the persisted size of a binding value of type t.
// Runtime-only kinds (components, lists, delegates, functions, flow) have no payload.
func payloadSize(t domain.PinType, v domain.Value) int {
	switch t {
	case domain.PinTypeBool:
		return archive.SizeU8
	case domain.PinTypeInt:
		return archive.SizeU32
	case domain.PinTypeFloat:
		return archive.SizeF32
	case domain.PinTypeString:
		return archive.SizeString(v.AsString())
	case domain.PinTypeVector:
		return 3 * archive.SizeF32
	case domain.PinTypeMatrix:
		return 16 * archive.SizeF32
	case domain.PinTypeQuaternion:
		return 4 * archive.SizeF32
	case domain.PinTypeEntity, domain.PinTypeAsset:
		return archive.SizeU64
	}
	return 0
}

func writePayload(w *archive.Writer, t domain.PinType, v domain.Value) {
	switch t {
	case domain.PinTypeBool:
		w.Bool(v.AsBool())
	case domain.PinTypeInt:
		w.I32(v.AsInt())
	case domain.PinTypeFloat:
		w.F32(v.AsFloat())
	case domain.PinTypeString:
		w.String(v.AsString())
	case domain.PinTypeVector:
		vec := v.AsVector()
		w.F32(vec.X)
		w.F32(vec.Y)
		w.F32(vec.Z)
	case domain.PinTypeMatrix:
		m := v.AsMatrix()
		for _, f := range m {
			w.F32(f)
		}
	case domain.PinTypeQuaternion:
		q := v.AsQuaternion()
		w.F32(q.X)
		w.F32(q.Y)
		w.F32(q.Z)
		w.F32(q.W)
	case domain.PinTypeEntity:
		w.U64(uint64(v.AsEntity()))
	case domain.PinTypeAsset:
		w.U64(uint64(v.AsAsset()))
	}
}

func readPayload(r *archive.Reader, t domain.PinType) domain.Value {
	switch t {
	case domain.PinTypeBool:
		return domain.BoolValue(r.Bool())
	case domain.PinTypeInt:
		return domain.IntValue(r.I32())
	case domain.PinTypeFloat:
		return domain.FloatValue(r.F32())
	case domain.PinTypeString:
		return domain.StringValue(r.String())
	case domain.PinTypeVector:
		return domain.VectorValue(math32.Vec3(r.F32(), r.F32(), r.F32()))
	case domain.PinTypeMatrix:
		var m math32.Matrix4
		for i := range m {
			m[i] = r.F32()
		}
		return domain.MatrixValue(m)
	case domain.PinTypeQuaternion:
		return domain.QuaternionValue(math32.NewQuat(r.F32(), r.F32(), r.F32(), r.F32()))
	case domain.PinTypeEntity:
		return domain.EntityValue(domain.Entity(r.U64()))
	case domain.PinTypeAsset:
		return domain.AssetValue(domain.AssetID(r.U64()))
	}
	return domain.Zero(t)
}
