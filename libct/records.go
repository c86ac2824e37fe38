package libct

import (
	"io"

	"github.com/gogo/protobuf/proto"
)

// ResultRecord is the binary export of a Result.
//
//	message ResultRecord {
//	    string                 rule      = 1;
//	    repeated string        vertices  = 2;
//	    repeated ColoringRecord colorings = 3;
//	    repeated EdgeRecord    edges     = 4;
//	    StatsRecord            stats     = 5;
//	}
type ResultRecord struct {
	Rule      string            `protobuf:"bytes,1,opt,name=rule,proto3" json:"rule,omitempty"`
	Vertices  []string          `protobuf:"bytes,2,rep,name=vertices,proto3" json:"vertices,omitempty"`
	Colorings []*ColoringRecord `protobuf:"bytes,3,rep,name=colorings,proto3" json:"colorings,omitempty"`
	Edges     []*EdgeRecord     `protobuf:"bytes,4,rep,name=edges,proto3" json:"edges,omitempty"`
	Stats     *StatsRecord      `protobuf:"bytes,5,opt,name=stats,proto3" json:"stats,omitempty"`
}

func (m *ResultRecord) Reset()         { *m = ResultRecord{} }
func (m *ResultRecord) String() string { return proto.CompactTextString(m) }
func (*ResultRecord) ProtoMessage()    {}

// ColoringRecord is one trade graph node:  its canonical key and its colors in vertex order.
type ColoringRecord struct {
	Key    []byte   `protobuf:"bytes,1,opt,name=key,proto3" json:"key,omitempty"`
	Colors []string `protobuf:"bytes,2,rep,name=colors,proto3" json:"colors,omitempty"`
}

func (m *ColoringRecord) Reset()         { *m = ColoringRecord{} }
func (m *ColoringRecord) String() string { return proto.CompactTextString(m) }
func (*ColoringRecord) ProtoMessage()    {}

// EdgeRecord is one trade graph edge.  Trade is only set for annotated trade graphs.
type EdgeRecord struct {
	A     int32  `protobuf:"varint,1,opt,name=a,proto3" json:"a,omitempty"`
	B     int32  `protobuf:"varint,2,opt,name=b,proto3" json:"b,omitempty"`
	Trade string `protobuf:"bytes,3,opt,name=trade,proto3" json:"trade,omitempty"`
}

func (m *EdgeRecord) Reset()         { *m = EdgeRecord{} }
func (m *EdgeRecord) String() string { return proto.CompactTextString(m) }
func (*EdgeRecord) ProtoMessage()    {}

type StatsRecord struct {
	NodeCount      int64   `protobuf:"varint,1,opt,name=node_count,json=nodeCount,proto3" json:"node_count,omitempty"`
	EdgeCount      int64   `protobuf:"varint,2,opt,name=edge_count,json=edgeCount,proto3" json:"edge_count,omitempty"`
	ComponentSizes []int64 `protobuf:"varint,3,rep,packed,name=component_sizes,json=componentSizes,proto3" json:"component_sizes,omitempty"`
	Degrees        []int64 `protobuf:"varint,4,rep,packed,name=degrees,proto3" json:"degrees,omitempty"`
	MinDegree      int64   `protobuf:"varint,5,opt,name=min_degree,json=minDegree,proto3" json:"min_degree,omitempty"`
	MaxDegree      int64   `protobuf:"varint,6,opt,name=max_degree,json=maxDegree,proto3" json:"max_degree,omitempty"`
	MeanDegree     float64 `protobuf:"fixed64,7,opt,name=mean_degree,json=meanDegree,proto3" json:"mean_degree,omitempty"`
	IsolatedCount  int64   `protobuf:"varint,8,opt,name=isolated_count,json=isolatedCount,proto3" json:"isolated_count,omitempty"`
}

func (m *StatsRecord) Reset()         { *m = StatsRecord{} }
func (m *StatsRecord) String() string { return proto.CompactTextString(m) }
func (*StatsRecord) ProtoMessage()    {}

func init() {
	proto.RegisterType((*ResultRecord)(nil), "colortrade.ResultRecord")
	proto.RegisterType((*ColoringRecord)(nil), "colortrade.ColoringRecord")
	proto.RegisterType((*EdgeRecord)(nil), "colortrade.EdgeRecord")
	proto.RegisterType((*StatsRecord)(nil), "colortrade.StatsRecord")
}

// Record exports this result as a ResultRecord, listing nodes in trade graph order.
func (res *Result) Record() *ResultRecord {
	X := res.Graph
	tg := res.TradeGraph
	st := &res.Stats

	rec := &ResultRecord{
		Rule:      tg.Rule.String(),
		Vertices:  append([]string(nil), X.names...),
		Colorings: make([]*ColoringRecord, tg.NumNodes()),
		Edges:     make([]*EdgeRecord, tg.NumEdges()),
		Stats: &StatsRecord{
			NodeCount:      int64(st.NodeCount),
			EdgeCount:      int64(st.EdgeCount),
			ComponentSizes: toInt64s(st.ComponentSizes),
			Degrees:        toInt64s(st.Degrees),
			MinDegree:      int64(st.MinDegree),
			MaxDegree:      int64(st.MaxDegree),
			MeanDegree:     st.MeanDegree,
			IsolatedCount:  int64(st.IsolatedCount),
		},
	}
	for i, C := range tg.nodes {
		row := &ColoringRecord{
			Key:    []byte(C.key),
			Colors: make([]string, len(C.colors)),
		}
		for v, c := range C.colors {
			row.Colors[v] = X.colors[c]
		}
		rec.Colorings[i] = row
	}
	for i, e := range tg.edges {
		er := &EdgeRecord{A: int32(e.A), B: int32(e.B)}
		if e.Trade != nil {
			er.Trade = e.Trade.Format(X)
		}
		rec.Edges[i] = er
	}
	return rec
}

// WriteRecord writes this result's ResultRecord in the protobuf wire format.
func (res *Result) WriteRecord(out io.Writer) error {
	buf, err := proto.Marshal(res.Record())
	if err != nil {
		return err
	}
	_, err = out.Write(buf)
	return err
}

func toInt64s(in []int) []int64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}
