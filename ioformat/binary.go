package ioformat

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/ocharge/chargepath/evgraph"
	"github.com/ocharge/chargepath/function"
)

// funcTag mirrors spec §6's weights.bin discriminator byte: 0=Linear,
// 1=Hyperbolic, 2=Constant (itself stored as a Linear with d=0).
type funcTag uint8

const (
	tagLinear     funcTag = 0
	tagHyperbolic funcTag = 1
	tagConstant   funcTag = 2
)

// LoadTopology reads first_edges.bin (u32[n+1]) and targets.bin (u32[m])
// into an evgraph.Topology. The files are already in CSR order on disk,
// so no Builder/sort pass is needed.
func LoadTopology(firstEdgesPath, targetsPath string) (evgraph.Topology, error) {
	firstEdge, err := readU32s(firstEdgesPath)
	if err != nil {
		return evgraph.Topology{}, err
	}
	if len(firstEdge) == 0 {
		return evgraph.Topology{}, ErrTruncated
	}
	targets, err := readU32s(targetsPath)
	if err != nil {
		return evgraph.Topology{}, err
	}
	numNodes := len(firstEdge) - 1
	if int(firstEdge[numNodes]) != len(targets) {
		return evgraph.Topology{}, ErrTruncated
	}
	return evgraph.Topology{NumNodes: numNodes, FirstEdge: firstEdge, Targets: targets}, nil
}

// LoadWeights reads weights.bin, one {min_x,max_x,fn_tag,params[3]} record
// per edge, in the same order as topo.Targets.
func LoadWeights(path string, topo evgraph.Topology) ([]function.Piecewise, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	n := topo.NumEdges()
	out := make([]function.Piecewise, n)
	var rec struct {
		MinX, MaxX float64
		Tag        uint8
		_          [7]byte // padding to keep params 8-byte aligned, matching the C layout
		Params     [3]float64
	}
	for i := 0; i < n; i++ {
		if err := binary.Read(f, binary.LittleEndian, &rec); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, ErrTruncated
			}
			return nil, err
		}
		var fn function.Func
		switch funcTag(rec.Tag) {
		case tagLinear:
			fn = function.Linear{D: rec.Params[0], B: rec.Params[1], C: rec.Params[2]}
		case tagHyperbolic:
			fn = function.Hyperbolic{A: rec.Params[0], B: rec.Params[1], C: rec.Params[2]}
		case tagConstant:
			fn = function.Constant{C: rec.Params[2]}
		default:
			return nil, ErrUnknownFuncTag
		}
		out[i] = function.NewPiecewise(function.NewLimited(rec.MinX, rec.MaxX, fn))
	}
	return out, nil
}

// LoadHeights reads heights.bin (i32[n]), used by potential.Shift's
// negative-weight reweighting.
func LoadHeights(path string, numNodes int) ([]int32, error) {
	raw, err := readExact(path, numNodes*4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, numNodes)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// LoadCoordinates reads coordinates.bin (f64[2*n], lon/lat pairs).
func LoadCoordinates(path string, numNodes int) ([][2]float64, error) {
	raw, err := readExact(path, numNodes*16)
	if err != nil {
		return nil, err
	}
	out := make([][2]float64, numNodes)
	for i := range out {
		out[i][0] = readF64(raw, i*16)
		out[i][1] = readF64(raw, i*16+8)
	}
	return out, nil
}

// LoadChargerRates reads chargers.bin (f64[n], 0 = not a charger).
func LoadChargerRates(path string, numNodes int) ([]float64, error) {
	raw, err := readExact(path, numNodes*8)
	if err != nil {
		return nil, err
	}
	out := make([]float64, numNodes)
	for i := range out {
		out[i] = readF64(raw, i*8)
	}
	return out, nil
}

func readU32s(path string) ([]uint32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw)%4 != 0 {
		return nil, ErrTruncated
	}
	out := make([]uint32, len(raw)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	return out, nil
}

func readExact(path string, n int) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(raw) < n {
		return nil, ErrTruncated
	}
	return raw, nil
}

func readF64(raw []byte, offset int) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(raw[offset:]))
}
